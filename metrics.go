package blockgraph

import (
	"sync/atomic"
	"time"
)

// LookupKind identifies the read path a lookup went through.
type LookupKind uint8

const (
	// LookupAll is a full enumeration via Graph.All.
	LookupAll LookupKind = iota
	// LookupAttribute is a single-attribute lookup via Graph.WithAttribute.
	LookupAttribute
	// LookupMatch is a multi-attribute lookup via WithAllAttributes or WithAnyAttribute.
	LookupMatch
)

// String implements fmt.Stringer.
func (k LookupKind) String() string {
	switch k {
	case LookupAll:
		return "all"
	case LookupAttribute:
		return "attribute"
	case LookupMatch:
		return "match"
	default:
		return "unknown"
	}
}

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each successful insert.
	// renamed reports whether the requested name collided.
	RecordInsert(duration time.Duration, renamed bool, attributes int)

	// RecordLookup is called when a lookup sequence has been consumed.
	// hits is the number of blocks yielded to the caller.
	RecordLookup(kind LookupKind, hits int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Graphs configured with it skip timing entirely.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, bool, int)       {}
func (NoopMetricsCollector) RecordLookup(LookupKind, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertRenamed    atomic.Int64
	InsertAttributes atomic.Int64
	InsertTotalNanos atomic.Int64
	LookupCount      atomic.Int64
	LookupHits       atomic.Int64
	LookupTotalNanos atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, renamed bool, attributes int) {
	b.InsertCount.Add(1)
	b.InsertAttributes.Add(int64(attributes))
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if renamed {
		b.InsertRenamed.Add(1)
	}
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(_ LookupKind, hits int, duration time.Duration) {
	b.LookupCount.Add(1)
	b.LookupHits.Add(int64(hits))
	b.LookupTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:      b.InsertCount.Load(),
		InsertRenamed:    b.InsertRenamed.Load(),
		InsertAttributes: b.InsertAttributes.Load(),
		InsertAvgNanos:   avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		LookupCount:      b.LookupCount.Load(),
		LookupHits:       b.LookupHits.Load(),
		LookupAvgNanos:   avg(b.LookupTotalNanos.Load(), b.LookupCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount      int64
	InsertRenamed    int64
	InsertAttributes int64
	InsertAvgNanos   int64
	LookupCount      int64
	LookupHits       int64
	LookupAvgNanos   int64
}
