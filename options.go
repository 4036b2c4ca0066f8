package blockgraph

import "log/slog"

type options struct {
	expectedBlocks     int
	expectedAttributes int
	metricsCollector   MetricsCollector
	logger             *Logger
}

// Option configures a Graph.
type Option func(*options)

// WithExpectedBlocks pre-sizes the block arena and the name set.
// It is a hint; graphs grow beyond it as needed.
func WithExpectedBlocks(n int) Option {
	return func(o *options) {
		o.expectedBlocks = n
	}
}

// WithExpectedAttributes pre-sizes the attribute index for about n distinct
// attribute values.
func WithExpectedAttributes(n int) Option {
	return func(o *options) {
		o.expectedAttributes = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &blockgraph.BasicMetricsCollector{}
//	g := blockgraph.New(blockgraph.WithMetricsCollector(metrics))
//	// ... use g ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, renamed: %d\n", stats.InsertCount, stats.InsertRenamed)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := blockgraph.NewJSONLogger(slog.LevelDebug)
//	g := blockgraph.New(blockgraph.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.expectedBlocks < 0 {
		o.expectedBlocks = 0
	}
	if o.expectedAttributes < 0 {
		o.expectedAttributes = 0
	}
	return o
}
