// Package naming enforces unique block names within a graph.
//
// A Registry is a hash set of names in use. When a requested name is taken,
// the registry probes decimal suffixes starting at 0 ("foo" -> "foo0",
// "foo1", ...) and hands out the first free candidate.
//
// Names are never released, so every candidate probed and found taken stays
// taken. The registry remembers, per base name, the counter following the last
// suffix it handed out and resumes probing there. This yields exactly the same
// names as probing from 0 on every collision, in amortized O(1).
package naming

import (
	"strconv"

	"github.com/hupe1980/blockgraph/core"
)

// Registry maps names in use to the blocks holding them, plus per-base
// probe hints. It is not safe for concurrent use.
type Registry struct {
	names map[string]core.BlockID
	// hints holds, per colliding base, the first suffix counter not yet proven taken.
	hints map[string]uint64
}

// New creates an empty registry sized for about capacity names.
func New(capacity int) *Registry {
	if capacity < 0 {
		capacity = 0
	}
	return &Registry{
		names: make(map[string]core.BlockID, capacity),
		hints: make(map[string]uint64),
	}
}

// Contains reports whether name is in use.
func (r *Registry) Contains(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Lookup returns the block holding name.
func (r *Registry) Lookup(name string) (core.BlockID, bool) {
	id, ok := r.names[name]
	return id, ok
}

// Len returns the number of names in use.
func (r *Registry) Len() int {
	return len(r.names)
}

// Reserve marks name as held by id. It does not check for collisions.
func (r *Registry) Reserve(name string, id core.BlockID) {
	r.names[name] = id
}

// Claim resolves base to a free name and reserves it for id.
func (r *Registry) Claim(base string, id core.BlockID) (name string, renamed bool) {
	name, n, renamed := r.resolve(base)
	r.Reserve(name, id)
	if renamed {
		r.hints[base] = n + 1
	}
	return name, renamed
}

func (r *Registry) resolve(base string) (string, uint64, bool) {
	if !r.Contains(base) {
		return base, 0, false
	}

	buf := make([]byte, 0, len(base)+20)
	buf = append(buf, base...)

	for n := r.hints[base]; ; n++ {
		buf = strconv.AppendUint(buf[:len(base)], n, 10)
		// Direct map index so string(buf) does not allocate.
		if _, taken := r.names[string(buf)]; !taken {
			return string(buf), n, true
		}
	}
}
