package testutil

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
)

// BlockSpec describes a block to be created by a test.
type BlockSpec struct {
	Name       string
	Attributes []string
}

// WorkloadConfig configures a generated workload.
type WorkloadConfig struct {
	// Blocks is the number of blocks to generate.
	Blocks int

	// BaseNames is the number of distinct requested names.
	BaseNames int

	// AttributesPerBlock is the number of attributes per block.
	// It must not exceed DistinctAttributes.
	AttributesPerBlock int

	// DistinctAttributes is the size of the attribute vocabulary.
	DistinctAttributes int

	// NamePrefix is the building block of requested names.
	NamePrefix string

	// AttributePrefix prefixes every attribute value.
	AttributePrefix string
}

// DefaultWorkload returns the classic benchmark shape: 1000 blocks over
// 10 base names, 250 attributes each drawn from 300 values.
func DefaultWorkload() WorkloadConfig {
	return WorkloadConfig{
		Blocks:             1000,
		BaseNames:          10,
		AttributesPerBlock: 250,
		DistinctAttributes: 300,
		NamePrefix:         "blockNameBase_",
		AttributePrefix:    "attributeBase_",
	}
}

// RequestedNames returns the requested names of a workload.
// Name i is NamePrefix repeated i+1 times, so every name starts with the
// prefix and no base is a suffix-renamed form of another.
func (c WorkloadConfig) RequestedNames() []string {
	names := make([]string, c.BaseNames)
	for i := range names {
		names[i] = strings.Repeat(c.NamePrefix, i+1)
	}
	return names
}

// AttributeNames returns the attribute vocabulary of a workload.
func (c WorkloadConfig) AttributeNames() []string {
	attrs := make([]string, c.DistinctAttributes)
	for i := range attrs {
		attrs[i] = c.AttributePrefix + strconv.Itoa(i)
	}
	return attrs
}

// Cyclic generates a deterministic workload. Both the base name and the
// attribute counters advance before use and wrap around, so block 0 requests
// base 1 and its first attribute is attribute 1.
func Cyclic(cfg WorkloadConfig) []BlockSpec {
	names := cfg.RequestedNames()
	attrs := cfg.AttributeNames()

	specs := make([]BlockSpec, cfg.Blocks)
	nameNum, attrNum := 0, 0
	for i := range specs {
		nameNum = (nameNum + 1) % len(names)
		spec := BlockSpec{
			Name:       names[nameNum],
			Attributes: make([]string, cfg.AttributesPerBlock),
		}
		for j := range spec.Attributes {
			attrNum = (attrNum + 1) % len(attrs)
			spec.Attributes[j] = attrs[attrNum]
		}
		specs[i] = spec
	}
	return specs
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Workload generates a random workload. Each block requests a uniformly
// chosen base name and carries AttributesPerBlock distinct attributes.
func (r *RNG) Workload(cfg WorkloadConfig) []BlockSpec {
	names := cfg.RequestedNames()
	attrs := cfg.AttributeNames()

	specs := make([]BlockSpec, cfg.Blocks)
	for i := range specs {
		perm := r.Perm(len(attrs))[:cfg.AttributesPerBlock]
		spec := BlockSpec{
			Name:       names[r.Intn(len(names))],
			Attributes: make([]string, len(perm)),
		}
		for j, a := range perm {
			spec.Attributes[j] = attrs[a]
		}
		specs[i] = spec
	}
	return specs
}
