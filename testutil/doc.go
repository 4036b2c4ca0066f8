// Package testutil provides testing utilities for blockgraph.
//
// This package is intended for use in tests and benchmarks only.
// It generates block workloads as plain specs so that it does not depend on
// the graph itself.
//
// # Cyclic Workload
//
// Cyclic reproduces the classic block benchmark: names cycle through a small
// set of bases, so most inserts collide, and attributes cycle through a fixed
// vocabulary.
//
//	specs := testutil.Cyclic(testutil.DefaultWorkload())
//
// # Random Workload
//
//	rng := testutil.NewRNG(seed)
//	specs := rng.Workload(cfg)
package testutil
