package blockgraph_test

import (
	"fmt"

	"github.com/hupe1980/blockgraph"
)

// Example demonstrates name collision handling and attribute lookup.
func Example() {
	g := blockgraph.New()

	for _, name := range []string{"foo", "foo", "foo"} {
		b := blockgraph.NewBlock(name)
		b.AddAttribute("shape")
		g.Insert(b)
	}
	g.Insert(blockgraph.NewBlock("bar", "color"))

	for b := range g.WithAttribute("shape") {
		fmt.Println(b.Name())
	}
	fmt.Println(g.CountWithAttribute("color"), g.CountWithAttribute("size"))
	// Output:
	// foo
	// foo0
	// foo1
	// 1 0
}

// ExampleGraph_WithAllAttributes demonstrates intersecting attributes.
func ExampleGraph_WithAllAttributes() {
	g := blockgraph.New()
	g.InsertAll(
		blockgraph.NewBlock("a", "red", "round"),
		blockgraph.NewBlock("b", "red", "square"),
		blockgraph.NewBlock("c", "blue", "round"),
	)

	for b := range g.WithAllAttributes("red", "round") {
		fmt.Println(b.Name())
	}
	// Output: a
}

// ExampleBasicMetricsCollector demonstrates metrics collection.
func ExampleBasicMetricsCollector() {
	metrics := &blockgraph.BasicMetricsCollector{}
	g := blockgraph.New(blockgraph.WithMetricsCollector(metrics))

	g.InsertAll(blockgraph.NewBlock("x"), blockgraph.NewBlock("x"))

	stats := metrics.GetStats()
	fmt.Printf("inserts=%d renamed=%d\n", stats.InsertCount, stats.InsertRenamed)
	// Output: inserts=2 renamed=1
}
