package builder_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
)

// ExampleBinaryTree builds the tree editor's default shape: one-based IDs,
// every child hanging under (i-1)/2.
func ExampleBinaryTree() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithOneBasedIDs()},
		builder.BinaryTree(5),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s-%s ", e.From, e.To)
	}
	fmt.Println()
	// Output:
	// 1-2 1-3 2-4 2-5
}

// ExampleCycle builds a weighted ring named like the graph editor names nodes.
func ExampleCycle() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithExcelColumnIDs()},
		builder.Cycle(4),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Vertices(), g.EdgeCount())
	// Output:
	// [A B C D] 4
}
