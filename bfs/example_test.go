package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
func ExampleBFS_gridTraversal() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 0)
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 0)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleBFS_shortestPathNetwork finds the fewest-hop path between two routes.
func ExampleBFS_shortestPathNetwork() {
	g := core.NewGraph()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "K"}, // 4 hops
		{"A", "E"}, {"E", "F"}, {"F", "K"}, // 3 hops
	} {
		_, _ = g.AddEdge(e[0], e[1], 0)
	}

	res, err := bfs.BFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo("K")
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A E F K]
}

// ExampleWithOnStep prints the visited order as the traversal panel shows it.
func ExampleWithOnStep() {
	g := core.NewGraph()
	_, _ = g.AddEdge("root", "left", 0)
	_, _ = g.AddEdge("root", "right", 0)

	_, _ = bfs.BFS(g, "root", bfs.WithOnStep(func(f bfs.Frame) error {
		fmt.Println(f.Step, f.Visited)
		return nil
	}))
	// Output:
	// 0 [root]
	// 1 [root left]
	// 2 [root left right]
}
