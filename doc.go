// Package algoviz is the headless core of an algorithm visualizer: classic
// sorts, shortest paths and tree traversals that run step by step and hand
// every intermediate state to a renderer.
//
// 🚀 What is algoviz?
//
//	A small, dependency-light set of packages that brings together:
//		• Core primitives: an ordered, thread-safe Graph with weighted edges
//		• Pacing: frame numbering, per-step delay and cancellation (pace)
//		• Sorting: bubble, insertion, merge and quick sort with array snapshots
//		• Shortest paths: Dijkstra with a linear-scan or heap frontier
//		• Traversals: BFS, DFS
//		• Fixtures: the graphs, trees and arrays the editors produce (builder)
//		• Sessions: the panel state and run orchestration (visualizer)
//
// Every algorithm takes functional options, among them WithOnStep(fn),
// WithDelay(d) and WithContext(ctx). fn receives one Frame per step; an
// error from fn, or a cancelled ctx, stops the run and is returned.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       - Graph, Vertex, Edge types & thread-safe primitives
//	pace/       - Pacer (step numbering and delay) and Stream (channel form)
//	sorting/    - snapshot-emitting sorts over cmp.Ordered slices
//	bfs/, dfs/  - traversals with visited-order frames
//	dijkstra/   - shortest path with visited, queue and path frames
//	builder/    - deterministic fixtures (Path, Cycle, BinaryTree, RandomArray…)
//	visualizer/ - Session: sort, graph and tree panels, Renderer events
//	cmd/algoviz - text renderer and websocket server
//
// Quick ASCII example:
//
//	    A──1──B
//	    │     │
//	    5     1
//	    │     │
//	    └──C──┘
//
// dijkstra.ShortestPath(g, "A", "C") settles A, B, C in that order and
// reports the path A → B → C with cost 2.
//
//	go run github.com/katalvlaran/algoviz/cmd/algoviz path -edges A-B:1,B-C:1,A-C:5 -end C
package algoviz
