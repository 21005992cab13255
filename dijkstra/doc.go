// Package dijkstra implements Dijkstra's shortest-path algorithm as a step
// producer for the path-finding panel.
//
// ShortestPath settles vertices in order of increasing distance from the
// source until the target is settled, publishing after each settlement a
// Frame with the visited order and the priority queue, and at the end a
// Frame with the shortest path. Distances runs the same loop without a
// target.
//
// Two frontier strategies are available through WithStrategy:
//
//   - Heap (default): an indexed binary heap (github.com/rhartert/yagh) with
//     decrease-key, so every vertex is in the queue at most once.
//   - LinearScan: a scan of every unsettled vertex per step. Its queue
//     frames also list vertices not reached yet, at Infinity.
//
// Both strategies settle equal-distance vertices in the order they were
// added to the graph, so they produce the same Visited order and Path.
//
// Directedness
//
//	A directed graph is followed along its edges only. WithUndirected runs
//	on core.Undirected(g) instead, where the lighter of two opposite edges
//	is used in both directions.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges (O(E)) detects negative weights and fails fast.
//   - Edges of an unweighted graph cost 1, so distances count hops.
//   - Any edge with weight ≥ InfEdgeThreshold is an impassable “wall”.
//   - Exploration stops once the closest unsettled vertex exceeds MaxDistance.
//   - The settled set is a sparse set over the vertex snapshot taken at start.
//
// Example usage:
//
//	res, err := dijkstra.ShortestPath(g, "A", "D",
//	    dijkstra.WithContext(ctx),
//	    dijkstra.WithDelay(100*time.Millisecond),
//	    dijkstra.WithOnStep(func(f dijkstra.Frame) error { return render(f) }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Distance)
package dijkstra
