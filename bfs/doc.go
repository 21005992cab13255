// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Publishes a Frame with the visited order after every dequeue
//     (WithOnStep), pausing WithDelay between frames.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Edge weights are ignored; directed edges are followed From→To only.
//
// Determinism
//
//	core.Graph keeps adjacency in insertion order and BFS enqueues neighbors
//	in that order, so the visit sequence is fully reproducible. A vertex is
//	marked visited when it is enqueued, never twice.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for queue, Depth map, Parent map and the sparse visited set.
//
// Usage
//
//	res, err := bfs.BFS(
//	    tree, root,
//	    bfs.WithContext(ctx),
//	    bfs.WithDelay(250*time.Millisecond),
//	    bfs.WithOnStep(func(f bfs.Frame) error { return render(f.Visited) }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - ctx.Err()               when the context is cancelled between steps.
//   - Wrapped user-supplied hook errors from OnVisit, raw errors from OnStep.
package bfs
