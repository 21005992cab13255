// Package dfs implements depth-first search (single-source and forest) on core.Graph.
//
// The walk uses an explicit stack instead of recursion: a vertex is visited
// when it is popped for the first time, and its unvisited neighbors are
// pushed in reverse adjacency order so that children are explored left to
// right. A component is finished before the walk backtracks past its root.
//
// Key features:
//   - DFS(g, startID, opts...): traverse from a root, or the full forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Frames: OnStep receives the pre-order after each visit, paced by WithDelay
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(V + E) plus the cost of hooks and filters.
//   - Memory: O(V + E) for the stack (a vertex may be pushed once per incoming edge).
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithDelay(d)              pause after each frame.
//   - WithOnVisit(fn)           pre-order hook on vertex discovery; error aborts traversal.
//   - WithOnExit(fn)            post-order hook after exploring descendants.
//   - WithOnStep(fn)            visited-order frames.
//   - WithMaxDepth(limit)       stops descending beyond the given depth (-1 = none).
//   - WithFilterNeighbor(fn)    filters neighbor IDs; return false to skip.
//   - WithFullTraversal()       forest mode; startID, if present, is the first root.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing in single-source mode.
//   - ErrOptionViolation        if an option is invalid (negative delay).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit, OnExit or OnStep.
package dfs
