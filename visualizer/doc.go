// Package visualizer is the headless counterpart of the three panels of the
// algorithm visualizer: sorting, shortest path and tree traversal.
//
// A Session keeps what each panel edits (the array and its original, the
// weighted graph with its start and end nodes, the heap-shaped tree) and
// runs the algorithms of the sorting, dijkstra, bfs and dfs packages on a
// snapshot of that state. Every step is published as an Event to the
// Renderer given by WithRenderer; drawing is left to the caller.
//
//	s, _ := visualizer.NewSession(visualizer.WithRenderer(r))
//	a, _ := s.AddNode() // "A"
//	b, _ := s.AddNode() // "B"
//	_, _ = s.Connect(a, b)
//	_ = s.SetEnd(b)
//	res, err := s.RunPathfinding(ctx)
//
// A panel runs one algorithm at a time: a second Run call, or an edit of
// the same panel, fails with ErrBusy until the first run returns. Runs log
// through the logger carried by ctx (see internal/ctxlog).
//
// Stream turns a run into a pull-style pace.Stream for transports that
// forward events over a connection.
package visualizer
