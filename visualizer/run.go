package visualizer

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/internal/ctxlog"
	"github.com/katalvlaran/algoviz/sorting"
)

// RunSort sorts the current array with the named algorithm, rendering a
// frame after every swap or write and a KindDone event with the result.
// The array follows the frames, so a cancelled run leaves it partially
// sorted.
func (s *Session) RunSort(ctx context.Context, name string) ([]int, error) {
	sortFn, err := sorting.Lookup[int](name)
	if err != nil {
		return nil, fmt.Errorf("visualizer: %w", err)
	}
	if err = s.acquire(PanelSort); err != nil {
		return nil, err
	}
	defer s.release(PanelSort)

	s.mu.Lock()
	input, delay := slices.Clone(s.array), s.speeds[PanelSort]
	s.mu.Unlock()

	log := ctxlog.FromContext(ctx).With("panel", PanelSort, "algorithm", name)
	log.Debug("Sort started.", "length", len(input), "delay", delay)
	started := time.Now()

	frames := 0
	out, err := sortFn(input,
		sorting.WithContext[int](ctx),
		sorting.WithDelay[int](delay),
		sorting.WithOnStep(func(f sorting.Frame[int]) error {
			frames = f.Step + 1
			s.mu.Lock()
			s.array = slices.Clone(f.Values)
			s.mu.Unlock()
			return s.renderer.Render(ctx, Event{
				Panel:     PanelSort,
				Kind:      KindFrame,
				Step:      f.Step,
				Values:    f.Values,
				Highlight: f.Highlight,
			})
		}),
	)
	if err != nil {
		log.Warn("Sort aborted.", "frames", frames, "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.array = slices.Clone(out)
	s.mu.Unlock()
	log.Info("Sort finished.", "frames", frames, "elapsed", time.Since(started))

	return out, s.renderer.Render(ctx, Event{Panel: PanelSort, Kind: KindDone, Step: frames, Values: slices.Clone(out)})
}

// RunPathfinding runs Dijkstra from the start node to the end node on a
// snapshot of the editor graph. Every extraction renders the visited list
// and the priority queue; the last frame has Kind KindDone and carries the
// path, which is empty when the end node is unreachable.
func (s *Session) RunPathfinding(ctx context.Context) (*dijkstra.Result, error) {
	s.mu.Lock()
	start, end := s.start, s.end
	s.mu.Unlock()
	if start == "" || end == "" {
		return nil, ErrEndpointsUnset
	}
	if start == end {
		return nil, fmt.Errorf("%w: %s", ErrSameEndpoints, start)
	}
	if err := s.acquire(PanelGraph); err != nil {
		return nil, err
	}
	defer s.release(PanelGraph)

	s.mu.Lock()
	g, err := runnableGraph(s.graph)
	strategy, delay := s.strategy, s.speeds[PanelGraph]
	s.lastPath = nil
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	log := ctxlog.FromContext(ctx).With("panel", PanelGraph, "strategy", strategy)
	log.Debug("Pathfinding started.", "start", start, "end", end,
		"nodes", g.VertexCount(), "edges", g.EdgeCount())

	res, err := dijkstra.ShortestPath(g, start, end,
		dijkstra.WithContext(ctx),
		dijkstra.WithDelay(delay),
		dijkstra.WithStrategy(strategy),
		dijkstra.WithOnStep(func(f dijkstra.Frame) error {
			kind := KindFrame
			if f.Done {
				kind = KindDone
			}
			return s.renderer.Render(ctx, Event{
				Panel:   PanelGraph,
				Kind:    kind,
				Step:    f.Step,
				Visited: f.Visited,
				Queue:   queueItems(f.Queue),
				Path:    f.Path,
			})
		}),
	)
	if err != nil {
		log.Warn("Pathfinding aborted.", "error", err)
		return nil, err
	}

	s.mu.Lock()
	s.lastPath = slices.Clone(res.Path)
	s.mu.Unlock()
	log.Info("Pathfinding finished.", "found", res.Found, "distance", res.Distance, "visited", len(res.Visited))

	return res, nil
}

// runnableGraph clones g with zero weights raised to builder.DefaultEdgeWeight.
func runnableGraph(g *core.Graph) (*core.Graph, error) {
	out := g.Clone()
	for _, e := range out.Edges() {
		if e.Weight != 0 {
			continue
		}
		if err := out.SetWeight(e.ID, builder.DefaultEdgeWeight); err != nil {
			return nil, fmt.Errorf("visualizer: prepare graph: %w", err)
		}
	}
	return out, nil
}

// RunTraversal walks the tree from its root with bfs or dfs, rendering the
// visited order after each visit and a KindDone event at the end. Labels
// of each event list the node values in visited order.
func (s *Session) RunTraversal(ctx context.Context, name string) ([]string, error) {
	if name != TraversalBFS && name != TraversalDFS {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTraversal, name)
	}
	if err := s.acquire(PanelTree); err != nil {
		return nil, err
	}
	defer s.release(PanelTree)

	s.mu.Lock()
	tree, delay := s.tree.Clone(), s.speeds[PanelTree]
	s.mu.Unlock()
	if tree.VertexCount() == 0 {
		return nil, ErrEmptyTree
	}
	root := tree.IDAt(0)

	log := ctxlog.FromContext(ctx).With("panel", PanelTree, "algorithm", name)
	log.Debug("Traversal started.", "root", root, "nodes", tree.VertexCount())

	frames := 0
	render := func(step int, visited []string) error {
		frames = step + 1
		return s.renderer.Render(ctx, Event{
			Panel:   PanelTree,
			Kind:    KindFrame,
			Step:    step,
			Visited: visited,
			Labels:  labelsOf(tree, visited),
		})
	}

	var (
		order []string
		err   error
	)
	switch name {
	case TraversalBFS:
		var res *bfs.BFSResult
		res, err = bfs.BFS(tree, root,
			bfs.WithContext(ctx),
			bfs.WithDelay(delay),
			bfs.WithOnStep(func(f bfs.Frame) error { return render(f.Step, f.Visited) }),
		)
		if res != nil {
			order = res.Order
		}
	case TraversalDFS:
		var res *dfs.DFSResult
		res, err = dfs.DFS(tree, root,
			dfs.WithContext(ctx),
			dfs.WithDelay(delay),
			dfs.WithOnStep(func(f dfs.Frame) error { return render(f.Step, f.Visited) }),
		)
		if res != nil {
			order = res.Order
		}
	}
	if err != nil {
		log.Warn("Traversal aborted.", "frames", frames, "error", err)
		return nil, err
	}
	log.Info("Traversal finished.", "frames", frames, "order", order)

	return order, s.renderer.Render(ctx, Event{
		Panel:   PanelTree,
		Kind:    KindDone,
		Step:    frames,
		Visited: slices.Clone(order),
		Labels:  labelsOf(tree, order),
	})
}

// labelsOf maps IDs to their vertex labels, falling back to the ID.
func labelsOf(g *core.Graph, ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id
		if v, err := g.Vertex(id); err == nil && v.Label != "" {
			out[i] = v.Label
		}
	}
	return out
}
