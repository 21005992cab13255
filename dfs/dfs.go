package dfs

import (
	"fmt"
	"slices"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/pace"
)

// frame is one stack entry. exit entries fire the post-order hook of id.
type frame struct {
	id     string
	parent string
	depth  int
	exit   bool
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	pacer   *pace.Pacer
	index   map[string]int
	visited *sparsesets.Set
	stack   []frame
	res     *DFSResult
}

// DFS performs depth-first search on graph g with an explicit stack.
// Neighbors are pushed in reverse so the first neighbor in adjacency order
// is explored first. With WithFullTraversal every component is covered,
// restarting from unvisited vertices in insertion order; otherwise only the
// tree rooted at startID is walked.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph and options
	if g == nil {
		return nil, ErrGraphNil
	}
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}
	if dopts.err != nil {
		return nil, dopts.err
	}

	// 2. Single-source mode: verify startID
	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	pacer, err := pace.New(dopts.Ctx, dopts.Delay)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}

	// 3. Snapshot vertex order for dense visited indices
	vertices := g.Vertices()
	index := make(map[string]int, len(vertices))
	for i, id := range vertices {
		index[id] = i
	}
	res := &DFSResult{
		Order:     make([]string, 0, len(vertices)),
		PostOrder: make([]string, 0, len(vertices)),
		Depth:     make(map[string]int, len(vertices)),
		Parent:    make(map[string]string, len(vertices)),
		Visited:   make(map[string]bool, len(vertices)),
	}
	w := &dfsWalker{
		graph:   g,
		opts:    dopts,
		pacer:   pacer,
		index:   index,
		visited: sparsesets.New(len(vertices)),
		res:     res,
	}

	// 4. Traverse: forest or single tree
	if !dopts.FullTraversal {
		return res, w.traverse(startID)
	}
	if startID != "" && g.HasVertex(startID) {
		if err = w.traverse(startID); err != nil {
			return res, err
		}
	}
	for _, v := range vertices {
		if !w.seen(v) {
			if err = w.traverse(v); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

func (w *dfsWalker) seen(id string) bool {
	i, ok := w.index[id]
	return !ok || w.visited.Contains(i)
}

// traverse walks the tree rooted at root until its stack drains.
func (w *dfsWalker) traverse(root string) error {
	w.stack = append(w.stack[:0], frame{id: root})
	for len(w.stack) > 0 {
		// 1. Cancellation check
		if err := w.pacer.Check(); err != nil {
			return err
		}

		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		if top.exit {
			if err := w.finish(top.id); err != nil {
				return err
			}
			continue
		}
		// 2. Stale entry: pushed twice before being visited
		if w.seen(top.id) {
			continue
		}
		if err := w.visit(top); err != nil {
			return err
		}
		if err := w.push(top); err != nil {
			return err
		}
	}

	return nil
}

// visit records top in pre-order, runs OnVisit and publishes a frame.
func (w *dfsWalker) visit(top frame) error {
	w.visited.Insert(w.index[top.id])
	w.res.Visited[top.id] = true
	w.res.Depth[top.id] = top.depth
	if top.parent != "" {
		w.res.Parent[top.id] = top.parent
	}
	w.res.Order = append(w.res.Order, top.id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(top.id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", top.id, err)
		}
	}

	return w.pacer.Tick(func(step int) error {
		if w.opts.OnStep == nil {
			return nil
		}
		return w.opts.OnStep(Frame{Step: step, Visited: slices.Clone(w.res.Order)})
	})
}

// push schedules the exit marker of top followed by its unvisited
// neighbors in reverse adjacency order.
func (w *dfsWalker) push(top frame) error {
	w.stack = append(w.stack, frame{id: top.id, exit: true})
	if w.opts.MaxDepth >= 0 && top.depth >= w.opts.MaxDepth {
		return nil
	}

	nbs, err := w.graph.NeighborIDs(top.id)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%q): %w", top.id, err)
	}
	for i := len(nbs) - 1; i >= 0; i-- {
		nid := nbs[i]
		if nid == top.id || w.seen(nid) {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.res.SkippedNeighbors++
			continue
		}
		w.stack = append(w.stack, frame{id: nid, parent: top.id, depth: top.depth + 1})
	}

	return nil
}

func (w *dfsWalker) finish(id string) error {
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %q: %w", id, err)
		}
	}
	w.res.PostOrder = append(w.res.PostOrder, id)

	return nil
}
