package bfs

import (
	"fmt"
	"slices"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/pace"
)

// queueItem pairs a vertex ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	pacer   *pace.Pacer
	queue   []queueItem
	index   map[string]int
	visited *sparsesets.Set
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options. Edge weights are ignored.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	p, err := pace.New(o.Ctx, o.Delay)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}

	// Dense indices for the visited set come from a snapshot so that
	// vertices added concurrently are simply ignored.
	vertices := g.Vertices()
	n := len(vertices)
	index := make(map[string]int, n)
	for i, id := range vertices {
		index[id] = i
	}
	w := &walker{
		graph:   g,
		opts:    o,
		pacer:   p,
		queue:   make([]queueItem, 0, n),
		index:   index,
		visited: sparsesets.New(n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// seen reports whether id was enqueued already; unknown IDs count as seen.
func (w *walker) seen(id string) bool {
	i, ok := w.index[id]
	return !ok || w.visited.Contains(i)
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited.Insert(w.index[id])
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.pacer.Check(); err != nil {
			return err
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
		if err := w.pacer.Tick(w.publish); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) publish(step int) error {
	return w.opts.OnStep(Frame{Step: step, Visited: slices.Clone(w.res.Order)})
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor in adjacency order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if !w.seen(nbr) {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
