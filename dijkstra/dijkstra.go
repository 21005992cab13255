package dijkstra

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/pace"
)

// ShortestPath finds the cheapest path from source to target in g and
// publishes a Frame per settled vertex plus a final one.
//
// Edges of an unweighted graph cost 1. The run stops as soon as target is
// settled, or when no reached vertex remains; an unreachable target yields
// Found=false, an empty Path and no error. source == target yields the
// single-vertex path at distance 0.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. options must be valid (ErrUnknownStrategy, ...).
//  4. source and target must exist (ErrVertexNotFound).
//  5. no edge may carry a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Heap:       O((V + E) log V) time, O(V + E) extra space.
//   - LinearScan: O(V² + E) time, O(V) extra space.
//   - Publishing frames adds O(V log V) per settled vertex for the queue snapshot.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	r, err := newRunner(g, source, opts)
	if err != nil {
		return nil, err
	}
	if target == "" || !r.g.HasVertex(target) {
		return nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}
	r.target = r.index[target]
	r.hasTarget = true

	return r.run()
}

// Distances computes single-source distances to every vertex reachable from
// source. It accepts the same options as ShortestPath; frames are published
// for every settled vertex and the final frame carries no path.
func Distances(g *core.Graph, source string, opts ...Option) (*Result, error) {
	r, err := newRunner(g, source, opts)
	if err != nil {
		return nil, err
	}

	return r.run()
}

// runner holds the mutable state for a single Dijkstra execution.
// Vertices are addressed by their position in the snapshot taken at start.
type runner struct {
	g     *core.Graph
	opts  Options
	pacer *pace.Pacer

	ids       []string
	index     map[string]int
	source    int
	target    int
	hasTarget bool

	dist    []int64
	prev    []int
	settled *sparsesets.Set
	visited []string

	// heap holds one entry per successful relaxation, keyed by key(v).
	// Entries are never updated in place; slots maps an entry to its
	// vertex and stale entries are dropped when popped.
	heap  *yagh.IntMap[int64]
	slots []int
}

func newRunner(g *core.Graph, source string, opts []Option) (*runner, error) {
	// 1) Validate inputs and options
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" {
		return nil, ErrEmptySource
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.Undirected {
		g = core.Undirected(g)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	pacer, err := pace.New(cfg.Ctx, cfg.Delay)
	if err != nil {
		return nil, err
	}

	// 2) Pre-scan all edges to detect negative weights and bound the
	// largest distance a path can reach
	ids := g.Vertices()
	n := len(ids)
	edges := g.Edges()
	weighted := g.Weighted()
	var total int64
	for _, e := range edges {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		w := e.Weight
		if !weighted {
			w = 1
		}
		if w < cfg.InfEdgeThreshold {
			total = addSat(total, w)
		}
	}

	// 3) Dense state over a vertex snapshot
	r := &runner{
		g:       g,
		opts:    cfg,
		pacer:   pacer,
		ids:     ids,
		index:   make(map[string]int, n),
		dist:    make([]int64, n),
		prev:    make([]int, n),
		settled: sparsesets.New(n),
		visited: make([]string, 0, n),
	}
	for i, id := range ids {
		r.index[id] = i
		r.dist[i] = Infinity
		r.prev[i] = -1
	}
	r.source = r.index[source]
	// Heap keys pack (distance, vertex index) into one int64. Graphs whose
	// total weight does not fit fall back to scanning, with the same order.
	if cfg.Strategy == Heap && n > 0 && total <= (math.MaxInt64-int64(n))/int64(n) {
		r.heap = yagh.New[int64](2*len(edges) + 1)
	}

	return r, nil
}

// run is the main loop: settle the closest vertex, publish, relax.
func (r *runner) run() (*Result, error) {
	r.dist[r.source] = 0
	if r.heap != nil {
		r.push(r.source)
	}

	found := false
	for {
		if err := r.pacer.Check(); err != nil {
			return nil, err
		}

		var queue []QueueEntry
		if r.opts.OnStep != nil {
			queue = r.queue()
		}
		u, ok := r.next()
		if !ok || r.dist[u] > r.opts.MaxDistance {
			break
		}
		r.settled.Insert(u)
		r.visited = append(r.visited, r.ids[u])
		if err := r.publish(Frame{Queue: queue}); err != nil {
			return nil, err
		}

		if r.hasTarget && u == r.target {
			found = true
			break
		}
		if err := r.relax(u); err != nil {
			return nil, err
		}
	}

	res := r.result(found)
	if err := r.publish(Frame{Queue: []QueueEntry{}, Path: res.Path, Done: true}); err != nil {
		return nil, err
	}

	return res, nil
}

// next extracts the closest unsettled vertex; ties go to the vertex added
// to the graph first. It reports false when no reached vertex remains.
func (r *runner) next() (int, bool) {
	if r.heap == nil {
		best := -1
		for i := range r.ids {
			if !r.settled.Contains(i) && r.dist[i] < Infinity && (best < 0 || r.dist[i] < r.dist[best]) {
				best = i
			}
		}
		return best, best >= 0
	}

	for r.heap.Size() > 0 {
		e := r.heap.Pop()
		v := r.slots[e.Elem]
		if r.settled.Contains(v) || e.Cost != r.key(v) {
			continue
		}
		return v, true
	}

	return 0, false
}

// push adds a fresh heap entry for v at its current distance.
func (r *runner) push(v int) {
	r.heap.Put(len(r.slots), r.key(v))
	r.slots = append(r.slots, v)
}

// key orders by distance, then by vertex index.
func (r *runner) key(v int) int64 {
	return r.dist[v]*int64(len(r.ids)) + int64(v)
}

// addSat adds two non-negative values, saturating at Infinity.
func addSat(a, b int64) int64 {
	if a > Infinity-b {
		return Infinity
	}
	return a + b
}

// relax examines each edge leaving u and improves neighbor distances.
func (r *runner) relax(u int) error {
	edges, err := r.g.Neighbors(r.ids[u])
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", r.ids[u], err)
	}
	weighted := r.g.Weighted()
	for _, e := range edges {
		v, ok := r.index[e.To]
		if !ok || r.settled.Contains(v) {
			continue
		}
		w := e.Weight
		if !weighted {
			w = 1
		}
		// Skip impassable edges and sums that would overflow.
		if w >= r.opts.InfEdgeThreshold || w > Infinity-1-r.dist[u] {
			continue
		}
		nd := r.dist[u] + w
		if nd > r.opts.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		if r.heap != nil {
			r.push(v)
		}
	}

	return nil
}

// queue lists unsettled vertices by distance, ties in vertex order. The
// heap strategy shows only reached vertices, mirroring its contents.
func (r *runner) queue() []QueueEntry {
	q := make([]QueueEntry, 0, len(r.ids)-len(r.visited))
	for i, id := range r.ids {
		if r.settled.Contains(i) || (r.opts.Strategy == Heap && r.dist[i] == Infinity) {
			continue
		}
		q = append(q, QueueEntry{Node: id, Distance: r.dist[i]})
	}
	slices.SortStableFunc(q, func(a, b QueueEntry) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	return q
}

func (r *runner) publish(f Frame) error {
	if r.opts.OnStep == nil {
		return r.pacer.Check()
	}
	return r.pacer.Tick(func(step int) error {
		f.Step = step
		f.Visited = slices.Clone(r.visited)
		return r.opts.OnStep(f)
	})
}

func (r *runner) result(found bool) *Result {
	res := &Result{
		Path:     []string{},
		Distance: Infinity,
		Found:    found,
		Visited:  r.visited,
		Dist:     make(map[string]int64, len(r.ids)),
		Prev:     make(map[string]string, len(r.ids)),
	}
	for i, id := range r.ids {
		res.Dist[id] = r.dist[i]
		if p := r.prev[i]; p >= 0 {
			res.Prev[id] = r.ids[p]
		}
	}
	if !found {
		return res
	}

	res.Distance = r.dist[r.target]
	for cur := r.target; cur >= 0; cur = r.prev[cur] {
		res.Path = append(res.Path, r.ids[cur])
	}
	slices.Reverse(res.Path)

	return res
}
