package visualizer

import (
	"fmt"
	"math/rand"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dijkstra"
)

// Session is the headless state of the three panels.
//
// Editing methods are safe for concurrent use. While a panel runs, its
// editing methods return ErrBusy; the other panels stay usable.
type Session struct {
	mu       sync.Mutex
	renderer Renderer
	rng      *rand.Rand
	speeds   map[Panel]time.Duration
	busy     map[Panel]*atomic.Bool

	// sort panel
	array       []int
	original    []int
	arrayLength int

	// graph panel
	graph      *core.Graph
	nextNodeID int
	start, end string
	strategy   dijkstra.Strategy
	lastPath   []string

	// tree panel
	tree *core.Graph
}

// NewSession returns a Session with a freshly generated array, an empty
// graph and an empty tree.
func NewSession(opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &Session{
		renderer:    o.Renderer,
		rng:         o.Rand,
		speeds:      o.Speeds,
		arrayLength: o.ArrayLength,
		strategy:    o.Strategy,
		busy: map[Panel]*atomic.Bool{
			PanelSort:  new(atomic.Bool),
			PanelGraph: new(atomic.Bool),
			PanelTree:  new(atomic.Bool),
		},
		graph: newEditorGraph(),
		tree:  newTreeGraph(),
	}
	if _, err := s.generateArray(); err != nil {
		return nil, err
	}

	return s, nil
}

// newEditorGraph is directed and weighted: edges are drawn with arrowheads
// and carry an editable weight.
func newEditorGraph() *core.Graph {
	return core.NewGraph(core.WithDirected(true), core.WithWeighted())
}

// newTreeGraph is undirected so that traversals may walk back to parents.
func newTreeGraph() *core.Graph {
	return core.NewGraph(core.WithDirected(false))
}

// acquire marks p busy; release must follow.
func (s *Session) acquire(p Panel) error {
	if !s.busy[p].CompareAndSwap(false, true) {
		return fmt.Errorf("%w: %s", ErrBusy, p)
	}
	return nil
}

func (s *Session) release(p Panel) { s.busy[p].Store(false) }

// Busy reports whether p is running an algorithm.
func (s *Session) Busy(p Panel) bool { return s.busy[p].Load() }

// idle returns ErrBusy when p is running. Callers hold s.mu.
func (s *Session) idle(p Panel) error {
	if s.busy[p].Load() {
		return fmt.Errorf("%w: %s", ErrBusy, p)
	}
	return nil
}

// Speed returns the pause between frames of p.
func (s *Session) Speed(p Panel) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speeds[p]
}

// SetSpeed changes the pause between frames of p. It applies to the next run.
func (s *Session) SetSpeed(p Panel, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: %s", ErrBadSpeed, d)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(p); err != nil {
		return err
	}
	s.speeds[p] = d
	return nil
}

// ---- sort panel ----

// Array returns the current array.
func (s *Session) Array() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.array)
}

// OriginalArray returns the array as it was generated or set.
func (s *Session) OriginalArray() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.original)
}

// GenerateArray replaces the array with ArrayLength random values in
// [builder.DefaultArrayMin, builder.DefaultArrayMax).
func (s *Session) GenerateArray() ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelSort); err != nil {
		return nil, err
	}
	return s.generateArray()
}

func (s *Session) generateArray() ([]int, error) {
	a, err := builder.RandomArray(s.arrayLength, builder.DefaultArrayMin, builder.DefaultArrayMax,
		builder.WithRand(s.rng))
	if err != nil {
		return nil, fmt.Errorf("visualizer: generate array: %w", err)
	}
	s.array, s.original = a, slices.Clone(a)
	return slices.Clone(a), nil
}

// SetArrayLength changes the length and regenerates the array.
func (s *Session) SetArrayLength(n int) ([]int, error) {
	if n < MinArrayLength || n > MaxArrayLength {
		return nil, fmt.Errorf("%w: %d not in [%d,%d]", ErrBadArrayLength, n, MinArrayLength, MaxArrayLength)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelSort); err != nil {
		return nil, err
	}
	s.arrayLength = n
	return s.generateArray()
}

// SetArray replaces the array with a copy of values.
func (s *Session) SetArray(values []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelSort); err != nil {
		return err
	}
	s.array, s.original = slices.Clone(values), slices.Clone(values)
	return nil
}

// ---- graph panel ----

// AddNode appends a node named A, B, C, … (then AA, AB, …) and returns its ID.
func (s *Session) AddNode() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelGraph); err != nil {
		return "", err
	}
	id := builder.ExcelColumnIDFn(s.nextNodeID)
	if err := s.graph.AddVertex(id); err != nil {
		return "", fmt.Errorf("visualizer: add node %s: %w", id, err)
	}
	s.nextNodeID++
	s.autoSelect()
	return id, nil
}

// RemoveNode deletes a node and its edges.
func (s *Session) RemoveNode(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelGraph); err != nil {
		return err
	}
	if err := s.graph.RemoveVertex(id); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	s.autoSelect()
	return nil
}

// Connect adds an edge from→to with builder.DefaultEdgeWeight and returns
// its ID.
func (s *Session) Connect(from, to string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelGraph); err != nil {
		return "", err
	}
	eid, err := s.graph.AddEdge(from, to, builder.DefaultEdgeWeight)
	if err != nil {
		return "", fmt.Errorf("visualizer: connect %s→%s: %w", from, to, err)
	}
	return eid, nil
}

// Disconnect removes an edge by ID.
func (s *Session) Disconnect(edgeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelGraph); err != nil {
		return err
	}
	if err := s.graph.RemoveEdge(edgeID); err != nil {
		return fmt.Errorf("visualizer: disconnect %s: %w", edgeID, err)
	}
	return nil
}

// SetEdgeWeight edits an edge weight inline. A zero weight is kept as
// entered and counts as builder.DefaultEdgeWeight when the search runs.
func (s *Session) SetEdgeWeight(edgeID string, w int64) error {
	if w < 0 {
		return fmt.Errorf("%w: %d", ErrBadWeight, w)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelGraph); err != nil {
		return err
	}
	if err := s.graph.SetWeight(edgeID, w); err != nil {
		return fmt.Errorf("visualizer: set weight of %s: %w", edgeID, err)
	}
	return nil
}

// SetStart selects the source node.
func (s *Session) SetStart(id string) error { return s.setEndpoint(&s.start, id) }

// SetEnd selects the target node.
func (s *Session) SetEnd(id string) error { return s.setEndpoint(&s.end, id) }

func (s *Session) setEndpoint(dst *string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelGraph); err != nil {
		return err
	}
	if !s.graph.HasVertex(id) {
		return fmt.Errorf("%w: %s", ErrUnknownNode, id)
	}
	*dst = id
	return nil
}

// Endpoints returns the selected start and end nodes.
func (s *Session) Endpoints() (start, end string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start, s.end
}

// autoSelect keeps the endpoints on existing nodes: a missing start becomes
// the first node and a missing end the last one. Callers hold s.mu.
func (s *Session) autoSelect() {
	ids := s.graph.Vertices()
	if len(ids) == 0 {
		s.start, s.end = "", ""
		return
	}
	if !s.graph.HasVertex(s.start) {
		s.start = ids[0]
	}
	if !s.graph.HasVertex(s.end) {
		s.end = ids[len(ids)-1]
	}
}

// SetStrategy selects the Dijkstra frontier.
func (s *Session) SetStrategy(st dijkstra.Strategy) error {
	if st != dijkstra.Heap && st != dijkstra.LinearScan {
		return fmt.Errorf("visualizer: %w", dijkstra.ErrUnknownStrategy)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelGraph); err != nil {
		return err
	}
	s.strategy = st
	return nil
}

// LoadGraph replaces the editor graph with the vertices and edges of g.
// Node naming continues after the loaded node count. A nil g yields
// ErrGraphNil.
func (s *Session) LoadGraph(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelGraph); err != nil {
		return err
	}
	ng := newEditorGraph()
	for _, id := range g.Vertices() {
		if err := ng.AddVertex(id); err != nil {
			return fmt.Errorf("visualizer: load graph: %w", err)
		}
	}
	for _, e := range g.Edges() {
		w := e.Weight
		if !g.Weighted() {
			w = builder.DefaultEdgeWeight
		}
		if _, err := ng.AddEdge(e.From, e.To, w); err != nil {
			return fmt.Errorf("visualizer: load graph: %w", err)
		}
		if !e.Directed {
			if _, err := ng.AddEdge(e.To, e.From, w); err != nil {
				return fmt.Errorf("visualizer: load graph: %w", err)
			}
		}
	}
	s.graph = ng
	s.nextNodeID = ng.VertexCount()
	s.lastPath = nil
	s.autoSelect()
	return nil
}

// Graph returns a copy of the editor graph.
func (s *Session) Graph() *core.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.graph.Clone()
}

// LastPath returns the path found by the previous RunPathfinding.
func (s *Session) LastPath() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lastPath)
}

// ResetGraph clears nodes, edges, endpoints, naming and the last path.
func (s *Session) ResetGraph() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelGraph); err != nil {
		return err
	}
	s.graph = newEditorGraph()
	s.nextNodeID = 0
	s.start, s.end = "", ""
	s.lastPath = nil
	return nil
}

// ---- tree panel ----

// AddTreeNode appends a node labelled value. The first node is the root;
// node i (0-based) becomes a child of node builder.ParentIndex(i), left
// before right. IDs are "1", "2", ….
func (s *Session) AddTreeNode(value int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelTree); err != nil {
		return "", err
	}
	return s.addTreeNode(strconv.Itoa(value))
}

// AddRandomTreeNode appends a node with a random label in [0, TreeLabelMax).
func (s *Session) AddRandomTreeNode() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelTree); err != nil {
		return "", err
	}
	n := s.tree.VertexCount()
	return s.addTreeNode(builder.RandomLabelFn(TreeLabelMax)(n, s.rng))
}

func (s *Session) addTreeNode(label string) (string, error) {
	n := s.tree.VertexCount()
	id := builder.OneBasedIDFn(n)
	if err := s.tree.AddLabeledVertex(id, label); err != nil {
		return "", fmt.Errorf("visualizer: add tree node: %w", err)
	}
	if n == 0 {
		return id, nil
	}
	parent := s.tree.IDAt(builder.ParentIndex(n))
	if _, err := s.tree.AddEdge(parent, id, 0); err != nil {
		return "", fmt.Errorf("visualizer: attach %s to %s: %w", id, parent, err)
	}
	return id, nil
}

// LoadTree replaces the tree with nodes labelled values, in order.
func (s *Session) LoadTree(values []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelTree); err != nil {
		return err
	}
	s.tree = newTreeGraph()
	for _, v := range values {
		if _, err := s.addTreeNode(strconv.Itoa(v)); err != nil {
			return err
		}
	}
	return nil
}

// Tree returns a copy of the tree.
func (s *Session) Tree() *core.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Clone()
}

// ResetTree removes every tree node.
func (s *Session) ResetTree() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.idle(PanelTree); err != nil {
		return err
	}
	s.tree = newTreeGraph()
	return nil
}
