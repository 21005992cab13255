package visualizer

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/algoviz/dijkstra"
)

// Sentinel errors returned by Session.
var (
	// ErrEndpointsUnset is returned by RunPathfinding when start or end is empty.
	ErrEndpointsUnset = errors.New("visualizer: start and end nodes must be selected")

	// ErrSameEndpoints is returned by RunPathfinding when start equals end.
	ErrSameEndpoints = errors.New("visualizer: start and end nodes must differ")

	// ErrGraphNil is returned by LoadGraph for a nil graph.
	ErrGraphNil = errors.New("visualizer: graph is nil")

	// ErrEmptyTree is returned by RunTraversal on a tree without nodes.
	ErrEmptyTree = errors.New("visualizer: tree is empty")

	// ErrBusy is returned while the panel is running an algorithm.
	ErrBusy = errors.New("visualizer: panel is animating")

	// ErrUnknownNode is returned when an ID does not name a graph node.
	ErrUnknownNode = errors.New("visualizer: unknown node")

	// ErrUnknownTraversal is returned for traversal names other than bfs/dfs.
	ErrUnknownTraversal = errors.New("visualizer: unknown traversal")

	// ErrBadWeight is returned for negative edge weights.
	ErrBadWeight = errors.New("visualizer: edge weight must be non-negative")

	// ErrBadArrayLength is returned for lengths outside [MinArrayLength, MaxArrayLength].
	ErrBadArrayLength = errors.New("visualizer: array length out of range")

	// ErrBadSpeed is returned for negative speeds.
	ErrBadSpeed = errors.New("visualizer: speed must be non-negative")

	// ErrOptionViolation is returned by NewSession for invalid options.
	ErrOptionViolation = errors.New("visualizer: invalid option supplied")
)

// Panel names one of the three editors.
type Panel string

const (
	PanelSort  Panel = "sort"
	PanelGraph Panel = "graph"
	PanelTree  Panel = "tree"
)

// Traversal names accepted by RunTraversal.
const (
	TraversalBFS = "bfs"
	TraversalDFS = "dfs"
)

// Panel defaults.
const (
	DefaultSortSpeed   = 100 * time.Millisecond
	DefaultGraphSpeed  = 100 * time.Millisecond
	DefaultTreeSpeed   = 250 * time.Millisecond
	DefaultArrayLength = 50
	MinArrayLength     = 5
	MaxArrayLength     = 100

	// TreeLabelMax bounds the random values of new tree nodes (exclusive).
	TreeLabelMax = 100
)

// Kind tells a Renderer how to treat an Event.
type Kind string

const (
	// KindFrame is an intermediate snapshot.
	KindFrame Kind = "frame"
	// KindDone is the last event of a successful run.
	KindDone Kind = "done"
)

// QueueItem is a priority-queue row of the graph panel. Infinite entries
// carry a zero Distance.
type QueueItem struct {
	Node     string `json:"node"`
	Distance int64  `json:"distance"`
	Infinite bool   `json:"infinite,omitempty"`
}

// Event is what a Renderer draws. Only the fields of its Panel are set:
// Values and Highlight for sort; Visited, Queue and Path for graph;
// Visited and Labels for tree. Frames are numbered from 0; the KindDone
// event carries the number of frames before it.
type Event struct {
	Panel     Panel       `json:"panel"`
	Kind      Kind        `json:"kind"`
	Step      int         `json:"step"`
	Values    []int       `json:"values,omitempty"`
	Highlight []int       `json:"highlight,omitempty"`
	Visited   []string    `json:"visited,omitempty"`
	Queue     []QueueItem `json:"queue,omitempty"`
	Path      []string    `json:"path,omitempty"`
	Labels    []string    `json:"labels,omitempty"`
}

// Renderer draws events. An error aborts the run that produced the event.
type Renderer interface {
	Render(ctx context.Context, ev Event) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, ev Event) error

// Render calls f.
func (f RendererFunc) Render(ctx context.Context, ev Event) error { return f(ctx, ev) }

type discard struct{}

func (discard) Render(context.Context, Event) error { return nil }

// queueItems converts dijkstra queue entries for rendering.
func queueItems(q []dijkstra.QueueEntry) []QueueItem {
	out := make([]QueueItem, len(q))
	for i, e := range q {
		out[i] = QueueItem{Node: e.Node}
		if e.Reachable() {
			out[i].Distance = e.Distance
		} else {
			out[i].Infinite = true
		}
	}
	return out
}

// Option configures a Session. Invalid options are recorded and surfaced
// as ErrOptionViolation by NewSession.
type Option func(*Options)

// Options holds the construction parameters of a Session.
type Options struct {
	Renderer    Renderer
	Rand        *rand.Rand
	ArrayLength int
	Strategy    dijkstra.Strategy
	Speeds      map[Panel]time.Duration

	err error
}

// DefaultOptions returns a discarding renderer, a time-seeded RNG, the
// default array length, the heap strategy and the panel speeds.
func DefaultOptions() Options {
	return Options{
		Renderer:    discard{},
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		ArrayLength: DefaultArrayLength,
		Strategy:    dijkstra.Heap,
		Speeds: map[Panel]time.Duration{
			PanelSort:  DefaultSortSpeed,
			PanelGraph: DefaultGraphSpeed,
			PanelTree:  DefaultTreeSpeed,
		},
	}
}

// WithRenderer sets the event consumer.
func WithRenderer(r Renderer) Option {
	return func(o *Options) {
		if r != nil {
			o.Renderer = r
		}
	}
}

// WithSeed makes array and tree generation reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithArrayLength sets the length of generated arrays.
func WithArrayLength(n int) Option {
	return func(o *Options) {
		if n < MinArrayLength || n > MaxArrayLength {
			o.err = fmt.Errorf("%w: %v (%d)", ErrOptionViolation, ErrBadArrayLength, n)
			return
		}
		o.ArrayLength = n
	}
}

// WithStrategy selects the Dijkstra frontier of the graph panel.
func WithStrategy(s dijkstra.Strategy) Option {
	return func(o *Options) {
		if s != dijkstra.Heap && s != dijkstra.LinearScan {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, dijkstra.ErrUnknownStrategy)
			return
		}
		o.Strategy = s
	}
}

// WithSpeed sets the pause between frames of one panel.
func WithSpeed(p Panel, d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: %v (%s)", ErrOptionViolation, ErrBadSpeed, d)
			return
		}
		o.Speeds[p] = d
	}
}
