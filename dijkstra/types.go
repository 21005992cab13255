// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnknownStrategy indicates a Strategy value outside the known set.
	ErrUnknownStrategy = errors.New("dijkstra: unknown frontier strategy")

	// ErrBadDelay indicates a negative per-step delay.
	ErrBadDelay = errors.New("dijkstra: delay must be non-negative")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Infinity is the distance of a vertex no path has reached yet.
const Infinity int64 = math.MaxInt64

// Strategy selects how the next closest vertex is found.
type Strategy int

const (
	// Heap keeps reached vertices in an indexed binary heap with decrease-key.
	// O((V + E) log V). Queue frames list only reached, unsettled vertices.
	Heap Strategy = iota

	// LinearScan scans every unsettled vertex for the minimum. O(V²).
	// Queue frames list every unsettled vertex, unreached ones at Infinity.
	LinearScan
)

// String returns the strategy name used by the path-finding panel.
func (s Strategy) String() string {
	switch s {
	case Heap:
		return "heap"
	case LinearScan:
		return "linear"
	}

	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "heap" or "linear" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "heap", "":
		return Heap, nil
	case "linear", "linear-scan":
		return LinearScan, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// QueueEntry is one row of the priority-queue panel.
type QueueEntry struct {
	Node     string
	Distance int64
}

// Reachable reports whether a path to the entry's vertex has been found.
func (q QueueEntry) Reachable() bool { return q.Distance != Infinity }

// Frame is one snapshot of a run.
//
// Intermediate frames carry the queue as it stood before the vertex just
// appended to Visited was extracted, sorted by distance with ties in vertex
// insertion order. The final frame has Done set, an empty Queue and the
// shortest Path (empty when the target was not reached).
type Frame struct {
	Step    int
	Visited []string
	Queue   []QueueEntry
	Path    []string
	Done    bool
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Strategy         – frontier implementation (Heap by default).
// Undirected       – run on core.Undirected(g) instead of g.
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is Infinity (no obstacles).
type Options struct {
	Ctx              context.Context
	Delay            time.Duration
	Strategy         Strategy
	Undirected       bool
	MaxDistance      int64
	InfEdgeThreshold int64
	OnStep           func(Frame) error

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns background context, no delay, the Heap strategy,
// the graph's own directedness and no distance or weight limits.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Strategy:         Heap,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// WithContext sets the context checked between iterations.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDelay sets the pause after each frame. A negative delay makes the
// run fail with ErrBadDelay before it starts.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: %s", ErrBadDelay, d)
			return
		}
		o.Delay = d
	}
}

// WithStrategy selects the frontier implementation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != Heap && s != LinearScan {
			o.err = fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithUndirected treats every edge as traversable in both directions.
func WithUndirected() Option {
	return func(o *Options) {
		o.Undirected = true
	}
}

// WithOnStep registers the frame consumer. An error from fn aborts the run.
func WithOnStep(fn func(Frame) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Zero or negative values panic with
// ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// Result is the outcome of ShortestPath or Distances.
//
// Dist holds the distance of every vertex when the run stopped; settled
// vertices are final, others are tentative or Infinity. Prev[v] is the
// predecessor of v on the best known path and is absent for the source and
// unreached vertices.
type Result struct {
	Path     []string
	Distance int64
	Found    bool
	Visited  []string
	Dist     map[string]int64
	Prev     map[string]string
}
