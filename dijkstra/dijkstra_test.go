package dijkstra_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dijkstra"
)

var strategies = []dijkstra.Strategy{dijkstra.Heap, dijkstra.LinearScan}

// diamond is the four-node classroom graph:
//
//	A→B 1, A→C 4, B→C 2, B→D 5, C→D 1   (best A→D = A,B,C,D = 4)
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, e := range []struct {
		from, to string
		w        int64
	}{{"A", "B", 1}, {"A", "C", 4}, {"B", "C", 2}, {"B", "D", 5}, {"C", "D", 1}} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}
	return g
}

// bruteForce enumerates every simple path and returns the cheapest cost.
func bruteForce(g *core.Graph, from, to string) (int64, bool) {
	adj := g.WeightedAdjacency()
	best, found := dijkstra.Infinity, false
	onPath := map[string]bool{}
	var walk func(u string, cost int64)
	walk = func(u string, cost int64) {
		if u == to {
			if cost < best {
				best, found = cost, true
			}
			return
		}
		onPath[u] = true
		for v, w := range adj[u] {
			if !onPath[v] {
				walk(v, cost+w)
			}
		}
		onPath[u] = false
	}
	walk(from, 0)
	return best, found
}

func TestShortestPath_Validation(t *testing.T) {
	g := diamond(t)

	_, err := dijkstra.ShortestPath(nil, "A", "D")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
	_, err = dijkstra.ShortestPath(g, "", "D")
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)
	_, err = dijkstra.ShortestPath(g, "X", "D")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.ShortestPath(g, "A", "X")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.ShortestPath(g, "A", "")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.ShortestPath(g, "A", "D", dijkstra.WithStrategy(dijkstra.Strategy(9)))
	require.ErrorIs(t, err, dijkstra.ErrUnknownStrategy)
	_, err = dijkstra.ShortestPath(g, "A", "D", dijkstra.WithDelay(-1))
	require.ErrorIs(t, err, dijkstra.ErrBadDelay)

	require.Panics(t, func() { dijkstra.WithMaxDistance(-1)(&dijkstra.Options{}) })
	require.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0)(&dijkstra.Options{}) })
}

func TestShortestPath_KnownPath(t *testing.T) {
	g := diamond(t)
	want, ok := bruteForce(g, "A", "D")
	require.True(t, ok)
	require.Equal(t, int64(4), want)

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			res, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithStrategy(s))
			require.NoError(t, err)
			require.True(t, res.Found)
			require.Equal(t, []string{"A", "B", "C", "D"}, res.Path)
			require.Equal(t, want, res.Distance)
			require.Equal(t, []string{"A", "B", "C", "D"}, res.Visited)
			require.Equal(t, "C", res.Prev["D"])
		})
	}
}

func TestShortestPath_FramesLinearScan(t *testing.T) {
	var frames []dijkstra.Frame
	_, err := dijkstra.ShortestPath(diamond(t), "A", "D",
		dijkstra.WithStrategy(dijkstra.LinearScan),
		dijkstra.WithOnStep(func(f dijkstra.Frame) error {
			frames = append(frames, f)
			return nil
		}),
	)
	require.NoError(t, err)

	inf := dijkstra.Infinity
	want := []dijkstra.Frame{
		{Step: 0, Visited: []string{"A"}, Queue: []dijkstra.QueueEntry{{"A", 0}, {"B", inf}, {"C", inf}, {"D", inf}}},
		{Step: 1, Visited: []string{"A", "B"}, Queue: []dijkstra.QueueEntry{{"B", 1}, {"C", 4}, {"D", inf}}},
		{Step: 2, Visited: []string{"A", "B", "C"}, Queue: []dijkstra.QueueEntry{{"C", 3}, {"D", 6}}},
		{Step: 3, Visited: []string{"A", "B", "C", "D"}, Queue: []dijkstra.QueueEntry{{"D", 4}}},
		{Step: 4, Visited: []string{"A", "B", "C", "D"}, Queue: []dijkstra.QueueEntry{}, Path: []string{"A", "B", "C", "D"}, Done: true},
	}
	if diff := cmp.Diff(want, frames); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestShortestPath_FramesHeapHideUnreached(t *testing.T) {
	var queues [][]dijkstra.QueueEntry
	_, err := dijkstra.ShortestPath(diamond(t), "A", "D", dijkstra.WithOnStep(func(f dijkstra.Frame) error {
		queues = append(queues, f.Queue)
		return nil
	}))
	require.NoError(t, err)

	want := [][]dijkstra.QueueEntry{
		{{"A", 0}},
		{{"B", 1}, {"C", 4}},
		{{"C", 3}, {"D", 6}},
		{{"D", 4}},
		{},
	}
	if diff := cmp.Diff(want, queues); diff != "" {
		t.Errorf("queues mismatch (-want +got):\n%s", diff)
	}
}

func TestShortestPath_TiesFollowInsertionOrder(t *testing.T) {
	for _, order := range [][]string{{"A", "B", "C", "D"}, {"A", "C", "B", "D"}} {
		g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
		for _, id := range order {
			require.NoError(t, g.AddVertex(id))
		}
		_, _ = g.AddEdge("A", "B", 1)
		_, _ = g.AddEdge("A", "C", 1)
		_, _ = g.AddEdge("B", "D", 1)
		_, _ = g.AddEdge("C", "D", 1)

		for _, s := range strategies {
			res, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithStrategy(s))
			require.NoError(t, err)
			require.Equal(t, order, res.Visited, "%v/%s", order, s)
			require.Equal(t, []string{"A", order[1], "D"}, res.Path, "%v/%s", order, s)
		}
	}
}

func TestShortestPath_TiedFrontierKeepsLosers(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "D", 1)
	_, _ = g.AddEdge("B", "D", 5)

	for _, s := range strategies {
		res, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, []string{"A", "C", "D"}, res.Path, s.String())
		require.Equal(t, int64(2), res.Distance, s.String())
		require.Equal(t, []string{"A", "B", "C", "D"}, res.Visited, s.String())
	}
}

func TestShortestPath_StrategiesAgreeOnRandomSparse(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(seed%2 == 0), core.WithWeighted()},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 4))},
			builder.RandomSparse(7, 0.4),
		)
		require.NoError(t, err)

		var got []*dijkstra.Result
		for _, s := range strategies {
			res, err := dijkstra.Distances(g, "0", dijkstra.WithStrategy(s))
			require.NoError(t, err)
			got = append(got, res)
		}
		if diff := cmp.Diff(got[0].Dist, got[1].Dist); diff != "" {
			t.Fatalf("seed %d: distances differ (-heap +linear):\n%s", seed, diff)
		}
		require.Equal(t, got[1].Visited, got[0].Visited, "seed %d", seed)

		for _, id := range g.Vertices() {
			want, ok := bruteForce(g, "0", id)
			if !ok {
				require.Equal(t, dijkstra.Infinity, got[0].Dist[id], "seed %d %s", seed, id)
				continue
			}
			require.Equal(t, want, got[0].Dist[id], "seed %d %s", seed, id)
		}
	}
}

func TestShortestPath_SingleNode(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddVertex("A"))

	for _, s := range strategies {
		var frames int
		res, err := dijkstra.ShortestPath(g, "A", "A",
			dijkstra.WithStrategy(s),
			dijkstra.WithOnStep(func(dijkstra.Frame) error { frames++; return nil }),
		)
		require.NoError(t, err)
		require.True(t, res.Found)
		require.Equal(t, []string{"A"}, res.Path)
		require.Zero(t, res.Distance)
		require.Equal(t, 2, frames)
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 3)
	require.NoError(t, g.AddVertex("C"))

	for _, s := range strategies {
		var last dijkstra.Frame
		res, err := dijkstra.ShortestPath(g, "A", "C",
			dijkstra.WithStrategy(s),
			dijkstra.WithOnStep(func(f dijkstra.Frame) error { last = f; return nil }),
		)
		require.NoError(t, err)
		require.False(t, res.Found)
		require.Empty(t, res.Path)
		require.Equal(t, dijkstra.Infinity, res.Distance)
		require.Equal(t, []string{"A", "B"}, res.Visited)
		require.True(t, last.Done)
		require.Empty(t, last.Path)
		require.Empty(t, last.Queue)
	}
}

func TestShortestPath_Directedness(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("B", "A", 2)

	res, err := dijkstra.ShortestPath(g, "A", "B")
	require.NoError(t, err)
	require.False(t, res.Found)

	res, err = dijkstra.ShortestPath(g, "A", "B", dijkstra.WithUndirected())
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, int64(2), res.Distance)
	require.True(t, g.Directed(), "the caller's graph is untouched")
}

func TestShortestPath_UnweightedCountsHops(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("B", "C", 0)
	_, _ = g.AddEdge("A", "D", 0)
	_, _ = g.AddEdge("D", "E", 0)
	_, _ = g.AddEdge("E", "C", 0)

	res, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Path)
	require.Equal(t, int64(2), res.Distance)
}

func TestDistances_Limits(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "D", 7)

	res, err := dijkstra.Distances(g, "A")
	require.NoError(t, err)
	if diff := cmp.Diff(map[string]int64{"A": 0, "B": 2, "C": 4, "D": 7}, res.Dist); diff != "" {
		t.Errorf("Dist mismatch (-want +got):\n%s", diff)
	}
	require.Empty(t, res.Path)
	require.Equal(t, map[string]string{"B": "A", "C": "B", "D": "A"}, res.Prev)

	res, err = dijkstra.Distances(g, "A", dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	require.Equal(t, dijkstra.Infinity, res.Dist["C"])
	require.Equal(t, dijkstra.Infinity, res.Dist["D"])

	res, err = dijkstra.Distances(g, "A", dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	require.Equal(t, int64(4), res.Dist["C"])
	require.Equal(t, dijkstra.Infinity, res.Dist["D"])
}

func TestShortestPath_RandomAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 30; round++ {
		g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
		n := 3 + rng.Intn(5)
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddVertex(fmt.Sprintf("v%d", i)))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && rng.Float64() < 0.35 {
					_, err := g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", j), int64(rng.Intn(10)))
					require.NoError(t, err)
				}
			}
		}
		target := fmt.Sprintf("v%d", n-1)
		want, reachable := bruteForce(g, "v0", target)

		for _, s := range strategies {
			res, err := dijkstra.ShortestPath(g, "v0", target, dijkstra.WithStrategy(s))
			require.NoError(t, err)
			require.Equal(t, reachable, res.Found, "round %d/%s", round, s)
			if !reachable {
				continue
			}
			require.Equal(t, want, res.Distance, "round %d/%s", round, s)

			// the returned path exists and sums to the distance
			adj := g.WeightedAdjacency()
			var sum int64
			for i := 1; i < len(res.Path); i++ {
				w, ok := adj[res.Path[i-1]][res.Path[i]]
				require.True(t, ok)
				sum += w
			}
			require.Equal(t, want, sum)
		}
	}
}

func TestShortestPath_AbortAndCancel(t *testing.T) {
	boom := errors.New("boom")
	_, err := dijkstra.ShortestPath(diamond(t), "A", "D", dijkstra.WithOnStep(func(dijkstra.Frame) error {
		return boom
	}))
	require.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	steps := 0
	_, err = dijkstra.ShortestPath(diamond(t), "A", "D",
		dijkstra.WithContext(ctx),
		dijkstra.WithOnStep(func(dijkstra.Frame) error {
			steps++
			cancel()
			return nil
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, steps)
}

func TestParseStrategy(t *testing.T) {
	s, err := dijkstra.ParseStrategy("linear")
	require.NoError(t, err)
	require.Equal(t, dijkstra.LinearScan, s)
	s, err = dijkstra.ParseStrategy("")
	require.NoError(t, err)
	require.Equal(t, dijkstra.Heap, s)
	_, err = dijkstra.ParseStrategy("fib")
	require.ErrorIs(t, err, dijkstra.ErrUnknownStrategy)
}
