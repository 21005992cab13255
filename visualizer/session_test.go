package visualizer_test

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/visualizer"
)

// recorder keeps every rendered event.
type recorder struct {
	mu     sync.Mutex
	events []visualizer.Event
}

func (r *recorder) Render(_ context.Context, ev visualizer.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) all() []visualizer.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.events)
}

func (r *recorder) last() visualizer.Event {
	evs := r.all()
	return evs[len(evs)-1]
}

// newSession returns a seeded session without delays.
func newSession(t *testing.T, r visualizer.Renderer, opts ...visualizer.Option) *visualizer.Session {
	t.Helper()
	base := []visualizer.Option{
		visualizer.WithRenderer(r),
		visualizer.WithSeed(1),
		visualizer.WithSpeed(visualizer.PanelSort, 0),
		visualizer.WithSpeed(visualizer.PanelGraph, 0),
		visualizer.WithSpeed(visualizer.PanelTree, 0),
	}
	s, err := visualizer.NewSession(append(base, opts...)...)
	require.NoError(t, err)
	return s
}

func TestNewSession_Defaults(t *testing.T) {
	s, err := visualizer.NewSession(visualizer.WithSeed(3))
	require.NoError(t, err)

	a := s.Array()
	require.Len(t, a, visualizer.DefaultArrayLength)
	for _, v := range a {
		assert.GreaterOrEqual(t, v, builder.DefaultArrayMin)
		assert.Less(t, v, builder.DefaultArrayMax)
	}
	assert.Equal(t, a, s.OriginalArray())
	assert.Equal(t, visualizer.DefaultTreeSpeed, s.Speed(visualizer.PanelTree))
	assert.Equal(t, visualizer.DefaultSortSpeed, s.Speed(visualizer.PanelSort))

	start, end := s.Endpoints()
	assert.Empty(t, start)
	assert.Empty(t, end)
	assert.Zero(t, s.Tree().VertexCount())
}

func TestNewSession_InvalidOptions(t *testing.T) {
	for name, opt := range map[string]visualizer.Option{
		"length":   visualizer.WithArrayLength(4),
		"speed":    visualizer.WithSpeed(visualizer.PanelSort, -1),
		"strategy": visualizer.WithStrategy(dijkstra.Strategy(9)),
	} {
		_, err := visualizer.NewSession(opt)
		assert.ErrorIs(t, err, visualizer.ErrOptionViolation, name)
	}
}

func TestSession_ArrayEditing(t *testing.T) {
	s := newSession(t, nil)

	a, err := s.SetArrayLength(10)
	require.NoError(t, err)
	assert.Len(t, a, 10)
	assert.Equal(t, a, s.Array())

	_, err = s.SetArrayLength(101)
	assert.ErrorIs(t, err, visualizer.ErrBadArrayLength)

	b, err := s.GenerateArray()
	require.NoError(t, err)
	assert.Len(t, b, 10)

	assert.ErrorIs(t, s.SetSpeed(visualizer.PanelSort, -1), visualizer.ErrBadSpeed)
}

func TestRunSort(t *testing.T) {
	for _, name := range []string{"bubble", "insertion", "merge", "quick"} {
		t.Run(name, func(t *testing.T) {
			rec := &recorder{}
			s := newSession(t, rec)
			require.NoError(t, s.SetArray([]int{5, 1, 4, 2, 3}))

			out, err := s.RunSort(context.Background(), name)
			require.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3, 4, 5}, out)
			assert.Equal(t, out, s.Array())
			assert.Equal(t, []int{5, 1, 4, 2, 3}, s.OriginalArray())

			evs := rec.all()
			require.GreaterOrEqual(t, len(evs), 2)
			for i, ev := range evs[:len(evs)-1] {
				assert.Equal(t, visualizer.PanelSort, ev.Panel)
				assert.Equal(t, visualizer.KindFrame, ev.Kind)
				assert.Equal(t, i, ev.Step)
				assert.Len(t, ev.Values, 5)
			}
			done := rec.last()
			assert.Equal(t, visualizer.KindDone, done.Kind)
			assert.Equal(t, len(evs)-1, done.Step)
			assert.Empty(t, done.Highlight)
			assert.Equal(t, out, done.Values)
		})
	}
}

func TestRunSort_NoSwapsOnlyDone(t *testing.T) {
	for _, values := range [][]int{{1, 2, 3}, {}} {
		rec := &recorder{}
		s := newSession(t, rec)
		require.NoError(t, s.SetArray(values))

		_, err := s.RunSort(context.Background(), "bubble")
		require.NoError(t, err)

		evs := rec.all()
		require.Len(t, evs, 1, "%v", values)
		assert.Equal(t, visualizer.KindDone, evs[0].Kind)
		assert.Zero(t, evs[0].Step)
	}
}

func TestRunSort_UnknownAlgorithm(t *testing.T) {
	s := newSession(t, nil)
	_, err := s.RunSort(context.Background(), "bogo")
	assert.Error(t, err)
	assert.False(t, s.Busy(visualizer.PanelSort))
}

// blocker holds the first event until release is closed.
type blocker struct {
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func newBlocker() *blocker {
	return &blocker{started: make(chan struct{}), release: make(chan struct{})}
}

func (b *blocker) Render(ctx context.Context, _ visualizer.Event) error {
	b.once.Do(func() { close(b.started) })
	select {
	case <-b.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestSession_BusyWhileRunning(t *testing.T) {
	b := newBlocker()
	s := newSession(t, b)
	require.NoError(t, s.SetArray([]int{3, 2, 1}))

	errc := make(chan error, 1)
	go func() {
		_, err := s.RunSort(context.Background(), "bubble")
		errc <- err
	}()
	<-b.started

	assert.True(t, s.Busy(visualizer.PanelSort))
	_, err := s.RunSort(context.Background(), "quick")
	assert.ErrorIs(t, err, visualizer.ErrBusy)
	assert.ErrorIs(t, s.SetArray([]int{1}), visualizer.ErrBusy)
	_, err = s.GenerateArray()
	assert.ErrorIs(t, err, visualizer.ErrBusy)

	// other panels stay editable
	_, err = s.AddNode()
	assert.NoError(t, err)
	_, err = s.AddTreeNode(1)
	assert.NoError(t, err)

	close(b.release)
	require.NoError(t, <-errc)
	assert.False(t, s.Busy(visualizer.PanelSort))
	assert.Equal(t, []int{1, 2, 3}, s.Array())
}

func TestRunSort_CancelLeavesPartialArray(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := 0
	r := visualizer.RendererFunc(func(context.Context, visualizer.Event) error {
		frames++
		if frames == 1 {
			cancel()
		}
		return nil
	})
	s := newSession(t, r)
	require.NoError(t, s.SetArray([]int{4, 3, 2, 1}))

	_, err := s.RunSort(ctx, "bubble")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []int{3, 4, 2, 1}, s.Array())
	assert.False(t, s.Busy(visualizer.PanelSort))
}

func TestRunSort_RendererErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	s := newSession(t, visualizer.RendererFunc(func(context.Context, visualizer.Event) error { return boom }))
	require.NoError(t, s.SetArray([]int{2, 1}))

	_, err := s.RunSort(context.Background(), "insertion")
	assert.ErrorIs(t, err, boom)
}

func TestSession_NodeNamingAndAutoSelect(t *testing.T) {
	s := newSession(t, nil)

	a, err := s.AddNode()
	require.NoError(t, err)
	assert.Equal(t, "A", a)
	start, end := s.Endpoints()
	assert.Equal(t, "A", start)
	assert.Equal(t, "A", end)

	for i := 1; i < 27; i++ {
		_, err = s.AddNode()
		require.NoError(t, err)
	}
	ids := s.Graph().Vertices()
	assert.Equal(t, "Z", ids[25])
	assert.Equal(t, "AA", ids[26])

	// the selections survive while their nodes exist
	require.NoError(t, s.SetEnd("C"))
	require.NoError(t, s.RemoveNode("B"))
	start, end = s.Endpoints()
	assert.Equal(t, "A", start)
	assert.Equal(t, "C", end)

	// deleting a selected node falls back to the first / last node
	require.NoError(t, s.RemoveNode("A"))
	require.NoError(t, s.RemoveNode("C"))
	start, end = s.Endpoints()
	assert.Equal(t, "D", start)
	assert.Equal(t, "AA", end)

	assert.ErrorIs(t, s.RemoveNode("A"), visualizer.ErrUnknownNode)
	assert.ErrorIs(t, s.SetStart("nope"), visualizer.ErrUnknownNode)

	require.NoError(t, s.ResetGraph())
	start, end = s.Endpoints()
	assert.Empty(t, start)
	assert.Empty(t, end)
	a, err = s.AddNode()
	require.NoError(t, err)
	assert.Equal(t, "A", a, "naming restarts after reset")
}

func TestRunPathfinding_Validation(t *testing.T) {
	s := newSession(t, nil)
	ctx := context.Background()

	_, err := s.RunPathfinding(ctx)
	assert.ErrorIs(t, err, visualizer.ErrEndpointsUnset)

	_, err = s.AddNode()
	require.NoError(t, err)
	_, err = s.AddNode()
	require.NoError(t, err)
	// a fresh second node does not move the end selection off "A"
	_, err = s.RunPathfinding(ctx)
	assert.ErrorIs(t, err, visualizer.ErrSameEndpoints)
}

// buildTriangle draws A→B, B→C (weight 1) and A→C (weight 5).
func buildTriangle(t *testing.T, s *visualizer.Session) {
	t.Helper()
	for range 3 {
		_, err := s.AddNode()
		require.NoError(t, err)
	}
	_, err := s.Connect("A", "B")
	require.NoError(t, err)
	_, err = s.Connect("B", "C")
	require.NoError(t, err)
	ac, err := s.Connect("A", "C")
	require.NoError(t, err)
	require.NoError(t, s.SetEdgeWeight(ac, 5))
	require.NoError(t, s.SetEnd("C"))
}

func TestRunPathfinding(t *testing.T) {
	for _, st := range []dijkstra.Strategy{dijkstra.Heap, dijkstra.LinearScan} {
		t.Run(st.String(), func(t *testing.T) {
			rec := &recorder{}
			s := newSession(t, rec, visualizer.WithStrategy(st))
			buildTriangle(t, s)

			res, err := s.RunPathfinding(context.Background())
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, []string{"A", "B", "C"}, res.Path)
			assert.Equal(t, int64(2), res.Distance)
			assert.Equal(t, res.Path, s.LastPath())

			done := rec.last()
			assert.Equal(t, visualizer.KindDone, done.Kind)
			assert.Equal(t, visualizer.PanelGraph, done.Panel)
			assert.Equal(t, []string{"A", "B", "C"}, done.Path)
			assert.Empty(t, done.Queue)

			first := rec.all()[0]
			assert.Equal(t, visualizer.QueueItem{Node: "A", Distance: 0}, first.Queue[0])
		})
	}
}

func TestRunPathfinding_LinearQueueShowsInfinity(t *testing.T) {
	rec := &recorder{}
	s := newSession(t, rec, visualizer.WithStrategy(dijkstra.LinearScan))
	buildTriangle(t, s)

	_, err := s.RunPathfinding(context.Background())
	require.NoError(t, err)

	want := []visualizer.QueueItem{
		{Node: "A", Distance: 0},
		{Node: "B", Infinite: true},
		{Node: "C", Infinite: true},
	}
	if diff := cmp.Diff(want, rec.all()[0].Queue); diff != "" {
		t.Errorf("first queue mismatch (-want +got):\n%s", diff)
	}
}

func TestRunPathfinding_ZeroWeightCountsAsDefault(t *testing.T) {
	s := newSession(t, nil)
	for range 2 {
		_, err := s.AddNode()
		require.NoError(t, err)
	}
	eid, err := s.Connect("A", "B")
	require.NoError(t, err)
	require.NoError(t, s.SetEdgeWeight(eid, 0))
	require.NoError(t, s.SetEnd("B"))
	assert.ErrorIs(t, s.SetEdgeWeight(eid, -3), visualizer.ErrBadWeight)

	res, err := s.RunPathfinding(context.Background())
	require.NoError(t, err)
	assert.Equal(t, builder.DefaultEdgeWeight, res.Distance)
}

func TestRunPathfinding_Unreachable(t *testing.T) {
	rec := &recorder{}
	s := newSession(t, rec)
	for range 2 {
		_, err := s.AddNode()
		require.NoError(t, err)
	}
	_, err := s.Connect("B", "A")
	require.NoError(t, err)
	require.NoError(t, s.SetEnd("B"))

	res, err := s.RunPathfinding(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Empty(t, s.LastPath())
	assert.Equal(t, visualizer.KindDone, rec.last().Kind)
}

func TestLoadGraph_Nil(t *testing.T) {
	s := newSession(t, nil)
	_, err := s.AddNode()
	require.NoError(t, err)

	assert.ErrorIs(t, s.LoadGraph(nil), visualizer.ErrGraphNil)
	assert.Equal(t, 1, s.Graph().VertexCount(), "graph untouched")
}

func TestLoadGraph_MirrorsUndirectedEdges(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Path(3))
	require.NoError(t, err)

	s := newSession(t, nil)
	require.NoError(t, s.LoadGraph(g))
	eg := s.Graph()
	assert.True(t, eg.Directed())
	assert.Equal(t, 4, eg.EdgeCount())
	for _, e := range eg.Edges() {
		assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
	}

	start, end := s.Endpoints()
	assert.Equal(t, "A", start)
	assert.Equal(t, "C", end)

	next, err := s.AddNode()
	require.NoError(t, err)
	assert.Equal(t, "D", next)

	require.NoError(t, s.SetStart("C"))
	require.NoError(t, s.SetEnd("A"))
	res, err := s.RunPathfinding(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "A"}, res.Path)
}

func TestSession_TreeShape(t *testing.T) {
	s := newSession(t, nil)
	for i := range 5 {
		id, err := s.AddRandomTreeNode()
		require.NoError(t, err)
		assert.Equal(t, strconv.Itoa(i+1), id)
	}

	tree := s.Tree()
	assert.False(t, tree.Directed())
	assert.True(t, tree.HasEdge("1", "2"))
	assert.True(t, tree.HasEdge("1", "3"))
	assert.True(t, tree.HasEdge("2", "4"))
	assert.True(t, tree.HasEdge("2", "5"))
	assert.Equal(t, 4, tree.EdgeCount())

	for _, id := range tree.Vertices() {
		v, err := tree.Vertex(id)
		require.NoError(t, err)
		n, err := strconv.Atoi(v.Label)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, visualizer.TreeLabelMax)
	}

	require.NoError(t, s.ResetTree())
	assert.Zero(t, s.Tree().VertexCount())
}

func TestRunTraversal(t *testing.T) {
	cases := []struct {
		name       string
		wantOrder  []string
		wantLabels []string
	}{
		{visualizer.TraversalBFS, []string{"1", "2", "3", "4", "5", "6"}, []string{"50", "30", "70", "20", "40", "60"}},
		{visualizer.TraversalDFS, []string{"1", "2", "4", "5", "3", "6"}, []string{"50", "30", "20", "40", "70", "60"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recorder{}
			s := newSession(t, rec)
			require.NoError(t, s.LoadTree([]int{50, 30, 70, 20, 40, 60}))

			order, err := s.RunTraversal(context.Background(), tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.wantOrder, order)

			evs := rec.all()
			require.Len(t, evs, len(tc.wantOrder)+1)
			for i, ev := range evs[:len(evs)-1] {
				assert.Equal(t, visualizer.KindFrame, ev.Kind)
				assert.Len(t, ev.Visited, i+1, "one node per frame")
			}
			done := rec.last()
			assert.Equal(t, visualizer.KindDone, done.Kind)
			assert.Equal(t, tc.wantLabels, done.Labels)
		})
	}
}

func TestRunTraversal_Errors(t *testing.T) {
	s := newSession(t, nil)
	_, err := s.RunTraversal(context.Background(), visualizer.TraversalBFS)
	assert.ErrorIs(t, err, visualizer.ErrEmptyTree)

	_, err = s.RunTraversal(context.Background(), "astar")
	assert.ErrorIs(t, err, visualizer.ErrUnknownTraversal)
	assert.False(t, s.Busy(visualizer.PanelTree))
}

func TestRunTraversal_SingleNode(t *testing.T) {
	rec := &recorder{}
	s := newSession(t, rec)
	_, err := s.AddTreeNode(42)
	require.NoError(t, err)

	order, err := s.RunTraversal(context.Background(), visualizer.TraversalDFS)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, order)
	assert.Equal(t, []string{"42"}, rec.last().Labels)
}

func TestStream_ForwardsEvents(t *testing.T) {
	stream := visualizer.Stream(context.Background(), 0, func(ctx context.Context, r visualizer.Renderer) error {
		s, err := visualizer.NewSession(visualizer.WithRenderer(r), visualizer.WithSpeed(visualizer.PanelTree, 0))
		if err != nil {
			return err
		}
		if err = s.LoadTree([]int{1, 2, 3}); err != nil {
			return err
		}
		_, err = s.RunTraversal(ctx, visualizer.TraversalBFS)
		return err
	})

	evs, err := stream.Collect()
	require.NoError(t, err)
	require.Len(t, evs, 4)
	assert.Equal(t, visualizer.KindDone, evs[3].Kind)
	assert.Equal(t, []string{"1", "2", "3"}, evs[3].Labels)
}

// the graph snapshot handed to Dijkstra never aliases the editor graph
func TestRunPathfinding_DoesNotMutateEditorGraph(t *testing.T) {
	s := newSession(t, nil)
	for range 2 {
		_, err := s.AddNode()
		require.NoError(t, err)
	}
	eid, err := s.Connect("A", "B")
	require.NoError(t, err)
	require.NoError(t, s.SetEdgeWeight(eid, 0))
	require.NoError(t, s.SetEnd("B"))

	_, err = s.RunPathfinding(context.Background())
	require.NoError(t, err)

	var e core.Edge
	e, err = s.Graph().GetEdge(eid)
	require.NoError(t, err)
	assert.Zero(t, e.Weight)
}
