package sorting_test

import (
	"context"
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/algoviz/sorting"
)

type SortSuite struct {
	suite.Suite
	inputs map[string][]int
}

func (s *SortSuite) SetupTest() {
	rng := rand.New(rand.NewSource(7))
	random := make([]int, 60)
	for i := range random {
		random[i] = 30 + rng.Intn(250)
	}
	s.inputs = map[string][]int{
		"empty":      {},
		"single":     {42},
		"sorted":     {1, 2, 3, 4, 5},
		"reversed":   {5, 4, 3, 2, 1},
		"duplicates": {3, 1, 3, 2, 1, 3},
		"random":     random,
	}
}

func (s *SortSuite) TestEveryAlgorithmSortsWithoutMutatingInput() {
	for _, name := range sorting.Names() {
		fn, err := sorting.Lookup[int](name)
		s.Require().NoError(err)
		for label, in := range s.inputs {
			orig := slices.Clone(in)
			out, err := fn(in)
			s.Require().NoError(err, "%s/%s", name, label)

			want := slices.Clone(orig)
			slices.Sort(want)
			if diff := cmp.Diff(want, out); diff != "" {
				s.Failf("unsorted output", "%s/%s (-want +got):\n%s", name, label, diff)
			}
			s.Equal(orig, in, "%s/%s mutated its input", name, label)
		}
	}
}

func (s *SortSuite) TestSwapFramesArePermutations() {
	for _, name := range []string{sorting.NameBubble, sorting.NameInsertion, sorting.NameQuick} {
		fn, _ := sorting.Lookup[int](name)
		in := s.inputs["random"]
		want := slices.Sorted(slices.Values(in))

		var frames []sorting.Frame[int]
		_, err := fn(in, sorting.WithOnStep(func(f sorting.Frame[int]) error {
			frames = append(frames, f)
			return nil
		}))
		s.Require().NoError(err)
		s.Require().NotEmpty(frames, name)

		for i, f := range frames {
			s.Equal(i, f.Step)
			s.Len(f.Highlight, 2)
			s.Equal(want, slices.Sorted(slices.Values(f.Values)), "%s frame %d", name, i)
		}
		s.Equal(want, frames[len(frames)-1].Values, "%s last frame is the sorted array", name)
	}
}

func (s *SortSuite) TestMergeFrameCountAndFinalState() {
	in := s.inputs["reversed"]
	var frames []sorting.Frame[int]
	out, err := sorting.Merge(in, sorting.WithOnStep(func(f sorting.Frame[int]) error {
		frames = append(frames, f)
		return nil
	}))
	s.Require().NoError(err)
	// n=5 top-down: merges of sizes 2,3,2,5 → 12 writes
	s.Len(frames, 12)
	s.Equal(out, frames[len(frames)-1].Values)
	for _, f := range frames {
		s.Len(f.Highlight, 1)
	}
}

func TestSortSuite(t *testing.T) {
	suite.Run(t, new(SortSuite))
}

func TestBubble_FramesMatchSwaps(t *testing.T) {
	var got [][]int
	var hl [][]int
	_, err := sorting.Bubble([]int{3, 1, 2}, sorting.WithOnStep(func(f sorting.Frame[int]) error {
		got = append(got, f.Values)
		hl = append(hl, f.Highlight)
		return nil
	}))
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 3, 2}, {1, 2, 3}}, got)
	require.Equal(t, [][]int{{0, 1}, {1, 2}}, hl)
}

func TestQuick_LomutoSequence(t *testing.T) {
	var got [][]int
	_, err := sorting.Quick([]int{3, 1, 2}, sorting.WithOnStep(func(f sorting.Frame[int]) error {
		got = append(got, f.Values)
		return nil
	}))
	require.NoError(t, err)
	// pivot 2: 1<2 swaps index 0 with 1, then pivot lands at index 1
	require.Equal(t, [][]int{{1, 3, 2}, {1, 2, 3}}, got)
}

func TestMerge_Floats(t *testing.T) {
	out, err := sorting.Merge([]float64{2.5, 1, 2.5, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 1, 2.5, 2.5}, out)
}

func TestSort_Strings(t *testing.T) {
	out, err := sorting.Insertion([]string{"pear", "apple", "fig"})
	require.NoError(t, err)
	require.Equal(t, []string{"apple", "fig", "pear"}, out)
}

func TestSort_OnStepErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	_, err := sorting.Bubble([]int{4, 3, 2, 1}, sorting.WithOnStep(func(sorting.Frame[int]) error {
		calls++
		return boom
	}))
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, calls)
}

func TestSort_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	steps := 0
	_, err := sorting.Quick([]int{9, 8, 7, 6, 5, 4, 3, 2, 1},
		sorting.WithContext[int](ctx),
		sorting.WithOnStep(func(sorting.Frame[int]) error {
			steps++
			if steps == 2 {
				cancel()
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 2, steps)
}

func TestSort_InvalidOptions(t *testing.T) {
	_, err := sorting.Merge([]int{1}, sorting.WithDelay[int](-1))
	require.ErrorIs(t, err, sorting.ErrOptionViolation)

	_, err = sorting.Lookup[int]("bogo")
	require.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}
