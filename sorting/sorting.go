package sorting

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/algoviz/pace"
)

// sorter carries the working copy and the frame publisher of one run.
type sorter[T cmp.Ordered] struct {
	a      []T
	pacer  *pace.Pacer
	onStep func(Frame[T]) error
}

func newSorter[T cmp.Ordered](values []T, opts []Option[T]) (*sorter[T], error) {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	p, err := pace.New(o.Ctx, o.Delay)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}

	return &sorter[T]{a: slices.Clone(values), pacer: p, onStep: o.OnStep}, nil
}

// snapshot publishes the current array with the given highlight.
func (s *sorter[T]) snapshot(highlight ...int) error {
	return s.pacer.Tick(func(step int) error {
		return s.onStep(Frame[T]{Step: step, Values: slices.Clone(s.a), Highlight: highlight})
	})
}

func (s *sorter[T]) swap(i, j int) error {
	s.a[i], s.a[j] = s.a[j], s.a[i]
	return s.snapshot(i, j)
}

// Bubble sorts a copy of values by adjacent exchanges, publishing a frame
// after each swap with the pair highlighted.
//
// Complexity: O(n²) comparisons and swaps.
func Bubble[T cmp.Ordered](values []T, opts ...Option[T]) ([]T, error) {
	s, err := newSorter(values, opts)
	if err != nil {
		return nil, err
	}
	n := len(s.a)
	for i := 0; i < n-1; i++ {
		if err = s.pacer.Check(); err != nil {
			return nil, err
		}
		for j := 0; j < n-i-1; j++ {
			if s.a[j] > s.a[j+1] {
				if err = s.swap(j, j+1); err != nil {
					return nil, err
				}
			}
		}
	}

	return s.a, nil
}

// Insertion sorts a copy of values by sinking each element leftwards one
// adjacent swap at a time; every swap is a frame.
//
// Complexity: O(n²) worst case, O(n) on sorted input.
func Insertion[T cmp.Ordered](values []T, opts ...Option[T]) ([]T, error) {
	s, err := newSorter(values, opts)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(s.a); i++ {
		if err = s.pacer.Check(); err != nil {
			return nil, err
		}
		for j := i; j > 0 && s.a[j-1] > s.a[j]; j-- {
			if err = s.swap(j-1, j); err != nil {
				return nil, err
			}
		}
	}

	return s.a, nil
}

// Merge sorts a copy of values top-down. Each element written back from the
// merge buffer is a frame highlighting the written index, so intermediate
// frames may hold a value twice until the merge of that range completes.
// Equal elements keep their relative order.
//
// Complexity: O(n log n) time, O(n) extra memory.
func Merge[T cmp.Ordered](values []T, opts ...Option[T]) ([]T, error) {
	s, err := newSorter(values, opts)
	if err != nil {
		return nil, err
	}
	buf := make([]T, 0, len(s.a))
	if err = s.mergeSort(0, len(s.a)-1, buf); err != nil {
		return nil, err
	}

	return s.a, nil
}

func (s *sorter[T]) mergeSort(left, right int, buf []T) error {
	if left >= right {
		return nil
	}
	mid := left + (right-left)/2
	if err := s.mergeSort(left, mid, buf); err != nil {
		return err
	}
	if err := s.mergeSort(mid+1, right, buf); err != nil {
		return err
	}

	return s.merge(left, mid, right, buf)
}

func (s *sorter[T]) merge(left, mid, right int, buf []T) error {
	merged := buf[:0]
	i, j := left, mid+1
	for i <= mid && j <= right {
		if s.a[i] <= s.a[j] {
			merged = append(merged, s.a[i])
			i++
		} else {
			merged = append(merged, s.a[j])
			j++
		}
	}
	merged = append(merged, s.a[i:mid+1]...)
	merged = append(merged, s.a[j:right+1]...)

	for k, v := range merged {
		s.a[left+k] = v
		if err := s.snapshot(left + k); err != nil {
			return err
		}
	}

	return nil
}

// Quick sorts a copy of values with Lomuto partitioning around the last
// element of each range. Every exchange, including placing the pivot, is a
// frame.
//
// Complexity: O(n log n) expected, O(n²) on already sorted input.
func Quick[T cmp.Ordered](values []T, opts ...Option[T]) ([]T, error) {
	s, err := newSorter(values, opts)
	if err != nil {
		return nil, err
	}
	if err = s.quickSort(0, len(s.a)-1); err != nil {
		return nil, err
	}

	return s.a, nil
}

func (s *sorter[T]) quickSort(low, high int) error {
	for low < high {
		p, err := s.partition(low, high)
		if err != nil {
			return err
		}
		if err = s.quickSort(low, p-1); err != nil {
			return err
		}
		low = p + 1
	}

	return nil
}

func (s *sorter[T]) partition(low, high int) (int, error) {
	if err := s.pacer.Check(); err != nil {
		return 0, err
	}
	pivot := s.a[high]
	i := low - 1
	for j := low; j < high; j++ {
		if s.a[j] < pivot {
			i++
			if err := s.swap(i, j); err != nil {
				return 0, err
			}
		}
	}
	if err := s.swap(i+1, high); err != nil {
		return 0, err
	}

	return i + 1, nil
}
