package sorting

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for sorting runs.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")

	// ErrUnknownAlgorithm is returned by Lookup for an unregistered name.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)

// Frame is one snapshot of the array taken right after a swap or write.
//
// Values is a private copy; Highlight lists the indices touched by the step.
type Frame[T cmp.Ordered] struct {
	Step      int
	Values    []T
	Highlight []int
}

// Option configures a sort run. Invalid options are recorded and surfaced
// as ErrOptionViolation when the sort is invoked.
type Option[T cmp.Ordered] func(*Options[T])

// Options holds the run parameters shared by every sort.
type Options[T cmp.Ordered] struct {
	// Ctx cancels the run between steps.
	Ctx context.Context

	// Delay is the pause after each published frame.
	Delay time.Duration

	// OnStep receives every frame. Returning an error aborts the sort.
	OnStep func(Frame[T]) error

	err error
}

// DefaultOptions returns background context, no delay and a no-op OnStep.
func DefaultOptions[T cmp.Ordered]() Options[T] {
	return Options[T]{
		Ctx:    context.Background(),
		OnStep: func(Frame[T]) error { return nil },
	}
}

// WithContext sets the context observed between steps.
func WithContext[T cmp.Ordered](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDelay sets the pause after each frame. Negative values are rejected.
func WithDelay[T cmp.Ordered](d time.Duration) Option[T] {
	return func(o *Options[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: delay cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithOnStep registers the frame consumer.
func WithOnStep[T cmp.Ordered](fn func(Frame[T]) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
