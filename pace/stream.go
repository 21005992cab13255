package pace

import (
	"context"
	"iter"
)

// Producer runs an algorithm and publishes frames through emit. It must
// return when emit returns an error.
type Producer[T any] func(ctx context.Context, emit func(T) error) error

// Stream is the channel form of a Producer run.
//
// Frames arrive on C in the order they were emitted; C is closed when the
// producer returns, after which Err reports its outcome.
type Stream[T any] struct {
	C      <-chan T
	done   chan struct{}
	err    error
	cancel context.CancelFunc
}

// Run starts produce on its own goroutine. buffer is the channel capacity;
// zero gives lock-step delivery, which keeps the producer exactly one frame
// ahead of the consumer.
func Run[T any](ctx context.Context, buffer int, produce Producer[T]) *Stream[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	ch := make(chan T, max(buffer, 0))
	s := &Stream[T]{C: ch, done: make(chan struct{}), cancel: cancel}

	go func() {
		defer close(s.done)
		defer close(ch)
		defer cancel()
		s.err = produce(ctx, func(frame T) error {
			select {
			case ch <- frame:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()

	return s
}

// Stop cancels the producer. Frames already buffered stay readable.
func (s *Stream[T]) Stop() { s.cancel() }

// Err waits for the producer to finish and returns its error.
func (s *Stream[T]) Err() error {
	<-s.done
	return s.err
}

// All ranges over the remaining frames. Breaking out of the loop stops the
// producer.
func (s *Stream[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for frame := range s.C {
			if !yield(frame) {
				s.Stop()
				// drain so the producer goroutine can exit
				for range s.C {
				}
				return
			}
		}
	}
}

// Collect drains the stream into a slice and returns the producer error.
func (s *Stream[T]) Collect() ([]T, error) {
	var out []T
	for frame := range s.C {
		out = append(out, frame)
	}

	return out, s.Err()
}
