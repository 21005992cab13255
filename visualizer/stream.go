package visualizer

import (
	"context"

	"github.com/katalvlaran/algoviz/pace"
)

// Stream runs fn on its own goroutine and delivers the events it renders
// through a pace.Stream. fn receives the stream's context and a Renderer
// bound to it; typically it builds a Session WithRenderer(r) and calls one
// of its Run methods.
func Stream(ctx context.Context, buffer int, fn func(ctx context.Context, r Renderer) error) *pace.Stream[Event] {
	return pace.Run[Event](ctx, buffer, func(ctx context.Context, emit func(Event) error) error {
		return fn(ctx, RendererFunc(func(_ context.Context, ev Event) error {
			return emit(ev)
		}))
	})
}
