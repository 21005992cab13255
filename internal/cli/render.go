package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoviz/visualizer"
)

// TextRenderer prints one line per event.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer returns a TextRenderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Render implements visualizer.Renderer.
func (r *TextRenderer) Render(_ context.Context, ev visualizer.Event) error {
	var line string
	switch ev.Panel {
	case visualizer.PanelSort:
		line = fmt.Sprintf("%v", ev.Values)
		if ev.Kind == visualizer.KindDone {
			line = "sorted " + line
		} else if len(ev.Highlight) > 0 {
			line += fmt.Sprintf(" %v", ev.Highlight)
		}
	case visualizer.PanelGraph:
		if ev.Kind == visualizer.KindDone {
			if len(ev.Path) == 0 {
				line = "No path found."
			} else {
				line = "path " + strings.Join(ev.Path, " -> ")
			}
			break
		}
		line = fmt.Sprintf("visited [%s] queue [%s]", strings.Join(ev.Visited, " "), formatQueue(ev.Queue))
	case visualizer.PanelTree:
		line = strings.Join(ev.Labels, " -> ")
		if ev.Kind == visualizer.KindDone {
			line = "order " + line
		}
	}
	_, err := fmt.Fprintf(r.w, "%4d  %s\n", ev.Step, line)
	return err
}

func formatQueue(q []visualizer.QueueItem) string {
	parts := make([]string, len(q))
	for i, it := range q {
		d := "∞"
		if !it.Infinite {
			d = strconv.FormatInt(it.Distance, 10)
		}
		parts[i] = it.Node + ":" + d
	}
	return strings.Join(parts, " ")
}
