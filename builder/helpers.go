// Package builder provides internal helper functions used by Constructor
// implementations to build common topologies.
package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// addVertices inserts vertices cfg.idFn(0..n-1) into g, labelled by
// cfg.labelFn when one is configured. Returns the IDs in index order.
//
// Complexity: O(n) time and space.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		label := ""
		if cfg.labelFn != nil {
			label = cfg.labelFn(i, cfg.rng)
		}
		if err := g.AddLabeledVertex(ids[i], label); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// addEdge connects u→v with a weight drawn from cfg when g is weighted and
// zero otherwise.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	var w int64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// tooFew wraps ErrTooFewVertices with the constructor context.
func tooFew(method string, n, min int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
}
