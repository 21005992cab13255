// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID CenterVertexID, then leaves via
//     cfg.idFn for i = 1..n-1.
//   - Emits spokes in stable order Center → leaf[i]. For directed graphs,
//     also emits leaf[i] → Center to preserve spoke symmetry.
//
// Complexity: O(n) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// CenterVertexID is the identifier of the hub vertex of Star.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, CenterVertexID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addEdge(g, cfg, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
			if g.Directed() {
				if err := addEdge(g, cfg, methodStar, leaf, CenterVertexID); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
