// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs and arrays.
//   - Constructors return sentinel errors; only option constructors panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, respect the core
// graph mode flags and emit vertices and edges in a documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph. The session uses it to
// grow the editor graphs in place.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
//	Path(n)            simple path P_n (n ≥ 2)
//	Cycle(n)           simple cycle C_n (n ≥ 3)
//	Star(n)            center "Center" plus n-1 leaves (n ≥ 2)
//	Complete(n)        complete graph K_n (n ≥ 1)
//	BinaryTree(n)      heap-shaped binary tree, parent of i is (i-1)/2 (n ≥ 1)
//	RandomSparse(n, p) Erdős–Rényi-like sample (n ≥ 1, 0 ≤ p ≤ 1)
//
// Array datasets - implemented in impl_array.go
//
//	RandomArray(n, lo, hi, opts...) values drawn uniformly from [lo, hi)
