// SPDX-License-Identifier: MIT
// Package: algoviz/builder
//
// impl_array.go - array datasets for the sorting panel.
//
// Contract:
//   • n ≥ 1 (else ErrBadSize).
//   • lo < hi (else ErrInvalidRange); values are drawn from [lo, hi).
//   • An RNG is required (else ErrNeedRandSource); WithSeed freezes the draw.
//
// Complexity: O(n).

package builder

import "fmt"

// Defaults of the sort panel's "Generate Array" button.
const (
	DefaultArrayLength = 50
	DefaultArrayMin    = 30
	DefaultArrayMax    = 280
)

const methodRandomArray = "RandomArray"

// RandomArray returns n integers drawn uniformly from [lo, hi).
func RandomArray(n, lo, hi int, opts ...BuilderOption) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomArray, n, ErrBadSize)
	}
	if lo >= hi {
		return nil, fmt.Errorf("%s: [%d,%d): %w", methodRandomArray, lo, hi, ErrInvalidRange)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomArray, ErrNeedRandSource)
	}

	out := make([]int, n)
	for i := range out {
		out[i] = lo + cfg.rng.Intn(hi-lo)
	}

	return out, nil
}
