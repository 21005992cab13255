// Package builder provides helper functions and types
// for configuring ID and label schemes in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// IDFn generates a vertex identifier from its zero‐based index.
// It must be a pure, deterministic function.
type IDFn func(idx int) string

// LabelFn generates a display label for the vertex at idx. It may draw
// from rng, which is nil unless WithSeed or WithRand was given.
type LabelFn func(idx int, rng *rand.Rand) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// OneBasedIDFn returns the decimal string of idx+1, e.g. 0→"1". This is the
// tree editor's numbering.
func OneBasedIDFn(idx int) string {
	return strconv.Itoa(idx + 1)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25], e.g. 0→"A", 25→"Z".
// Panics if idx < 0 or idx > 25.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the “Excel‐style” column name for idx, e.g. 0→"A", 25→"Z", 26→"AA".
// The graph editor names its nodes this way so that it never runs out of letters.
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// RandomLabelFn returns a LabelFn drawing integers uniformly from [0, max).
// Without an RNG it falls back to idx % max. Panics if max < 1.
func RandomLabelFn(max int) LabelFn {
	if max < 1 {
		panic(fmt.Sprintf("RandomLabelFn: max must be ≥ 1, got %d", max))
	}
	return func(idx int, rng *rand.Rand) string {
		if rng == nil {
			return strconv.Itoa(idx % max)
		}
		return strconv.Itoa(rng.Intn(max))
	}
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithOneBasedIDs sets the ID scheme to OneBasedIDFn.
func WithOneBasedIDs() BuilderOption {
	return WithIDScheme(OneBasedIDFn)
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}
