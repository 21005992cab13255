// Package builder provides reusable “functional‐options”‐style fixtures for
// the visualizer: the graphs and trees its editors produce by hand, and the
// random arrays of the sorting panel.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme, label scheme and weight function.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – OneBasedIDFn:      decimal strings from one ("1","2",…), the tree editor.
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…), the graph editor.
//   - Labels (LabelFn): RandomLabelFn(100) gives the tree editor's 0–99 values.
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant DefaultEdgeWeight (1).
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//   - Topologies: Path, Cycle, Star, Complete, BinaryTree, RandomSparse.
//   - Arrays: RandomArray with the panel defaults DefaultArrayLength values
//     in [DefaultArrayMin, DefaultArrayMax).
//
// Guarantees:
//
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel runtime errors for invalid build parameters, wrapped with the
//     constructor name for context.
//   - Deterministic output for a fixed seed, options and constructor order.
//
// Example:
//
//	tree, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{
//	        builder.WithOneBasedIDs(),
//	        builder.WithLabelFn(builder.RandomLabelFn(100)),
//	        builder.WithSeed(1),
//	    },
//	    builder.BinaryTree(7),
//	)
package builder
