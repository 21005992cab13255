// Package sorting implements the four array sorts of the visualizer
// (bubble, insertion, merge and quick) as snapshot producers.
//
// Every sort copies its input, sorts the copy in non-decreasing order and
// publishes a Frame after each mutation of the working array:
//
//   - Bubble, Insertion: after each adjacent swap, highlighting the pair;
//   - Quick:             after each Lomuto exchange, pivot placement included;
//   - Merge:             after each element written back from the merge buffer.
//
// Frames are delivered through WithOnStep, paced by WithDelay and stopped by
// cancelling the context given to WithContext. The caller's slice is never
// modified.
//
// Usage
//
//	out, err := sorting.Quick(values,
//	    sorting.WithContext[int](ctx),
//	    sorting.WithDelay[int](100*time.Millisecond),
//	    sorting.WithOnStep(func(f sorting.Frame[int]) error {
//	        return render(f.Values, f.Highlight)
//	    }),
//	)
//
// Lookup resolves an algorithm by its panel name ("bubble", "insertion",
// "merge", "quick") and reports ErrUnknownAlgorithm otherwise.
package sorting
