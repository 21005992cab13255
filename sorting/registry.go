package sorting

import (
	"cmp"
	"fmt"
	"slices"
)

// Algorithm names as shown by the sort panel.
const (
	NameBubble    = "bubble"
	NameInsertion = "insertion"
	NameMerge     = "merge"
	NameQuick     = "quick"
)

// Func is the common signature of every sort in this package.
type Func[T cmp.Ordered] func(values []T, opts ...Option[T]) ([]T, error)

// Lookup returns the sort registered under name.
func Lookup[T cmp.Ordered](name string) (Func[T], error) {
	switch name {
	case NameBubble:
		return Bubble[T], nil
	case NameInsertion:
		return Insertion[T], nil
	case NameMerge:
		return Merge[T], nil
	case NameQuick:
		return Quick[T], nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Names lists the registered algorithms in panel order.
func Names() []string {
	return slices.Clone(names)
}

var names = []string{NameBubble, NameInsertion, NameMerge, NameQuick}
