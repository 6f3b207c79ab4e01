package random

import "fmt"

// DefaultElements is picked from when ArrayElement is called without items.
var DefaultElements = []string{"a", "b", "c"}

// Element returns a uniformly chosen member of items.
func Element[T any](r *Random, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: cannot pick from an empty slice", ErrInvalidArgument)
	}
	return items[r.Int(0, len(items)-1)], nil
}

// ArrayElement picks one of items. A nil slice means no items were given and
// DefaultElements is used instead; a non-nil empty slice is an error.
func (r *Random) ArrayElement(items []string) (string, error) {
	if items == nil {
		items = DefaultElements
	}
	return Element(r, items)
}

// Elements returns n distinct members of items in random order. items is not
// modified.
func Elements[T any](r *Random, items []T, n int) ([]T, error) {
	if n < 0 || n > len(items) {
		return nil, fmt.Errorf("%w: cannot pick %d of %d elements", ErrInvalidArgument, n, len(items))
	}
	picked := make([]T, len(items))
	copy(picked, items)
	for i := 0; i < n; i++ {
		j := r.Int(i, len(picked)-1)
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked[:n:n], nil
}

// Shuffle permutes items in place.
func Shuffle[T any](r *Random, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.Int(0, i)
		items[i], items[j] = items[j], items[i]
	}
}
