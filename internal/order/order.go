// Package order keeps sibling sets contiguously ordered.
//
// A sibling set is any slice of records sharing a parent key, sorted by
// their order field. Mutations are expressed as list moves on the sorted
// slice; Reindex then recomputes every record's order from its position,
// so contiguity (0..n-1, no gaps or duplicates) is a postcondition of
// every mutating operation regardless of how the slice was rearranged.
package order

// Assignment pairs a record ID with its recomputed order value.
// Each assignment is a full value, not a delta, so persisting a batch is
// idempotent: any prefix of it can be retried or resumed safely.
type Assignment struct {
	ID    int64
	Order int
}

// Next returns the order value for a record appended to a sibling set of
// size n.
func Next(n int) int {
	return n
}

// Move removes the element at from and reinserts it at to, shifting the
// elements between them by one. Indices are positions in the sorted
// sequence. Out-of-range indices or from == to leave s untouched; the
// gesture is treated as cancelled, not as an error.
func Move[T any](s []T, from, to int) []T {
	if from == to || from < 0 || from >= len(s) || to < 0 || to >= len(s) {
		return s
	}

	out := make([]T, 0, len(s))
	out = append(out, s[:from]...)
	out = append(out, s[from+1:]...)

	moved := s[from]
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return out
}

// Reindex produces one assignment per element: its ID paired with its
// position in s. This is the only place order values are rewritten.
// Applying Reindex twice to an already-contiguous sequence yields the
// identical assignment set.
func Reindex[T any](s []T, id func(T) int64) []Assignment {
	assignments := make([]Assignment, len(s))
	for i, item := range s {
		assignments[i] = Assignment{ID: id(item), Order: i}
	}
	return assignments
}

// IndexOf returns the position of the record with the given ID in s, or
// -1 if absent.
func IndexOf[T any](s []T, id func(T) int64, want int64) int {
	for i, item := range s {
		if id(item) == want {
			return i
		}
	}
	return -1
}

// Remove returns s without the element at i. Out-of-range i returns s
// unchanged.
func Remove[T any](s []T, i int) []T {
	if i < 0 || i >= len(s) {
		return s
	}
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}

// InsertAt returns s with item inserted at position i. Positions past the
// end append.
func InsertAt[T any](s []T, i int, item T) []T {
	if i < 0 {
		i = 0
	}
	if i > len(s) {
		i = len(s)
	}
	out := make([]T, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, item)
	out = append(out, s[i:]...)
	return out
}
