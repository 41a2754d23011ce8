// Package predicate pairs a boolean function with a human-readable
// description so failure messages can show what a predicate means, not just
// that it evaluated to false.
//
// A Predicate is built once and reused across evaluations:
//
//	even := predicate.New[int]("x % 2 == 0", func(x int) bool { return x%2 == 0 })
//	even.Eval(4) // true
//	even.String() // "x % 2 == 0"
package predicate

// Predicate is a pure boolean function over T together with a display string
// used in failure messages.
type Predicate[T any] struct {
	fn          func(T) bool
	description string
}

// New builds a Predicate from a description and a function. The description
// should read like the predicate's source, e.g. "len(s) > 0".
func New[T any](description string, fn func(T) bool) Predicate[T] {
	return Predicate[T]{
		fn:          fn,
		description: description,
	}
}

// Eval evaluates the predicate against value. A Predicate with no function
// matches nothing.
func (p Predicate[T]) Eval(value T) bool {
	if p.fn == nil {
		return false
	}

	return p.fn(value)
}

// String returns the display form of the predicate.
func (p Predicate[T]) String() string {
	if p.description == "" {
		return "<unnamed predicate>"
	}

	return p.description
}
