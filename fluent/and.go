package fluent

// AndConstraint is the continuation returned by every assertion so calls
// can be chained:
//
//	fluent.Slice(t, nums).Contain(2).And.HaveLen(3)
//
// It is an immutable wrapper; And references the same assertions object.
type AndConstraint[T any] struct {
	And *SliceAssertions[T]
}

func and[T any](a *SliceAssertions[T]) AndConstraint[T] {
	return AndConstraint[T]{And: a}
}
