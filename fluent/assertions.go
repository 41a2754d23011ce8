package fluent

import (
	"github.com/google/go-cmp/cmp"

	"github.com/moellerknudsen/fluentassertions/fluent/scope"
)

// SliceAssertions evaluates assertions over an ordered sequence of T. The
// subject is bound once at construction and never mutated; a nil slice is
// the absent subject, which is itself a checkable state that every
// assertion reports as a failure rather than dereferencing.
type SliceAssertions[T any] struct {
	scope   *scope.Scope
	subject []T
	absent  bool
	cmpOpts cmp.Options
}

// Slice binds subject for assertion, reporting failures fatally through t.
//
// Example:
//
//	fluent.Slice(t, orders).Contain(expected, "order %s was just created", expected.ID)
func Slice[T any](t scope.TestingT, subject []T) *SliceAssertions[T] {
	return SliceWithScope(scope.ForTesting(t), subject)
}

// SliceWithScope binds subject for assertion against an explicit reporting
// scope. Use it to route failures through a Recorder, a logger, or a traced
// context.
func SliceWithScope[T any](s *scope.Scope, subject []T) *SliceAssertions[T] {
	return &SliceAssertions[T]{
		scope:   s,
		subject: subject,
		absent:  subject == nil,
	}
}

// WithCompareOptions returns a copy of the assertions whose element
// equality uses the given go-cmp options, e.g. cmpopts.EquateApprox or a
// custom Comparer for types with unexported fields.
func (a *SliceAssertions[T]) WithCompareOptions(opts ...cmp.Option) *SliceAssertions[T] {
	clone := *a
	clone.cmpOpts = append(cmp.Options(nil), opts...)

	return &clone
}

func (a *SliceAssertions[T]) equal(x, y T) bool {
	return cmp.Equal(x, y, a.cmpOpts)
}
