package fluent

import (
	"github.com/moellerknudsen/fluentassertions/fluent/scope"
)

// BeEmpty asserts that the subject has no elements.
func (a *SliceAssertions[T]) BeEmpty(reasonArgs ...any) AndConstraint[T] {
	reason := scope.NewReason(reasonArgs...)

	if a.absent || len(a.subject) > 0 {
		a.scope.FailWith("Expected collection to be empty{reason}, but found {0}.",
			reason, a.subject)
	}

	return and(a)
}

// NotBeEmpty asserts that the subject has at least one element.
func (a *SliceAssertions[T]) NotBeEmpty(reasonArgs ...any) AndConstraint[T] {
	reason := scope.NewReason(reasonArgs...)

	if a.absent {
		a.scope.FailWith("Expected collection not to be empty{reason}, but found {0}.",
			reason, a.subject)

		return and(a)
	}

	if len(a.subject) == 0 {
		a.scope.FailWith("Expected collection not to be empty{reason}.", reason)
	}

	return and(a)
}

// HaveLen asserts that the subject has exactly expected elements.
func (a *SliceAssertions[T]) HaveLen(expected int, reasonArgs ...any) AndConstraint[T] {
	reason := scope.NewReason(reasonArgs...)

	if a.absent || len(a.subject) != expected {
		a.scope.FailWith("Expected collection to contain {0} item(s){reason}, but found {1}.",
			reason, expected, a.subject)
	}

	return and(a)
}
