package fluent

import (
	"github.com/moellerknudsen/fluentassertions/fluent/scope"
)

// Contain asserts that expected is an element of the subject under element
// equality. The optional trailing arguments are a reason format string and
// its values, merged into the failure message.
func (a *SliceAssertions[T]) Contain(expected T, reasonArgs ...any) AndConstraint[T] {
	reason := scope.NewReason(reasonArgs...)

	if a.absent {
		a.scope.FailWith("Expected collection to contain {0}{reason}, but found {1}.",
			reason, expected, a.subject)

		return and(a)
	}

	for _, item := range a.subject {
		if a.equal(item, expected) {
			return and(a)
		}
	}

	a.scope.FailWith("Expected collection {0} to contain {1}{reason}.",
		reason, a.subject, expected)

	return and(a)
}

// NotContainValue asserts that unexpected is not an element of the subject.
func (a *SliceAssertions[T]) NotContainValue(unexpected T, reasonArgs ...any) AndConstraint[T] {
	reason := scope.NewReason(reasonArgs...)

	if a.absent {
		a.scope.FailWith("Expected collection not to contain {0}{reason}, but found {1}.",
			reason, unexpected, a.subject)

		return and(a)
	}

	for _, item := range a.subject {
		if a.equal(item, unexpected) {
			a.scope.FailWith("Expected collection {0} to not contain {1}{reason}.",
				reason, a.subject, unexpected)

			return and(a)
		}
	}

	return and(a)
}

// ContainCombined appends extra to base and forwards to Contain: it asserts
// that the combined sequence appears as a single element of the subject,
// not that every item of it appears individually. The subject's element
// type must therefore itself be a slice.
func ContainCombined[E any](a *SliceAssertions[[]E], base []E, extra ...E) AndConstraint[[]E] {
	combined := make([]E, 0, len(base)+len(extra))
	combined = append(combined, base...)
	combined = append(combined, extra...)

	return a.Contain(combined)
}
