package fluent

import (
	"github.com/moellerknudsen/fluentassertions/fluent/predicate"
	"github.com/moellerknudsen/fluentassertions/fluent/scope"
)

// ContainFunc asserts that at least one element satisfies p. Evaluation
// short-circuits on the first match.
func (a *SliceAssertions[T]) ContainFunc(p predicate.Predicate[T], reasonArgs ...any) AndConstraint[T] {
	reason := scope.NewReason(reasonArgs...)

	if a.absent {
		a.scope.FailWith("Expected collection to contain {0}{reason}, but found {1}.",
			reason, p, a.subject)

		return and(a)
	}

	for _, item := range a.subject {
		if p.Eval(item) {
			return and(a)
		}
	}

	a.scope.FailWith("Collection {0} should have an item matching {1}{reason}.",
		reason, a.subject, p)

	return and(a)
}

// OnlyContainFunc asserts that every element satisfies p. The scan is not
// short-circuited: the failure message reports the exact sub-sequence of
// elements that do not match.
func (a *SliceAssertions[T]) OnlyContainFunc(p predicate.Predicate[T], reasonArgs ...any) AndConstraint[T] {
	reason := scope.NewReason(reasonArgs...)

	if a.absent {
		a.scope.FailWith("Expected collection to contain only items matching {0}{reason}, but found {1}.",
			reason, p, a.subject)

		return and(a)
	}

	var mismatches []T

	for _, item := range a.subject {
		if !p.Eval(item) {
			mismatches = append(mismatches, item)
		}
	}

	if len(mismatches) > 0 {
		a.scope.FailWith("Expected collection to contain only items matching {0}{reason}, but {1} do(es) not match.",
			reason, p, mismatches)
	}

	return and(a)
}

// NotContainFunc asserts that no element satisfies p. Evaluation
// short-circuits on the first match.
func (a *SliceAssertions[T]) NotContainFunc(p predicate.Predicate[T], reasonArgs ...any) AndConstraint[T] {
	reason := scope.NewReason(reasonArgs...)

	if a.absent {
		a.scope.FailWith("Expected collection not to contain {0}{reason}, but found {1}.",
			reason, p, a.subject)

		return and(a)
	}

	for _, item := range a.subject {
		if p.Eval(item) {
			a.scope.FailWith("Collection {0} should not have any items matching {1}{reason}.",
				reason, a.subject, p)

			return and(a)
		}
	}

	return and(a)
}

// ContainSingleFunc asserts that exactly one element satisfies p.
func (a *SliceAssertions[T]) ContainSingleFunc(p predicate.Predicate[T], reasonArgs ...any) AndConstraint[T] {
	reason := scope.NewReason(reasonArgs...)

	if a.absent {
		a.scope.FailWith("Expected collection to contain a single item matching {0}{reason}, but found {1}.",
			reason, p, a.subject)

		return and(a)
	}

	count := 0

	for _, item := range a.subject {
		if p.Eval(item) {
			count++
		}
	}

	switch {
	case count == 0:
		a.scope.FailWith("Expected collection {0} to contain a single item matching {1}{reason}, but no items match.",
			reason, a.subject, p)
	case count > 1:
		a.scope.FailWith("Expected collection {0} to contain a single item matching {1}{reason}, but {2} items match.",
			reason, a.subject, p, count)
	}

	return and(a)
}
