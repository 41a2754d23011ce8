// Package fluent provides readable assertions over generic sequences for
// automated test suites.
//
// A test author binds a subject once and states what should hold, with an
// optional reason that ends up in the failure message:
//
//	fluent.Slice(t, []int{1, 2, 3}).Contain(2, "the fixture seeds it")
//
// Successful assertions return an AndConstraint so checks chain:
//
//	fluent.Slice(t, orders).
//	    NotBeEmpty().
//	    And.ContainFunc(paid, "the invoice was settled").
//	    And.HaveLen(3)
//
// # Assertion families
//
// Four predicate checks cover containment over a sequence:
//
//	Contain(value)          value membership under element equality
//	ContainFunc(p)          at least one element satisfies p
//	OnlyContainFunc(p)      every element satisfies p
//	NotContainFunc(p)       no element satisfies p
//
// plus the nearby NotContainValue, ContainSingleFunc, BeEmpty, NotBeEmpty,
// and HaveLen. Predicates are built once with a display string so failure
// messages can show what was being matched:
//
//	even := predicate.New[int]("x % 2 == 0", func(x int) bool { return x%2 == 0 })
//	fluent.Slice(t, nums).OnlyContainFunc(even)
//
// # Subjects
//
// The subject is bound at construction and never mutated. A nil slice is
// the absent subject: asserting against it reports a failure, it never
// panics. An empty non-nil slice is a present, empty subject.
//
// # Failure reporting
//
// Methods evaluate their condition and either return the continuation or
// hand a message template with diagnostic values to the reporting scope,
// exactly once per call. With the default *testing.T scope a failure is
// fatal to the test step; see the scope package for soft-failure recording,
// structured logging, and trace integration.
//
// # Element equality
//
// Contain and NotContainValue compare elements with go-cmp. Types with
// unexported fields or approximate semantics take options:
//
//	fluent.Slice(t, amounts).
//	    WithCompareOptions(cmpopts.EquateApprox(0, 1e-9)).
//	    Contain(0.3)
package fluent
