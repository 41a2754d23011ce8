// Package scope implements the failure-reporting side of fluent assertions.
//
// Assertion methods never format or raise failures themselves; they hand a
// message template, a caller-supplied reason, and diagnostic values to a
// Scope. The Scope renders the values, substitutes {0}, {1}, ... and
// {reason} placeholders, optionally logs the failure and records it on the
// active trace span, and finally delegates to a FailureHandler.
//
// The default handler for tests wraps *testing.T and calls Fatal, so a
// failed assertion aborts the current test step:
//
//	s := scope.ForTesting(t)
//	s.FailWith("Expected collection {0} to contain {1}{reason}.",
//	    scope.NewReason("it was seeded with %d items", 3),
//	    []int{1, 2, 3}, 5)
//
// A Recorder handler collects failures instead, turning assertions into
// soft checks. Scopes carry no global state; create one per assertion
// chain.
package scope
