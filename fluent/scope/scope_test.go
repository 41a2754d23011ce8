//go:build unit

package scope

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type fatalRecorder struct {
	helperCalls int
	fatalArgs   []any
}

func (f *fatalRecorder) Helper() {
	f.helperCalls++
}

func (f *fatalRecorder) Fatal(args ...any) {
	f.fatalArgs = append(f.fatalArgs, args...)
}

// --- FailureError ---

func TestFailureError_NilReceiver(t *testing.T) {
	t.Parallel()

	var e *FailureError
	require.Equal(t, ErrAssertionFailed.Error(), e.Error())
}

func TestFailureError_Message(t *testing.T) {
	t.Parallel()

	e := &FailureError{Message: "Expected collection [1] to contain 2."}
	require.Equal(t, "assertion failed: Expected collection [1] to contain 2.", e.Error())
}

func TestFailureError_Unwrap(t *testing.T) {
	t.Parallel()

	e := &FailureError{Message: "boom"}
	require.ErrorIs(t, e, ErrAssertionFailed)
}

// --- Recorder ---

func TestRecorder_CollectsInOrder(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	rec.Fail("first")
	rec.Fail("second")

	require.Equal(t, []string{"first", "second"}, rec.Failures())
}

func TestRecorder_Err(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	require.NoError(t, rec.Err())

	rec.Fail("boom")
	err := rec.Err()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrAssertionFailed)
	require.Contains(t, err.Error(), "boom")
}

// --- FailWith ---

func TestFailWith_RendersValuesAndReason(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	s := New(rec)

	s.FailWith("Expected collection {0} to contain {1}{reason}.",
		NewReason("the fixture seeds it"), []int{1, 2, 3}, 5)

	require.Equal(t,
		[]string{"Expected collection [1, 2, 3] to contain 5 because the fixture seeds it."},
		rec.Failures())
}

func TestFailWith_EmptyReason(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	s := New(rec)

	s.FailWith("Expected collection {0} to contain {1}{reason}.", NewReason(), []int{1, 2, 3}, 5)

	require.Equal(t, []string{"Expected collection [1, 2, 3] to contain 5."}, rec.Failures())
}

func TestFailWith_ReportsExactlyOnce(t *testing.T) {
	t.Parallel()

	rec := NewRecorder()
	s := New(rec)

	s.FailWith("one failure{reason}.", NewReason())

	require.Len(t, rec.Failures(), 1)
}

func TestForTesting_FatalOnFailure(t *testing.T) {
	t.Parallel()

	ft := &fatalRecorder{}
	s := ForTesting(ft)

	s.FailWith("Expected collection to contain {0}{reason}, but found {1}.",
		NewReason(), 5, nil)

	require.Len(t, ft.fatalArgs, 1)
	require.Equal(t, "Expected collection to contain 5, but found <nil>.",
		fmt.Sprint(ft.fatalArgs[0]))
	require.Positive(t, ft.helperCalls)
}

func TestFailWith_NilScopeDoesNotPanic(t *testing.T) {
	t.Parallel()

	var s *Scope
	require.NotPanics(t, func() {
		s.FailWith("boom{reason}.", NewReason())
	})
}

func TestFailWith_NilHandlerDoesNotPanic(t *testing.T) {
	t.Parallel()

	s := New(nil)
	require.NotPanics(t, func() {
		s.FailWith("boom{reason}.", NewReason())
	})
}
