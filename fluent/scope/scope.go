package scope

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/moellerknudsen/fluentassertions/fluent/format"
)

// ErrAssertionFailed is the sentinel error for failed assertions.
var ErrAssertionFailed = errors.New("assertion failed")

// FailureError represents a single reported assertion failure. Recording
// handlers expose failures as this type so callers can use errors.Is with
// ErrAssertionFailed.
type FailureError struct {
	Message string
}

// Error returns the formatted failure message.
func (e *FailureError) Error() string {
	if e == nil || e.Message == "" {
		return ErrAssertionFailed.Error()
	}

	return "assertion failed: " + e.Message
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (e *FailureError) Unwrap() error {
	return ErrAssertionFailed
}

// FailureHandler receives the fully formatted message of a failed assertion.
// A handler is expected to stop the current test step (the TestingT adapter
// calls Fatal); a handler that returns instead turns assertions into soft
// checks, with each failure still reported exactly once.
type FailureHandler interface {
	Fail(message string)
}

// TestingT is the subset of *testing.T needed to raise failures.
type TestingT interface {
	Helper()
	Fatal(args ...any)
}

type testingHandler struct {
	t TestingT
}

func (h testingHandler) Fail(message string) {
	h.t.Helper()
	h.t.Fatal(message)
}

// Recorder is a FailureHandler that collects failures instead of aborting.
// Use it for soft assertions or for testing assertion behavior itself.
// A Recorder belongs to a single test step; it is not safe for concurrent
// use and must not be shared across tests.
type Recorder struct {
	failures []string
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Fail records the failure message.
func (r *Recorder) Fail(message string) {
	r.failures = append(r.failures, message)
}

// Failures returns the recorded messages in report order.
func (r *Recorder) Failures() []string {
	return r.failures
}

// Err returns all recorded failures joined into one error, or nil when every
// assertion passed.
func (r *Recorder) Err() error {
	if len(r.failures) == 0 {
		return nil
	}

	errs := make([]error, 0, len(r.failures))
	for _, msg := range r.failures {
		errs = append(errs, &FailureError{Message: msg})
	}

	return errors.Join(errs...)
}

// Scope is the reporting collaborator shared by all assertion methods. It
// formats failure messages (placeholder and reason substitution), emits
// optional log and trace signals, and hands the final message to its
// FailureHandler.
//
// A Scope is bound to one logical test step. It holds no global state and
// may be created freely per assertion chain.
type Scope struct {
	handler FailureHandler
	ctx     context.Context
	logger  *zap.Logger
}

// Option configures a Scope.
type Option func(*Scope)

// WithLogger makes the scope log every failure at error level before the
// handler runs. Useful when assertion failures should land in the same
// structured log stream as the code under test.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scope) {
		s.logger = logger
	}
}

// WithContext attaches a context whose recording span, if any, receives an
// event for every failure.
func WithContext(ctx context.Context) Option {
	return func(s *Scope) {
		s.ctx = ctx
	}
}

// New creates a Scope reporting to handler.
func New(handler FailureHandler, opts ...Option) *Scope {
	s := &Scope{
		handler: handler,
		ctx:     context.Background(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ForTesting creates a Scope whose failures abort the test via t.Fatal.
func ForTesting(t TestingT, opts ...Option) *Scope {
	return New(testingHandler{t: t}, opts...)
}

// FailWith formats template and reports the failure exactly once.
//
// Positional placeholders {0}, {1}, ... are replaced with the rendered args;
// {reason} is replaced with the normalized caller-supplied reason (empty
// reason renders as nothing, a non-empty one as " because ...").
func (s *Scope) FailWith(template string, reason Reason, args ...any) {
	rendered := make([]string, len(args))
	for i, arg := range args {
		rendered[i] = format.Value(arg)
	}

	message := expand(template, reason.String(), rendered)

	if s == nil {
		fmt.Fprintln(os.Stderr, "ASSERTION FAILED: "+message)
		return
	}

	s.emit(message)

	if s.handler == nil {
		fmt.Fprintln(os.Stderr, "ASSERTION FAILED: "+message)
		return
	}

	s.handler.Fail(message)
}
