package scope

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// SpanEventName is the event recorded on the active span when an assertion
// fails.
const SpanEventName = "assertion.failed"

func (s *Scope) emit(message string) {
	if s.logger != nil {
		s.logger.Error("assertion failed", zap.String("failure", message))
	}

	s.recordToSpan(message)
}

func (s *Scope) recordToSpan(message string) {
	if s.ctx == nil {
		return
	}

	span := trace.SpanFromContext(s.ctx)
	if !span.IsRecording() {
		return
	}

	span.AddEvent(SpanEventName, trace.WithAttributes(
		attribute.String("assertion.message", message),
	))
	span.RecordError(fmt.Errorf("%w: %s", ErrAssertionFailed, message))
	span.SetStatus(codes.Error, ErrAssertionFailed.Error())
}
