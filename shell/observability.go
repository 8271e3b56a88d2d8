package shell

import (
	"fmt"

	"github.com/circulib/lending-engine-go/journal"
)

// The observability contracts are defined once, on the journal package;
// the shell re-exports them so feature slices depend on one import.

// Logger logs without context.
type Logger = journal.Logger

// ContextualLogger logs with context for trace correlation.
type ContextualLogger = journal.ContextualLogger

// MetricsCollector records metrics without context.
type MetricsCollector = journal.MetricsCollector

// ContextualMetricsCollector records metrics with context.
type ContextualMetricsCollector = journal.ContextualMetricsCollector

// TracingCollector creates and finishes spans.
type TracingCollector = journal.TracingCollector

// SpanContext is a handle on an open span.
type SpanContext = journal.SpanContext

// Metric names for command handler instrumentation.
const (
	// CommandHandlerRetriesMetric tracks retry attempts, labeled by command
	// type, attempt number and error type.
	CommandHandlerRetriesMetric = "commandhandler_retries_total"

	// CommandHandlerRetryDelayMetric tracks backoff delays, labeled by
	// command type and attempt number.
	CommandHandlerRetryDelayMetric = "commandhandler_retry_delay_seconds"

	// CommandHandlerMaxRetriesReachedMetric tracks retry exhaustion, labeled
	// by command type and final error type.
	CommandHandlerMaxRetriesReachedMetric = "commandhandler_max_retries_reached_total"
)

// Log / metric label attribute names.
const (
	LogAttrCommandType   = "command_type"
	LogAttrAttemptNumber = "attempt_number"
	LogAttrErrorType     = "error_type"
)

// BuildRetryLabels builds the label set for retry attempt metrics.
func BuildRetryLabels(commandType string, attempt int, errorType string) map[string]string {
	return map[string]string{
		LogAttrCommandType:   commandType,
		LogAttrAttemptNumber: fmt.Sprintf("%d", attempt),
		LogAttrErrorType:     errorType,
	}
}
