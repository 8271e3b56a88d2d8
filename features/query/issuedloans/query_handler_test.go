package issuedloans_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/features/query/issuedloans"
	"github.com/circulib/lending-engine-go/shell"
	"github.com/circulib/lending-engine-go/testutil/memoryjournal"
	"github.com/circulib/lending-engine-go/testutil/observe"
)

func Test_QueryHandler_ProjectsFromJournal(t *testing.T) {
	// arrange
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	loanID := uuid.New()
	jnl := memoryjournal.NewJournal()
	seedEvents(t, jnl,
		core.BuildLoanApproved(loanID, uuid.New(), uuid.New(), now.AddDate(0, 0, 14), now.Add(-time.Hour)),
	)

	handler := issuedloans.NewQueryHandler(jnl)

	// act
	result, err := handler.Handle(ctx)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, loanID.String(), result.Loans[0].LoanID)
}

func Test_QueryHandler_RecordsMetricsAndLogs(t *testing.T) {
	// arrange
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	jnl := memoryjournal.NewJournal()
	seedEvents(t, jnl,
		core.BuildLoanApproved(uuid.New(), uuid.New(), uuid.New(), now.AddDate(0, 0, 14), now.Add(-time.Hour)),
	)

	metricsSpy := observe.NewMetricsCollectorSpy()
	loggerSpy := observe.NewLoggerSpy()

	handler := issuedloans.NewQueryHandler(
		jnl,
		issuedloans.WithMetrics(metricsSpy),
		issuedloans.WithLogging(loggerSpy),
	)

	// act
	_, err := handler.Handle(ctx)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 1, metricsSpy.CounterCount(shell.QueryHandlerCallsMetric))
	assert.True(t, loggerSpy.HasMessage(shell.LogMsgQueryStarted))
	assert.True(t, loggerSpy.HasMessage(shell.LogMsgQueryCompleted))

	// the three phases each record a component timing, plus the overall duration
	durations := metricsSpy.DurationRecords()
	componentTimings := 0
	for _, record := range durations {
		if record.Metric == shell.QueryHandlerComponentDurationMetric {
			componentTimings++
			assert.Equal(t, shell.StatusSuccess, record.Labels[shell.LogAttrStatus])
		}
	}
	assert.Equal(t, 3, componentTimings)
}

func seedEvents(t *testing.T, jnl *memoryjournal.Journal, events ...core.DomainEvent) {
	t.Helper()

	for _, event := range events {
		storedEvent, err := shell.StoredEventWithEmptyMetadataFrom(event)
		assert.NoError(t, err)
		jnl.Seed(storedEvent)
	}
}
