// Package memoryjournal provides an in-memory journal honoring scope matching
// and optimistic concurrency, so command handlers and the engine can be
// tested without a database.
package memoryjournal

import (
	"context"
	"slices"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/circulib/lending-engine-go/journal"
)

type storedRow struct {
	event    journal.StoredEvent
	sequence journal.SequenceNumber
}

// Journal is an in-memory, thread-safe journal with the same Query/Append
// semantics as the Postgres engine.
type Journal struct {
	mu   sync.Mutex
	rows []storedRow
}

// NewJournal creates an empty in-memory journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Query returns all events matching the scope in sequence order plus the
// scope's max sequence number.
func (j *Journal) Query(_ context.Context, scope journal.Scope) (
	journal.StoredEvents,
	journal.SequenceNumber,
	error,
) {
	j.mu.Lock()
	defer j.mu.Unlock()

	events := make(journal.StoredEvents, 0)
	maxSeq := journal.SequenceNumber(0)

	for _, row := range j.rows {
		if matches(scope, row.event) {
			events = append(events, row.event)
			maxSeq = row.sequence
		}
	}

	return events, maxSeq, nil
}

// Append inserts one event iff the scope's max sequence number still equals
// expectedMaxSeq, otherwise journal.ErrConcurrencyConflict.
func (j *Journal) Append(
	_ context.Context,
	scope journal.Scope,
	expectedMaxSeq journal.SequenceNumber,
	event journal.StoredEvent,
) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	currentMax := journal.SequenceNumber(0)
	for _, row := range j.rows {
		if matches(scope, row.event) {
			currentMax = row.sequence
		}
	}

	if currentMax != expectedMaxSeq {
		return journal.ErrConcurrencyConflict
	}

	nextSeq := journal.SequenceNumber(1)
	if len(j.rows) > 0 {
		nextSeq = j.rows[len(j.rows)-1].sequence + 1
	}

	j.rows = append(j.rows, storedRow{event: event, sequence: nextSeq})

	return nil
}

// Seed appends events without concurrency checks, for test setup.
func (j *Journal) Seed(events ...journal.StoredEvent) {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, event := range events {
		nextSeq := journal.SequenceNumber(1)
		if len(j.rows) > 0 {
			nextSeq = j.rows[len(j.rows)-1].sequence + 1
		}

		j.rows = append(j.rows, storedRow{event: event, sequence: nextSeq})
	}
}

// Len returns the number of stored events.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()

	return len(j.rows)
}

func matches(scope journal.Scope, event journal.StoredEvent) bool {
	if scope.MatchesEverything() {
		return true
	}

	// The zero Scope matches nothing, same as the Postgres engine.
	eventTypes := scope.EventTypes()
	if len(eventTypes) == 0 {
		return false
	}

	if !slices.Contains(eventTypes, event.EventType) {
		return false
	}

	keys := scope.Keys()
	if len(keys) == 0 {
		return true
	}

	payload := make(map[string]any)
	if err := jsoniter.ConfigFastest.Unmarshal(event.PayloadJSON, &payload); err != nil {
		return false
	}

	matched := 0
	for _, key := range keys {
		if value, ok := payload[key.Name()].(string); ok && value == key.Value() {
			matched++
		}
	}

	if scope.MatchAllKeys() {
		return matched == len(keys)
	}

	return matched > 0
}
