package journal

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrConcurrencyConflict signals that another writer appended to the same
	// scope between Query and Append. Safe to retry after re-reading.
	ErrConcurrencyConflict = errors.New("concurrency conflict, no rows were affected")

	// ErrNilDatabaseConnection is returned by engine constructors when the
	// supplied connection handle is nil.
	ErrNilDatabaseConnection = errors.New("nil database connection supplied")

	// ErrEmptyTableName is returned when an empty journal table name is configured.
	ErrEmptyTableName = errors.New("empty journal table name supplied")

	// ErrInvalidPayloadJSON is returned when an event payload is not valid JSON.
	ErrInvalidPayloadJSON = errors.New("event payload is not valid json")

	// ErrInvalidMetadataJSON is returned when event metadata is not valid JSON.
	ErrInvalidMetadataJSON = errors.New("event metadata is not valid json")

	// ErrBuildingQueryFailed is returned when SQL generation fails.
	ErrBuildingQueryFailed = errors.New("building sql query failed")

	// ErrQueryingJournalFailed is returned when a journal read fails.
	ErrQueryingJournalFailed = errors.New("querying journal failed")

	// ErrAppendingEventFailed is returned when a journal write fails.
	ErrAppendingEventFailed = errors.New("appending event failed")

	// ErrScanningRowFailed is returned when a journal row cannot be scanned.
	ErrScanningRowFailed = errors.New("scanning journal row failed")
)

// SequenceNumber is the position of an event in the journal's total order.
// A scope's max sequence number identifies the version of that slice of
// history for optimistic concurrency control.
type SequenceNumber = uint

// StoredEvents is a slice of StoredEvent.
type StoredEvents = []StoredEvent

// StoredEvent is the storage representation of a domain event. It is built on
// scalars so the journal stays agnostic of how domain events are implemented.
//
// Construct it with NewStoredEvent or NewStoredEventWithEmptyMetadata only.
type StoredEvent struct {
	EventType    string
	OccurredAt   time.Time
	PayloadJSON  []byte
	MetadataJSON []byte
}

// NewStoredEvent builds a StoredEvent, validating that payload and metadata
// are well-formed JSON.
func NewStoredEvent(eventType string, occurredAt time.Time, payloadJSON, metadataJSON []byte) (StoredEvent, error) {
	if !json.Valid(payloadJSON) {
		return StoredEvent{}, ErrInvalidPayloadJSON
	}

	if !json.Valid(metadataJSON) {
		return StoredEvent{}, ErrInvalidMetadataJSON
	}

	return StoredEvent{
		EventType:    eventType,
		OccurredAt:   occurredAt,
		PayloadJSON:  payloadJSON,
		MetadataJSON: metadataJSON,
	}, nil
}

// NewStoredEventWithEmptyMetadata builds a StoredEvent carrying empty metadata.
func NewStoredEventWithEmptyMetadata(eventType string, occurredAt time.Time, payloadJSON []byte) (StoredEvent, error) {
	return NewStoredEvent(eventType, occurredAt, payloadJSON, []byte("{}"))
}
