package shell

import (
	"encoding/json"
	"errors"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

// ErrMappingToStoredEventFailedForDomainEvent is returned when domain event serialization fails
var ErrMappingToStoredEventFailedForDomainEvent = errors.New("mapping to stored event failed for domain event")

// ErrMappingToStoredEventFailedForMetadata is returned when metadata serialization fails
var ErrMappingToStoredEventFailedForMetadata = errors.New("mapping to stored event failed for metadata")

// StoredEventFrom converts a DomainEvent and EventMetadata to a journal.StoredEvent
func StoredEventFrom(event core.DomainEvent, metadata EventMetadata) (journal.StoredEvent, error) {
	payloadJSON, err := json.Marshal(event)
	if err != nil {
		return journal.StoredEvent{}, errors.Join(ErrMappingToStoredEventFailedForDomainEvent, err)
	}

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return journal.StoredEvent{}, errors.Join(ErrMappingToStoredEventFailedForMetadata, err)
	}

	storedEvent, err := journal.NewStoredEvent(
		event.IsEventType(),
		event.HasOccurredAt(),
		payloadJSON,
		metadataJSON,
	)
	if err != nil {
		return journal.StoredEvent{}, errors.Join(ErrMappingToStoredEventFailedForDomainEvent, err)
	}

	return storedEvent, nil
}

// StoredEventWithEmptyMetadataFrom converts a DomainEvent to a journal.StoredEvent with empty metadata
func StoredEventWithEmptyMetadataFrom(event core.DomainEvent) (journal.StoredEvent, error) {
	payloadJSON, err := json.Marshal(event)
	if err != nil {
		return journal.StoredEvent{}, errors.Join(ErrMappingToStoredEventFailedForDomainEvent, err)
	}

	storedEvent, err := journal.NewStoredEventWithEmptyMetadata(
		event.IsEventType(),
		event.HasOccurredAt(),
		payloadJSON,
	)
	if err != nil {
		return journal.StoredEvent{}, errors.Join(ErrMappingToStoredEventFailedForDomainEvent, err)
	}

	return storedEvent, nil
}
