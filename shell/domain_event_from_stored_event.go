package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/circulib/lending-engine-go/core"
	"github.com/circulib/lending-engine-go/journal"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StoredEvents to DomainEvents.
func DomainEventsFrom(storedEvents journal.StoredEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storedEvents))

	for _, storedEvent := range storedEvents {
		domainEvent, err := DomainEventFrom(storedEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StoredEvent to its corresponding DomainEvent.
func DomainEventFrom(storedEvent journal.StoredEvent) (core.DomainEvent, error) {
	switch storedEvent.EventType {
	case core.BookAddedToCatalogEventType:
		return unmarshalPayload[core.BookAddedToCatalog](storedEvent.PayloadJSON)

	case core.BookDetailsUpdatedEventType:
		return unmarshalPayload[core.BookDetailsUpdated](storedEvent.PayloadJSON)

	case core.BookRemovedFromCatalogEventType:
		return unmarshalPayload[core.BookRemovedFromCatalog](storedEvent.PayloadJSON)

	case core.LoanRequestedEventType:
		return unmarshalPayload[core.LoanRequested](storedEvent.PayloadJSON)

	case core.LoanApprovedEventType:
		return unmarshalPayload[core.LoanApproved](storedEvent.PayloadJSON)

	case core.LoanRejectedEventType:
		return unmarshalPayload[core.LoanRejected](storedEvent.PayloadJSON)

	case core.LoanReturnedEventType:
		return unmarshalPayload[core.LoanReturned](storedEvent.PayloadJSON)

	case core.LoanMarkedOverdueEventType:
		return unmarshalPayload[core.LoanMarkedOverdue](storedEvent.PayloadJSON)

	default:
		return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
	}
}

func unmarshalPayload[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(E)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload)
	if err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return *payload, nil
}
