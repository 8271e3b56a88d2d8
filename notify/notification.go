// Package notify defines the notification collaborator contract and an
// asynchronous dispatcher. Delivery is fire-and-forget: a slow or failing
// notification channel never blocks or rolls back a workflow transition.
package notify

import (
	"time"
)

// Kind identifies what a notification is about.
type Kind string

// Notification kinds emitted by the borrowing workflow.
const (
	KindLoanApproved Kind = "LoanApproved"
	KindLoanOverdue  Kind = "LoanOverdue"
	KindLoanReturned Kind = "LoanReturned"
	KindFineAssessed Kind = "FineAssessed"
)

// Notification is the message handed to the sink. Amount is only set for
// FineAssessed notifications.
type Notification struct {
	Kind       Kind
	LoanID     string
	BookID     string
	UserID     string
	Amount     float64
	OccurredAt time.Time
}

// Sink receives notifications from the workflow. Implementations must not
// block: publishing happens on the command path.
type Sink interface {
	Publish(notification Notification)
}

// NopSink discards all notifications.
type NopSink struct{}

// Publish discards the notification.
func (NopSink) Publish(Notification) {}
