package notify

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/circulib/lending-engine-go/journal"
)

const (
	defaultBufferSize      = 256
	defaultMaxAttempts     = 5
	defaultRedeliveryDelay = 100 * time.Millisecond
	defaultJitterFactor    = 0.3
)

// Deliverer is the transport actually sending a notification (mail, queue,
// webhook). It may fail transiently; the dispatcher redelivers with backoff.
type Deliverer interface {
	Deliver(ctx context.Context, notification Notification) error
}

// Dispatcher is a buffered-channel Sink: Publish enqueues without blocking,
// a worker goroutine delivers with bounded exponential-backoff redelivery.
// Notifications that exhaust their attempts, or that arrive while the buffer
// is full, are dropped with an error log.
type Dispatcher struct {
	deliverer       Deliverer
	queue           chan Notification
	maxAttempts     int
	redeliveryDelay time.Duration
	jitterFactor    float64
	logger          journal.Logger

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithBufferSize sets the queue capacity.
func WithBufferSize(size int) DispatcherOption {
	return func(d *Dispatcher) {
		if size > 0 {
			d.queue = make(chan Notification, size)
		}
	}
}

// WithMaxAttempts sets the delivery attempts per notification.
func WithMaxAttempts(attempts int) DispatcherOption {
	return func(d *Dispatcher) {
		if attempts > 0 {
			d.maxAttempts = attempts
		}
	}
}

// WithRedeliveryDelay sets the base delay between delivery attempts.
func WithRedeliveryDelay(delay time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if delay >= 0 {
			d.redeliveryDelay = delay
		}
	}
}

// WithLogger sets the logger for drops and delivery failures.
func WithLogger(logger journal.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// NewDispatcher creates a Dispatcher and starts its worker goroutine.
// Call Close to drain and stop it.
func NewDispatcher(deliverer Deliverer, options ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		deliverer:       deliverer,
		queue:           make(chan Notification, defaultBufferSize),
		maxAttempts:     defaultMaxAttempts,
		redeliveryDelay: defaultRedeliveryDelay,
		jitterFactor:    defaultJitterFactor,
		done:            make(chan struct{}),
	}

	for _, option := range options {
		option(d)
	}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	go d.work(ctx)

	return d
}

// Publish enqueues the notification without blocking. When the buffer is
// full the notification is dropped and logged.
func (d *Dispatcher) Publish(notification Notification) {
	select {
	case d.queue <- notification:
	default:
		d.logError("notification dropped, queue full",
			"kind", string(notification.Kind),
			"loan_id", notification.LoanID)
	}
}

// Close stops accepting notifications, delivers what is already queued and
// shuts the worker down.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
		<-d.done
		d.cancel()
	})
}

func (d *Dispatcher) work(ctx context.Context) {
	defer close(d.done)

	for notification := range d.queue {
		d.deliver(ctx, notification)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, notification Notification) {
	var lastErr error

	for attempt := 0; attempt < d.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := d.redeliveryDelay * time.Duration(1<<(attempt-1))
			jitter := rand.Float64() * float64(delay) * d.jitterFactor //nolint:gosec // math/rand is sufficient for jitter

			select {
			case <-time.After(delay + time.Duration(jitter)):
			case <-ctx.Done():
				return
			}
		}

		lastErr = d.deliverer.Deliver(ctx, notification)
		if lastErr == nil {
			return
		}
	}

	d.logError("notification dropped after redelivery attempts exhausted",
		"kind", string(notification.Kind),
		"loan_id", notification.LoanID,
		"error", lastErr.Error())
}

func (d *Dispatcher) logError(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Error(msg, args...)
	}
}

var _ Sink = (*Dispatcher)(nil)
