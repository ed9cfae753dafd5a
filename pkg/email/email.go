package email

import (
	"context"
	"errors"
)

// Sentinel errors for the dispatch pipeline. Callers classify failures with
// errors.Is and never surface the underlying detail to production clients.
var (
	// ErrNotConfigured means transport credentials are absent from the
	// running configuration; no send is attempted.
	ErrNotConfigured = errors.New("email transport is not configured")

	// ErrTransportAuth means the transport connection or authentication
	// could not be verified.
	ErrTransportAuth = errors.New("email transport verification failed")

	// ErrDelivery means the transport accepted the connection but the
	// message could not be delivered.
	ErrDelivery = errors.New("email delivery failed")
)

// Message is a composed notification ready for delivery.
type Message struct {
	Subject  string
	TextBody string
	HTMLBody string
}

// Receipt carries the transport-assigned identifier of a delivered message.
type Receipt struct {
	MessageID string
}

// Sender abstracts the outbound mail transport so the booking pipeline can be
// exercised against a mock in tests and a real SMTP backend in production.
type Sender interface {
	// IsConfigured reports whether transport credentials are present.
	IsConfigured() bool

	// Verify checks the transport connection and authentication without
	// sending anything.
	Verify(ctx context.Context) error

	// Send delivers the message to the configured recipient with the given
	// reply-to address. Exactly one attempt; the caller decides on retries.
	Send(ctx context.Context, msg Message, replyTo string) (*Receipt, error)
}
