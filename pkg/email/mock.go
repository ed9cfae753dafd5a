package email

import "context"

// SentMail records a single dispatch captured by MockSender.
type SentMail struct {
	Message Message
	ReplyTo string
}

// MockSender is a test-friendly Sender that records messages instead of
// delivering them. Failure modes are injected through the error fields.
type MockSender struct {
	Configured bool
	VerifyErr  error
	SendErr    error
	Outbox     []SentMail
}

// NewMockSender returns a configured mock that accepts every message.
func NewMockSender() *MockSender {
	return &MockSender{Configured: true}
}

func (m *MockSender) IsConfigured() bool {
	return m.Configured
}

func (m *MockSender) Verify(ctx context.Context) error {
	return m.VerifyErr
}

func (m *MockSender) Send(ctx context.Context, msg Message, replyTo string) (*Receipt, error) {
	if m.SendErr != nil {
		return nil, m.SendErr
	}
	m.Outbox = append(m.Outbox, SentMail{Message: msg, ReplyTo: replyTo})
	return &Receipt{MessageID: "<mock@localhost>"}, nil
}
