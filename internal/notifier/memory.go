package notifier

import (
	"context"
	"sync"
)

// MemorySender records messages for inspection in tests. Err, when set, is
// returned from every send.
type MemorySender struct {
	mu     sync.Mutex
	Emails []EmailMessage
	SMSes  []SMSMessage
	Err    error
}

func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

func (s *MemorySender) SendEmail(_ context.Context, msg EmailMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	s.Emails = append(s.Emails, msg)

	return nil
}

func (s *MemorySender) SendSMS(_ context.Context, msg SMSMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return s.Err
	}
	s.SMSes = append(s.SMSes, msg)

	return nil
}
