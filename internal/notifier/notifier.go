// Package notifier abstracts outbound guest messaging. The portal runs
// without real delivery credentials in development, so the default sender
// just logs.
package notifier

import (
	"context"

	"go.uber.org/zap"
)

type EmailMessage struct {
	To      string
	Subject string
	Body    string
}

type SMSMessage struct {
	To   string
	Body string
}

type EmailSender interface {
	SendEmail(ctx context.Context, msg EmailMessage) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, msg SMSMessage) error
}

type Sender interface {
	EmailSender
	SMSSender
}

// LogSender writes every message to the application log instead of
// delivering it.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) SendEmail(_ context.Context, msg EmailMessage) error {
	zap.L().Info("email notification",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)

	return nil
}

func (s *LogSender) SendSMS(_ context.Context, msg SMSMessage) error {
	zap.L().Info("sms notification",
		zap.String("to", msg.To),
	)

	return nil
}
