package domain

import "time"

const (
	NotificationChannelEmail = "email"
	NotificationChannelSMS   = "sms"

	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)

type NotificationLog struct {
	ID        uint      `json:"id"`
	GuestID   *uint     `json:"guest_id,omitempty"`
	Recipient string    `json:"recipient"`
	Channel   string    `json:"channel"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
