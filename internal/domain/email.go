package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EventNotificationEmailData holds the recipient and rendered content of a
// single event notification.
type EventNotificationEmailData struct {
	Email   string
	Subject string
	Body    string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendEventNotification(ctx context.Context, data *EventNotificationEmailData) error
}
