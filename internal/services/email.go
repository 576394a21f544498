package services

import (
	"context"
	"fmt"
	"log"

	"groupnest/internal/domain"
)

type emailService struct {
	mailer domain.Mailer
}

// NewEmailService returns an EmailService that delivers through the given Mailer.
func NewEmailService(mailer domain.Mailer) domain.EmailService {
	return &emailService{mailer: mailer}
}

// SendEventNotification delivers an already-rendered event notification to a
// single recipient. Delivery is best-effort; the caller decides whether to
// observe the error.
func (s *emailService) SendEventNotification(ctx context.Context, data *domain.EventNotificationEmailData) error {
	if data == nil {
		return fmt.Errorf("event notification data is nil")
	}
	if err := s.mailer.Send(data.Email, data.Subject, "", data.Body); err != nil {
		return fmt.Errorf("failed to send event notification: %w", err)
	}
	log.Printf("[EMAIL] Event notification sent to %s", data.Email)
	return nil
}
