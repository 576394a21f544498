package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"groupnest/internal/domain"
	"groupnest/internal/notify"
)

// notifyLeadTime is how far ahead of the event date each member's
// notification is dispatched.
const notifyLeadTime = 24 * time.Hour

type eventService struct {
	eventRepo      domain.EventRepository
	membershipRepo domain.MembershipRepository
	emailService   domain.EmailService
	scheduler      domain.DispatchScheduler
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewEventService creates the event service handling creation, notification
// scheduling, and group event queries.
func NewEventService(eventRepo domain.EventRepository,
	membershipRepo domain.MembershipRepository,
	emailService domain.EmailService,
	scheduler domain.DispatchScheduler,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		membershipRepo: membershipRepo,
		emailService:   emailService,
		scheduler:      scheduler,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// CreateEvent persists the event, then resolves the group's members and
// registers one deferred email dispatch per member, timed one day before the
// event date. Member resolution failure propagates without rolling back the
// already-persisted event. A registration failure for one member is logged
// and does not prevent scheduling for the others.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.UserID == "" || event.GroupID == "" {
		return fmt.Errorf("event creator and group are required: %w", domain.ErrInvalidInput)
	}
	if event.Category == "" {
		event.Category = domain.CategoryCustom
	}
	event.CreatedAt = time.Now()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	members, err := s.membershipRepo.ListByGroupID(ctx, event.GroupID)
	if err != nil {
		return fmt.Errorf("resolve group members: %w", err)
	}

	msg := notify.Template(event.Category, event.Title, event.Description, event.Date)
	fireAt := event.Date.Add(-notifyLeadTime)

	for _, member := range members {
		data := &domain.EventNotificationEmailData{
			Email:   member.Email,
			Subject: msg.Subject,
			Body:    msg.Body,
		}
		err := s.scheduler.RegisterOneShot(fireAt, func() {
			if err := s.emailService.SendEventNotification(context.Background(), data); err != nil {
				s.logger.Warn("event notification delivery failed",
					"event_id", event.ID, "recipient", data.Email, "err", err)
			}
		})
		if err != nil {
			s.logger.Warn("dispatch registration failed",
				"event_id", event.ID, "recipient", data.Email, "fire_at", fireAt, "err", err)
		}
	}

	return nil
}

func (s *eventService) ListEventsByGroup(ctx context.Context, groupID string) ([]*domain.EventWithCreator, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListByGroupID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group events: %w", err)
	}
	if len(events) == 0 {
		return nil, domain.ErrNotFound
	}
	return events, nil
}
