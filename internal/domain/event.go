package domain

import (
	"context"
	"time"
)

// EventCategory is the closed set of event categories.
type EventCategory string

const (
	CategoryBirthday    EventCategory = "Birthday"
	CategoryAnniversary EventCategory = "Anniversary"
	CategoryConference  EventCategory = "Conference"
	CategoryCustom      EventCategory = "Custom"
)

// ParseEventCategory maps a raw category string to an EventCategory.
// Unknown or empty values fall back to CategoryCustom.
func ParseEventCategory(s string) EventCategory {
	switch EventCategory(s) {
	case CategoryBirthday, CategoryAnniversary, CategoryConference, CategoryCustom:
		return EventCategory(s)
	default:
		return CategoryCustom
	}
}

// Event represents a scheduled group event (birthday, anniversary, conference, or custom).
// NotificationSent is persisted with its default and is never written by the
// notification workflow; its semantics are reserved.
// swagger:model Event
type Event struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	GroupID          string        `json:"group_id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Date             time.Time     `json:"date"`
	Category         EventCategory `json:"category"`
	NotificationSent bool          `json:"notification_sent"`
	CreatedAt        time.Time     `json:"created_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(userID, groupID, title, description string, date time.Time, category EventCategory) *Event {
	return &Event{
		UserID:      userID,
		GroupID:     groupID,
		Title:       title,
		Description: description,
		Date:        date,
		Category:    category,
	}
}

// EventWithCreator bundles an event with its creator's username for read endpoints.
// swagger:model EventWithCreator
type EventWithCreator struct {
	Event
	CreatorUsername string `json:"creator_username"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	ListByGroupID(ctx context.Context, groupID string) ([]*EventWithCreator, error)
}

// EventService defines the business logic for group events.
type EventService interface {
	// CreateEvent persists the event and registers one deferred notification
	// dispatch per group member, timed one day before the event date.
	CreateEvent(ctx context.Context, event *Event) error
	// ListEventsByGroup returns the group's events with creator identity
	// attached. Returns ErrNotFound when the group has no events.
	ListEventsByGroup(ctx context.Context, groupID string) ([]*EventWithCreator, error)
}
