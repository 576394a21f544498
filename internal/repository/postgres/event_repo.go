package postgres

import (
	"context"
	"database/sql"

	"groupnest/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (user_id, group_id, title, description, date, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, notification_sent
	`
	return r.DB.QueryRowContext(ctx, query,
		e.UserID, e.GroupID, e.Title, e.Description, e.Date, string(e.Category), e.CreatedAt,
	).Scan(&e.ID, &e.NotificationSent)
}

func (r *eventRepository) ListByGroupID(ctx context.Context, groupID string) ([]*domain.EventWithCreator, error) {
	query := `
		SELECT e.id, e.user_id, e.group_id, e.title, e.description, e.date, e.category, e.notification_sent, e.created_at, u.username
		FROM events e
		INNER JOIN users u ON u.id = e.user_id
		WHERE e.group_id = $1
		ORDER BY e.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.EventWithCreator, 0)
	for rows.Next() {
		e := &domain.EventWithCreator{}
		var category string
		var descNull sql.NullString
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.GroupID, &e.Title, &descNull, &e.Date,
			&category, &e.NotificationSent, &e.CreatedAt, &e.CreatorUsername,
		); err != nil {
			return nil, err
		}
		if descNull.Valid {
			e.Description = descNull.String
		}
		e.Category = domain.EventCategory(category)
		events = append(events, e)
	}
	return events, rows.Err()
}
