package postgres

import (
	"context"
	"database/sql"

	"groupnest/internal/domain"
)

type membershipRepository struct {
	DB *sql.DB
}

func NewMembershipRepository(db *sql.DB) domain.MembershipRepository {
	return &membershipRepository{DB: db}
}

// ListByGroupID joins the group's membership rows to user profiles and role
// labels. Memberships without a role resolve to DefaultMemberRole. Rows come
// back in insertion order.
func (r *membershipRepository) ListByGroupID(ctx context.Context, groupID string) ([]*domain.GroupMember, error) {
	query := `
		SELECT u.id, u.first_name, u.last_name, u.profile_pic, u.email, ro.name
		FROM group_members gm
		INNER JOIN users u ON u.id = gm.user_id
		LEFT JOIN roles ro ON ro.id = gm.role_id
		WHERE gm.group_id = $1
		ORDER BY gm.created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.GroupMember, 0)
	for rows.Next() {
		m := &domain.GroupMember{}
		var picNull, roleNull sql.NullString
		if err := rows.Scan(&m.UserID, &m.FirstName, &m.LastName, &picNull, &m.Email, &roleNull); err != nil {
			return nil, err
		}
		if picNull.Valid {
			m.ProfilePic = picNull.String
		}
		m.Role = domain.DefaultMemberRole
		if roleNull.Valid && roleNull.String != "" {
			m.Role = roleNull.String
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
