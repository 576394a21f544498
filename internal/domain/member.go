package domain

import "context"

// DefaultMemberRole is the role label used when a membership has no role attached.
const DefaultMemberRole = "Member"

// GroupMember is the derived view of a user's participation in a group.
// It is produced transiently by membership resolution and never persisted.
type GroupMember struct {
	UserID     string `json:"user_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	ProfilePic string `json:"profile_pic"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

// MembershipRepository resolves group membership from the association store.
type MembershipRepository interface {
	// ListByGroupID returns the group's members in insertion order, each joined
	// to its user profile and role label (DefaultMemberRole when absent).
	ListByGroupID(ctx context.Context, groupID string) ([]*GroupMember, error)
}
