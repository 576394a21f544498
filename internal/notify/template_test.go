package notify

import (
	"strings"
	"testing"
	"time"

	"groupnest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_SubjectPrefixes(t *testing.T) {
	date := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		category   domain.EventCategory
		wantPrefix string
	}{
		{name: "birthday", category: domain.CategoryBirthday, wantPrefix: "🎉 Birthday Celebration: "},
		{name: "anniversary", category: domain.CategoryAnniversary, wantPrefix: "🎊 Anniversary Event: "},
		{name: "conference", category: domain.CategoryConference, wantPrefix: "📢 Conference: "},
		{name: "custom", category: domain.CategoryCustom, wantPrefix: "📅 Event: "},
		{name: "unknown falls back to custom", category: domain.EventCategory("Potluck"), wantPrefix: "📅 Event: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Template(tt.category, "Jane's 30th", "cake and music", date)
			assert.True(t, strings.HasPrefix(msg.Subject, tt.wantPrefix), "subject %q should start with %q", msg.Subject, tt.wantPrefix)
			assert.Contains(t, msg.Subject, "Jane's 30th")
			assert.Contains(t, msg.Body, "cake and music")
			assert.Contains(t, msg.Body, date.Format(time.RFC1123))
		})
	}
}

func TestTemplate_DistinctPrefixPerCategory(t *testing.T) {
	date := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)
	categories := []domain.EventCategory{
		domain.CategoryBirthday,
		domain.CategoryAnniversary,
		domain.CategoryConference,
		domain.CategoryCustom,
	}
	seen := make(map[string]domain.EventCategory)
	for _, cat := range categories {
		msg := Template(cat, "t", "d", date)
		prev, dup := seen[msg.Subject]
		require.False(t, dup, "categories %s and %s produced the same subject", prev, cat)
		seen[msg.Subject] = cat
	}
}

func TestTemplate_Deterministic(t *testing.T) {
	date := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	a := Template(domain.CategoryAnniversary, "10 years", "dinner", date)
	b := Template(domain.CategoryAnniversary, "10 years", "dinner", date)
	require.Equal(t, a, b)
}
