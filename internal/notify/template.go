// Package notify renders event notification messages from an event's category
// and descriptive fields. Rendering is pure and total: every category in the
// closed set has a skeleton, and unknown categories use the custom one.
package notify

import (
	"fmt"
	"time"

	"groupnest/internal/domain"
)

// Message is a rendered subject/body pair.
type Message struct {
	Subject string
	Body    string
}

// skeleton holds the fixed format strings for one category. Subject embeds the
// title; body embeds the description and date.
type skeleton struct {
	subject string
	body    string
}

var skeletons = map[domain.EventCategory]skeleton{
	domain.CategoryBirthday: {
		subject: "🎉 Birthday Celebration: %s",
		body:    "Join us to celebrate a special birthday! Details: %s. Date: %s.",
	},
	domain.CategoryAnniversary: {
		subject: "🎊 Anniversary Event: %s",
		body:    "We are excited to celebrate this anniversary with you! Details: %s. Date: %s.",
	},
	domain.CategoryConference: {
		subject: "📢 Conference: %s",
		body:    "Join us for an insightful conference. Details: %s. Date: %s.",
	},
	domain.CategoryCustom: {
		subject: "📅 Event: %s",
		body:    "You're invited to an event! Details: %s. Date: %s.",
	},
}

// Template renders the notification message for the given category and event
// fields. Categories outside the closed set render with the custom skeleton.
func Template(category domain.EventCategory, title, description string, date time.Time) Message {
	sk, ok := skeletons[category]
	if !ok {
		sk = skeletons[domain.CategoryCustom]
	}
	return Message{
		Subject: fmt.Sprintf(sk.subject, title),
		Body:    fmt.Sprintf(sk.body, description, date.Format(time.RFC1123)),
	}
}
