package model

import (
	"time"
)

// Session is a server-side session row keyed by the opaque cookie id.
// UserID is nil for anonymous sessions (e.g. a session carrying only flash
// notices across the login redirect).
type Session struct {
	ID        string    `db:"id"`
	UserID    *string   `db:"user_id"`
	Flashes   string    `db:"flashes"` // JSON array of notice strings
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != nil && *s.UserID != ""
}
