package model

import (
	"time"
)

// Accomplishment is the one cross-user entity: every row is visible to all
// users in the global feed, but only the owner may delete it.
type Accomplishment struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}
