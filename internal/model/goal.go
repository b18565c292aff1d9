package model

import (
	"time"
)

type Goal struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	Text       string    `db:"text"`
	IsAttained bool      `db:"is_attained"`
	SharedGoal *string   `db:"shared_goal"` // Nullable reference to a shared artifact
	CreatedAt  time.Time `db:"created_at"`
}
