package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/upliftapp/uplift/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(userID, goalID string) (*model.Goal, error)
	Goals(userID string) ([]*model.Goal, error)
	Update(goal *model.Goal) error
	Delete(userID, goalID string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, user_id, text, is_attained, shared_goal, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserID,
		goal.Text,
		goal.IsAttained,
		goal.SharedGoal,
		goal.CreatedAt,
	)

	return err
}

// ByID scopes the lookup to the owner, so a foreign row is indistinguishable
// from a missing one.
func (r *goalRepository) ByID(userID, goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1 AND user_id = $2`

	err := r.db.Get(goal, query, goalID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

// Goals returns the user's goals in insertion order.
func (r *goalRepository) Goals(userID string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE user_id = $1 ORDER BY created_at ASC, id ASC`

	err := r.db.Select(&goals, query, userID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Update(goal *model.Goal) error {
	query := `UPDATE goals
	          SET text = $1, is_attained = $2, shared_goal = $3
	          WHERE id = $4 AND user_id = $5`

	result, err := r.db.Exec(query,
		goal.Text,
		goal.IsAttained,
		goal.SharedGoal,
		goal.ID,
		goal.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *goalRepository) Delete(userID, goalID string) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, goalID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}
