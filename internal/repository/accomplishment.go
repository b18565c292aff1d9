package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/upliftapp/uplift/internal/model"
)

var (
	ErrAccomplishmentNotFound = errors.New("accomplishment not found")
)

type AccomplishmentRepository interface {
	Create(accomplishment *model.Accomplishment) error
	All() ([]*model.Accomplishment, error)
	Delete(userID, accomplishmentID string) error
}

type accomplishmentRepository struct {
	db *sqlx.DB
}

func NewAccomplishmentRepository(db *sqlx.DB) AccomplishmentRepository {
	return &accomplishmentRepository{db: db}
}

func (r *accomplishmentRepository) Create(accomplishment *model.Accomplishment) error {
	query := `INSERT INTO accomplishments (id, user_id, text, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query,
		accomplishment.ID,
		accomplishment.UserID,
		accomplishment.Text,
		accomplishment.CreatedAt,
	)

	return err
}

// All returns every accomplishment regardless of owner; the feed is shared
// across all users. Ordered by insertion.
func (r *accomplishmentRepository) All() ([]*model.Accomplishment, error) {
	var accomplishments []*model.Accomplishment
	query := `SELECT * FROM accomplishments ORDER BY created_at ASC, id ASC`

	err := r.db.Select(&accomplishments, query)
	if err != nil {
		return nil, err
	}

	return accomplishments, nil
}

// Delete is still owner-scoped even though the feed is global.
func (r *accomplishmentRepository) Delete(userID, accomplishmentID string) error {
	query := `DELETE FROM accomplishments WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, accomplishmentID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrAccomplishmentNotFound
	}

	return nil
}
