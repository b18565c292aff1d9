package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/upliftapp/uplift/internal/model"
)

var (
	ErrAffirmationNotFound = errors.New("affirmation not found")
)

type AffirmationRepository interface {
	Create(affirmation *model.Affirmation) error
	Affirmations(userID string) ([]*model.Affirmation, error)
	Delete(userID, affirmationID string) error
}

type affirmationRepository struct {
	db *sqlx.DB
}

func NewAffirmationRepository(db *sqlx.DB) AffirmationRepository {
	return &affirmationRepository{db: db}
}

func (r *affirmationRepository) Create(affirmation *model.Affirmation) error {
	query := `INSERT INTO affirmations (id, user_id, text, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query,
		affirmation.ID,
		affirmation.UserID,
		affirmation.Text,
		affirmation.CreatedAt,
	)

	return err
}

// Affirmations returns the user's affirmations in insertion order.
func (r *affirmationRepository) Affirmations(userID string) ([]*model.Affirmation, error) {
	var affirmations []*model.Affirmation
	query := `SELECT * FROM affirmations WHERE user_id = $1 ORDER BY created_at ASC, id ASC`

	err := r.db.Select(&affirmations, query, userID)
	if err != nil {
		return nil, err
	}

	return affirmations, nil
}

func (r *affirmationRepository) Delete(userID, affirmationID string) error {
	query := `DELETE FROM affirmations WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, affirmationID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrAffirmationNotFound
	}

	return nil
}
