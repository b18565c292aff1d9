package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/upliftapp/uplift/internal/model"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

type SessionRepository interface {
	Create(session *model.Session) error
	ByID(id string) (*model.Session, error)
	SetUser(sessionID string, userID *string) error
	SetFlashes(sessionID, flashes string) error
	Delete(id string) error
}

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	now := time.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now
	if session.Flashes == "" {
		session.Flashes = "[]"
	}

	query := `
		INSERT INTO sessions (id, user_id, flashes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query,
		session.ID,
		session.UserID,
		session.Flashes,
		session.CreatedAt,
		session.UpdatedAt,
	)
	return err
}

func (r *sessionRepository) ByID(id string) (*model.Session, error) {
	session := &model.Session{}
	query := `SELECT * FROM sessions WHERE id = $1`

	err := r.db.Get(session, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}

	return session, err
}

func (r *sessionRepository) SetUser(sessionID string, userID *string) error {
	query := `UPDATE sessions SET user_id = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.Exec(query, userID, time.Now(), sessionID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *sessionRepository) SetFlashes(sessionID, flashes string) error {
	query := `UPDATE sessions SET flashes = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.Exec(query, flashes, time.Now(), sessionID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Delete is idempotent; deleting an absent session is not an error.
func (r *sessionRepository) Delete(id string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}
