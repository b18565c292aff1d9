package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/upliftapp/uplift/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

type UserRepository interface {
	Create(user *model.User) error
	ByID(id string) (*model.User, error)
	ByUsername(username string) (*model.User, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	query := `INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query, user.ID, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		// Check for unique constraint violation (works for both SQLite and PostgreSQL)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateUsername
		}
		return err
	}

	return nil
}

func (r *userRepository) ByID(id string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

// ByUsername performs a case-sensitive exact match; "Alice" and "alice" are
// distinct accounts.
func (r *userRepository) ByUsername(username string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE username = $1`

	err := r.db.Get(user, query, username)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}
