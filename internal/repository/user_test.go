package repository_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upliftapp/uplift/internal/model"
	"github.com/upliftapp/uplift/internal/repository"
	"github.com/upliftapp/uplift/internal/testutil"
)

func newUser(username string) *model.User {
	return &model.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		CreatedAt:    time.Now(),
	}
}

func TestUserRepositoryCreateAndLookup(t *testing.T) {
	repo := repository.NewUserRepository(testutil.DB(t))

	user := newUser("alice")
	require.NoError(t, repo.Create(user))

	byID, err := repo.ByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byUsername, err := repo.ByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byUsername.ID)
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	db := testutil.DB(t)
	repo := repository.NewUserRepository(db)

	require.NoError(t, repo.Create(newUser("alice")))

	err := repo.Create(newUser("alice"))
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM users`))
	assert.Equal(t, 1, count, "failed insert must not add a row")
}

func TestUserRepositoryUsernameCaseSensitive(t *testing.T) {
	repo := repository.NewUserRepository(testutil.DB(t))

	require.NoError(t, repo.Create(newUser("Alice")))

	_, err := repo.ByUsername("alice")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	// Differently cased usernames are distinct accounts.
	require.NoError(t, repo.Create(newUser("alice")))
}

func TestUserRepositoryNotFound(t *testing.T) {
	repo := repository.NewUserRepository(testutil.DB(t))

	_, err := repo.ByID(uuid.New().String())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.ByUsername("nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
