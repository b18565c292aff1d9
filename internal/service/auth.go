package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/upliftapp/uplift/internal/model"
	"github.com/upliftapp/uplift/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong password
	// so the login page never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid username and/or password")
	ErrUsernameTaken      = errors.New("username already exists")
)

type AuthService struct {
	userRepository repository.UserRepository
}

func NewAuthService(userRepository repository.UserRepository) *AuthService {
	return &AuthService{
		userRepository: userRepository,
	}
}

// Register creates a new user with a salted hash of the password. Username
// uniqueness is a case-sensitive exact match.
func (s *AuthService) Register(username, password string) (*model.User, error) {
	_, err := s.userRepository.ByUsername(username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	err = s.userRepository.Create(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *AuthService) Login(username, password string) (*model.User, error) {
	user, err := s.userRepository.ByUsername(username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err = s.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
