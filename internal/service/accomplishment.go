package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/upliftapp/uplift/internal/model"
	"github.com/upliftapp/uplift/internal/repository"
)

type AccomplishmentService struct {
	repo repository.AccomplishmentRepository
}

func NewAccomplishmentService(repo repository.AccomplishmentRepository) *AccomplishmentService {
	return &AccomplishmentService{repo: repo}
}

func (s *AccomplishmentService) Create(userID, text string) (*model.Accomplishment, error) {
	accomplishment := &model.Accomplishment{
		ID:        uuid.New().String(),
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	err := s.repo.Create(accomplishment)
	if err != nil {
		return nil, fmt.Errorf("failed to create accomplishment: %w", err)
	}

	return accomplishment, nil
}

// All returns the global feed; listing is deliberately not owner-scoped.
func (s *AccomplishmentService) All() ([]*model.Accomplishment, error) {
	return s.repo.All()
}

func (s *AccomplishmentService) Delete(userID, accomplishmentID string) error {
	return s.repo.Delete(userID, accomplishmentID)
}
