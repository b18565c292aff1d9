package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/upliftapp/uplift/internal/model"
	"github.com/upliftapp/uplift/internal/repository"
)

type AffirmationService struct {
	repo repository.AffirmationRepository
}

func NewAffirmationService(repo repository.AffirmationRepository) *AffirmationService {
	return &AffirmationService{repo: repo}
}

func (s *AffirmationService) Create(userID, text string) (*model.Affirmation, error) {
	affirmation := &model.Affirmation{
		ID:        uuid.New().String(),
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	err := s.repo.Create(affirmation)
	if err != nil {
		return nil, fmt.Errorf("failed to create affirmation: %w", err)
	}

	return affirmation, nil
}

func (s *AffirmationService) Affirmations(userID string) ([]*model.Affirmation, error) {
	return s.repo.Affirmations(userID)
}

func (s *AffirmationService) Delete(userID, affirmationID string) error {
	return s.repo.Delete(userID, affirmationID)
}
