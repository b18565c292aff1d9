package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/upliftapp/uplift/internal/model"
	"github.com/upliftapp/uplift/internal/repository"
)

type GoalService struct {
	repo repository.GoalRepository
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

func (s *GoalService) Create(userID, text string) (*model.Goal, error) {
	goal := &model.Goal{
		ID:         uuid.New().String(),
		UserID:     userID,
		Text:       text,
		IsAttained: false,
		CreatedAt:  time.Now(),
	}

	err := s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return goal, nil
}

func (s *GoalService) Goals(userID string) ([]*model.Goal, error) {
	return s.repo.Goals(userID)
}

// SetAttained flips the attainment flag. Toggling off also clears the shared
// goal reference unconditionally, even when it is already null; toggling on
// leaves it untouched. Returns ErrGoalNotFound for missing or foreign rows.
func (s *GoalService) SetAttained(userID, goalID string, attained bool) (*model.Goal, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	goal.IsAttained = attained
	if !attained {
		goal.SharedGoal = nil
	}

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) Delete(userID, goalID string) error {
	return s.repo.Delete(userID, goalID)
}
