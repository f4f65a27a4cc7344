package service

import (
	"context"

	"walks-api/internal/repository"
)

// DifficultyService exposes the seeded difficulty reference data
type DifficultyService interface {
	GetAll(ctx context.Context) ([]DifficultyResponse, error)
}

type difficultyService struct {
	repo repository.DifficultyRepository
}

// NewDifficultyService returns a new instance of DifficultyService
func NewDifficultyService(repo repository.DifficultyRepository) DifficultyService {
	return &difficultyService{repo: repo}
}

func (s *difficultyService) GetAll(ctx context.Context) ([]DifficultyResponse, error) {
	difficulties, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]DifficultyResponse, 0, len(difficulties))
	for _, d := range difficulties {
		responses = append(responses, DifficultyResponse{ID: d.ID, Name: d.Name})
	}
	return responses, nil
}
