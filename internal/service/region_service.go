package service

import (
	"context"

	"walks-api/internal/model"
	"walks-api/internal/repository"

	"github.com/google/uuid"
)

// DTOs for Request validation
type RegionRequest struct {
	Code           string  `json:"code" binding:"required,min=3,max=3"`
	Name           string  `json:"name" binding:"required,max=100"`
	RegionImageUrl *string `json:"regionImageUrl"`
}

// RegionResponse is the external-facing shape of a region
type RegionResponse struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	RegionImageUrl *string   `json:"regionImageUrl"`
}

// RegionService defines the interface for business logic related to Region
type RegionService interface {
	GetAll(ctx context.Context) ([]RegionResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RegionResponse, error)
	Create(ctx context.Context, req RegionRequest) (*RegionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req RegionRequest) (*RegionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*RegionResponse, error)
}

type regionService struct {
	repo repository.RegionRepository
}

// NewRegionService returns a new instance of RegionService
func NewRegionService(repo repository.RegionRepository) RegionService {
	return &regionService{repo: repo}
}

func toRegionResponse(region *model.Region) *RegionResponse {
	return &RegionResponse{
		ID:             region.ID,
		Code:           region.Code,
		Name:           region.Name,
		RegionImageUrl: region.RegionImageUrl,
	}
}

func (s *regionService) GetAll(ctx context.Context) ([]RegionResponse, error) {
	regions, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]RegionResponse, 0, len(regions))
	for i := range regions {
		responses = append(responses, *toRegionResponse(&regions[i]))
	}
	return responses, nil
}

func (s *regionService) GetByID(ctx context.Context, id uuid.UUID) (*RegionResponse, error) {
	region, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRegionResponse(region), nil
}

func (s *regionService) Create(ctx context.Context, req RegionRequest) (*RegionResponse, error) {
	region := &model.Region{
		Code:           req.Code,
		Name:           req.Name,
		RegionImageUrl: req.RegionImageUrl,
	}
	if err := s.repo.Create(ctx, region); err != nil {
		return nil, err
	}
	return toRegionResponse(region), nil
}

func (s *regionService) Update(ctx context.Context, id uuid.UUID, req RegionRequest) (*RegionResponse, error) {
	region := &model.Region{
		Code:           req.Code,
		Name:           req.Name,
		RegionImageUrl: req.RegionImageUrl,
	}
	updated, err := s.repo.Update(ctx, id, region)
	if err != nil {
		return nil, err
	}
	return toRegionResponse(updated), nil
}

func (s *regionService) Delete(ctx context.Context, id uuid.UUID) (*RegionResponse, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRegionResponse(deleted), nil
}
