package service

import (
	"context"
	"encoding/json"
	"log"

	"walks-api/internal/model"
	"walks-api/internal/repository"
	"walks-api/pkg/pagination"

	"github.com/google/uuid"
)

// EventPublisher pushes domain events to connected realtime clients
type EventPublisher interface {
	Publish(message []byte)
}

// DTOs for Request validation. Create and Update share one shape: updates
// replace all mutable fields, there is no partial patch.
type WalkRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Description  string  `json:"description" binding:"required,max=1000"`
	LengthInKm   float64 `json:"lengthInKm" binding:"required,gt=0"`
	WalkImageUrl *string `json:"walkImageUrl"`
	DifficultyID string  `json:"difficultyId" binding:"required,uuid"`
	RegionID     string  `json:"regionId" binding:"required,uuid"`
}

// ListWalksParams carries the raw list controls from the query string
type ListWalksParams struct {
	FilterOn    string
	FilterQuery string
	SortBy      string
	Ascending   bool
	Page        pagination.Params
}

// WalkResponse is the external-facing shape of a walk with its joins
type WalkResponse struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	LengthInKm   float64            `json:"lengthInKm"`
	WalkImageUrl *string            `json:"walkImageUrl"`
	Difficulty   DifficultyResponse `json:"difficulty"`
	Region       RegionResponse     `json:"region"`
}

type DifficultyResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// WalkService defines the interface for business logic related to Walk
type WalkService interface {
	List(ctx context.Context, params ListWalksParams) ([]WalkResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*WalkResponse, error)
	Create(ctx context.Context, req WalkRequest) (*WalkResponse, error)
	Update(ctx context.Context, id uuid.UUID, req WalkRequest) (*WalkResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*WalkResponse, error)
}

type walkService struct {
	repo      repository.WalkRepository
	publisher EventPublisher
}

// NewWalkService returns a new instance of WalkService. The publisher may be
// nil, in which case no events are emitted.
func NewWalkService(repo repository.WalkRepository, publisher EventPublisher) WalkService {
	return &walkService{repo: repo, publisher: publisher}
}

func toWalkResponse(walk *model.Walk) *WalkResponse {
	return &WalkResponse{
		ID:           walk.ID,
		Name:         walk.Name,
		Description:  walk.Description,
		LengthInKm:   walk.LengthInKm,
		WalkImageUrl: walk.WalkImageUrl,
		Difficulty: DifficultyResponse{
			ID:   walk.Difficulty.ID,
			Name: walk.Difficulty.Name,
		},
		Region: *toRegionResponse(&walk.Region),
	}
}

// List returns one page of walks, filtered and sorted before pagination
func (s *walkService) List(ctx context.Context, params ListWalksParams) ([]WalkResponse, error) {
	query, err := repository.NewWalkListQuery(
		params.FilterOn, params.FilterQuery, params.SortBy, params.Ascending, params.Page)
	if err != nil {
		return nil, err
	}

	walks, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	responses := make([]WalkResponse, 0, len(walks))
	for i := range walks {
		responses = append(responses, *toWalkResponse(&walks[i]))
	}
	return responses, nil
}

func (s *walkService) GetByID(ctx context.Context, id uuid.UUID) (*WalkResponse, error) {
	walk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toWalkResponse(walk), nil
}

func (s *walkService) Create(ctx context.Context, req WalkRequest) (*WalkResponse, error) {
	walk := walkFromRequest(req)
	if err := s.repo.Create(ctx, walk); err != nil {
		return nil, err
	}

	// Reload so the response carries the Difficulty and Region joins
	created, err := s.repo.GetByID(ctx, walk.ID)
	if err != nil {
		return nil, err
	}

	resp := toWalkResponse(created)
	s.publish("walk.created", resp)
	return resp, nil
}

func (s *walkService) Update(ctx context.Context, id uuid.UUID, req WalkRequest) (*WalkResponse, error) {
	updated, err := s.repo.Update(ctx, id, walkFromRequest(req))
	if err != nil {
		return nil, err
	}

	resp := toWalkResponse(updated)
	s.publish("walk.updated", resp)
	return resp, nil
}

func (s *walkService) Delete(ctx context.Context, id uuid.UUID) (*WalkResponse, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toWalkResponse(deleted)
	s.publish("walk.deleted", resp)
	return resp, nil
}

func walkFromRequest(req WalkRequest) *model.Walk {
	// IDs are validated as UUIDs by request binding before reaching here
	difficultyID, _ := uuid.Parse(req.DifficultyID)
	regionID, _ := uuid.Parse(req.RegionID)

	return &model.Walk{
		Name:         req.Name,
		Description:  req.Description,
		LengthInKm:   req.LengthInKm,
		WalkImageUrl: req.WalkImageUrl,
		DifficultyID: difficultyID,
		RegionID:     regionID,
	}
}

func (s *walkService) publish(event string, walk *WalkResponse) {
	if s.publisher == nil {
		return
	}
	message, err := json.Marshal(map[string]interface{}{
		"type": event,
		"walk": walk,
	})
	if err != nil {
		log.Printf("failed to encode %s event: %v", event, err)
		return
	}
	s.publisher.Publish(message)
}
