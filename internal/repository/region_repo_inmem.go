package repository

import (
	"context"
	"sort"
	"sync"

	"walks-api/internal/model"

	"github.com/google/uuid"
)

// inMemoryRegionRepository keeps regions in a process-local map. It backs
// tests and storage-free deployments; state does not survive restarts.
type inMemoryRegionRepository struct {
	mu      sync.RWMutex
	regions map[uuid.UUID]model.Region
}

// NewInMemoryRegionRepository returns the memory-backed RegionRepository
func NewInMemoryRegionRepository() RegionRepository {
	return &inMemoryRegionRepository{regions: make(map[uuid.UUID]model.Region)}
}

func (r *inMemoryRegionRepository) GetAll(ctx context.Context) ([]model.Region, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	regions := make([]model.Region, 0, len(r.regions))
	for _, region := range r.regions {
		regions = append(regions, region)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].Name < regions[j].Name })
	return regions, nil
}

func (r *inMemoryRegionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Region, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	region, ok := r.regions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &region, nil
}

func (r *inMemoryRegionRepository) Create(ctx context.Context, region *model.Region) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if region.ID == uuid.Nil {
		region.ID = uuid.New()
	}
	r.regions[region.ID] = *region
	return nil
}

func (r *inMemoryRegionRepository) Update(ctx context.Context, id uuid.UUID, region *model.Region) (*model.Region, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.regions[id]
	if !ok {
		return nil, ErrNotFound
	}

	existing.Code = region.Code
	existing.Name = region.Name
	existing.RegionImageUrl = region.RegionImageUrl
	r.regions[id] = existing
	return &existing, nil
}

func (r *inMemoryRegionRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Region, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.regions[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.regions, id)
	return &existing, nil
}
