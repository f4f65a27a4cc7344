package repository

import (
	"context"
	"testing"

	"walks-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRegionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns an id and round-trips", func(t *testing.T) {
		repo := NewInMemoryRegionRepository()

		region := &model.Region{Code: "WGN", Name: "Wellington"}
		require.NoError(t, repo.Create(ctx, region))
		require.NotEqual(t, uuid.Nil, region.ID)

		got, err := repo.GetByID(ctx, region.ID)
		require.NoError(t, err)
		assert.Equal(t, "WGN", got.Code)
		assert.Equal(t, "Wellington", got.Name)
	})

	t.Run("get all returns regions sorted by name", func(t *testing.T) {
		repo := NewInMemoryRegionRepository()
		require.NoError(t, repo.Create(ctx, &model.Region{Code: "WGN", Name: "Wellington"}))
		require.NoError(t, repo.Create(ctx, &model.Region{Code: "AKL", Name: "Auckland"}))

		regions, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, regions, 2)
		assert.Equal(t, "Auckland", regions[0].Name)
		assert.Equal(t, "Wellington", regions[1].Name)
	})

	t.Run("update replaces all mutable fields", func(t *testing.T) {
		repo := NewInMemoryRegionRepository()
		region := &model.Region{Code: "WGN", Name: "Wellington"}
		require.NoError(t, repo.Create(ctx, region))

		imageUrl := "https://example.com/nelson.jpg"
		updated, err := repo.Update(ctx, region.ID, &model.Region{
			Code:           "NSN",
			Name:           "Nelson",
			RegionImageUrl: &imageUrl,
		})
		require.NoError(t, err)
		assert.Equal(t, region.ID, updated.ID)
		assert.Equal(t, "NSN", updated.Code)
		assert.Equal(t, "Nelson", updated.Name)
		require.NotNil(t, updated.RegionImageUrl)
		assert.Equal(t, imageUrl, *updated.RegionImageUrl)
	})

	t.Run("update of missing region reports not found", func(t *testing.T) {
		repo := NewInMemoryRegionRepository()
		_, err := repo.Update(ctx, uuid.New(), &model.Region{Code: "NSN", Name: "Nelson"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete returns the removed record", func(t *testing.T) {
		repo := NewInMemoryRegionRepository()
		region := &model.Region{Code: "WGN", Name: "Wellington"}
		require.NoError(t, repo.Create(ctx, region))

		deleted, err := repo.Delete(ctx, region.ID)
		require.NoError(t, err)
		assert.Equal(t, "Wellington", deleted.Name)

		_, err = repo.GetByID(ctx, region.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete of missing region reports not found", func(t *testing.T) {
		repo := NewInMemoryRegionRepository()
		_, err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
