package repository

import (
	"context"
	"testing"

	"walks-api/internal/model"
	"walks-api/pkg/pagination"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func walkColumns() []string {
	return []string{"id", "name", "description", "length_in_km", "walk_image_url", "difficulty_id", "region_id"}
}

func TestWalkRepository_List(t *testing.T) {
	ctx := context.Background()
	walkID := uuid.New()
	difficultyID := uuid.New()
	regionID := uuid.New()

	t.Run("filter, sort and paginate compose into one query", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewWalkRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "walks" WHERE walks\.name LIKE .+ ORDER BY walks\.length_in_km DESC`).
			WillReturnRows(sqlmock.NewRows(walkColumns()).
				AddRow(walkID, "Abel Tasman Coast Track", "Coastal walk", 60.0, nil, difficultyID, regionID))
		mock.ExpectQuery(`SELECT \* FROM "difficulties"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(difficultyID, "Medium"))
		mock.ExpectQuery(`SELECT \* FROM "regions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "code", "name", "region_image_url"}).
				AddRow(regionID, "NSN", "Nelson", nil))

		query, err := NewWalkListQuery("name", "Track", "lengthInKm", false, pagination.Clamp(1, 10))
		require.NoError(t, err)

		walks, err := repo.List(ctx, query)
		require.NoError(t, err)
		require.Len(t, walks, 1)
		assert.Equal(t, "Abel Tasman Coast Track", walks[0].Name)
		assert.Equal(t, "Medium", walks[0].Difficulty.Name)
		assert.Equal(t, "Nelson", walks[0].Region.Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no controls issues a plain paged query", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewWalkRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "walks"`).
			WillReturnRows(sqlmock.NewRows(walkColumns()))

		query, err := NewWalkListQuery("", "", "", true, pagination.Clamp(1, 10))
		require.NoError(t, err)

		walks, err := repo.List(ctx, query)
		require.NoError(t, err)
		assert.Empty(t, walks)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWalkRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalkRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "walks"`).
		WillReturnRows(sqlmock.NewRows(walkColumns()))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWalkRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWalkRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "walks"`).
		WillReturnRows(sqlmock.NewRows(walkColumns()))

	_, err := repo.Update(context.Background(), uuid.New(), walkFixture())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func walkFixture() *model.Walk {
	return &model.Walk{
		Name:         "Roys Peak Track",
		Description:  "Steep ascent with lake views",
		LengthInKm:   16,
		DifficultyID: uuid.New(),
		RegionID:     uuid.New(),
	}
}
