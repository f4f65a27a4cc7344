package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newStatsMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func statsColumns() []string {
	return []string{"region_id", "region_code", "region_name", "length_in_km"}
}

func TestStatisticsService_GetWalkStatistics(t *testing.T) {
	ctx := context.Background()
	aucklandID := uuid.New()
	nelsonID := uuid.New()

	t.Run("walks group into per-region count, total and rounded average", func(t *testing.T) {
		db, mock := newStatsMockDB(t)
		svc := NewStatisticsService(db)

		mock.ExpectQuery(`SELECT .+ FROM "walks" JOIN regions ON regions\.id = walks\.region_id ORDER BY regions\.name`).
			WillReturnRows(sqlmock.NewRows(statsColumns()).
				AddRow(aucklandID, "AKL", "Auckland", 10.0).
				AddRow(aucklandID, "AKL", "Auckland", 20.0).
				AddRow(nelsonID, "NSN", "Nelson", 10.0).
				AddRow(nelsonID, "NSN", "Nelson", 20.0).
				AddRow(nelsonID, "NSN", "Nelson", 10.0))

		summaries, err := svc.GetWalkStatistics(ctx)
		require.NoError(t, err)
		require.Len(t, summaries, 2)

		auckland := summaries[0]
		assert.Equal(t, aucklandID, auckland.RegionID)
		assert.Equal(t, "AKL", auckland.RegionCode)
		assert.Equal(t, "Auckland", auckland.RegionName)
		assert.EqualValues(t, 2, auckland.WalkCount)
		assert.Equal(t, "30", auckland.TotalLengthInKm.String())
		assert.Equal(t, "15", auckland.AverageLengthInKm.String())

		nelson := summaries[1]
		assert.EqualValues(t, 3, nelson.WalkCount)
		assert.Equal(t, "40", nelson.TotalLengthInKm.String())
		// 40 / 3 rounded to two decimal places
		assert.Equal(t, "13.33", nelson.AverageLengthInKm.String())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fractional lengths sum without float drift", func(t *testing.T) {
		db, mock := newStatsMockDB(t)
		svc := NewStatisticsService(db)

		// 0.1 + 0.2 drifts under float64 addition; decimals keep it exact.
		mock.ExpectQuery(`SELECT .+ FROM "walks" JOIN regions`).
			WillReturnRows(sqlmock.NewRows(statsColumns()).
				AddRow(aucklandID, "AKL", "Auckland", 0.1).
				AddRow(aucklandID, "AKL", "Auckland", 0.2))

		summaries, err := svc.GetWalkStatistics(ctx)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "0.3", summaries[0].TotalLengthInKm.String())
		assert.Equal(t, "0.15", summaries[0].AverageLengthInKm.String())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no walks yields an empty summary", func(t *testing.T) {
		db, mock := newStatsMockDB(t)
		svc := NewStatisticsService(db)

		mock.ExpectQuery(`SELECT .+ FROM "walks" JOIN regions`).
			WillReturnRows(sqlmock.NewRows(statsColumns()))

		summaries, err := svc.GetWalkStatistics(ctx)
		require.NoError(t, err)
		assert.Empty(t, summaries)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
