package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RegionWalkSummary aggregates the walks of one region
type RegionWalkSummary struct {
	RegionID          uuid.UUID       `json:"regionId"`
	RegionCode        string          `json:"regionCode"`
	RegionName        string          `json:"regionName"`
	WalkCount         int64           `json:"walkCount"`
	TotalLengthInKm   decimal.Decimal `json:"totalLengthInKm"`
	AverageLengthInKm decimal.Decimal `json:"averageLengthInKm"`
}

// StatisticsService computes aggregated walk metrics
type StatisticsService interface {
	GetWalkStatistics(ctx context.Context) ([]RegionWalkSummary, error)
}

type statisticsService struct {
	db *gorm.DB
}

// NewStatisticsService returns a new instance of StatisticsService
func NewStatisticsService(db *gorm.DB) StatisticsService {
	return &statisticsService{db: db}
}

// GetWalkStatistics returns per-region walk counts and length totals.
// Lengths are summed as decimals so totals do not drift with float addition.
func (s *statisticsService) GetWalkStatistics(ctx context.Context) ([]RegionWalkSummary, error) {
	var rows []struct {
		RegionID   uuid.UUID
		RegionCode string
		RegionName string
		LengthInKm float64
	}

	err := s.db.WithContext(ctx).Table("walks").
		Select("regions.id as region_id, regions.code as region_code, regions.name as region_name, walks.length_in_km").
		Joins("JOIN regions ON regions.id = walks.region_id").
		Order("regions.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]RegionWalkSummary, 0)
	index := make(map[uuid.UUID]int)
	for _, row := range rows {
		i, ok := index[row.RegionID]
		if !ok {
			i = len(summaries)
			index[row.RegionID] = i
			summaries = append(summaries, RegionWalkSummary{
				RegionID:   row.RegionID,
				RegionCode: row.RegionCode,
				RegionName: row.RegionName,
			})
		}
		summaries[i].WalkCount++
		summaries[i].TotalLengthInKm = summaries[i].TotalLengthInKm.Add(decimal.NewFromFloat(row.LengthInKm))
	}

	for i := range summaries {
		count := decimal.NewFromInt(summaries[i].WalkCount)
		summaries[i].AverageLengthInKm = summaries[i].TotalLengthInKm.Div(count).Round(2)
	}
	return summaries, nil
}
