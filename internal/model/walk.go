package model

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty is read-only reference data seeded at schema initialization
type Difficulty struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

// Walk represents a single walking track within a region
type Walk struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string     `gorm:"type:varchar(100);not null" json:"name"`
	Description  string     `gorm:"type:text;not null" json:"description"`
	LengthInKm   float64    `gorm:"not null" json:"lengthInKm"`
	WalkImageUrl *string    `gorm:"type:text" json:"walkImageUrl"`
	DifficultyID uuid.UUID  `gorm:"type:uuid;not null" json:"difficultyId"`
	RegionID     uuid.UUID  `gorm:"type:uuid;not null" json:"regionId"`
	Difficulty   Difficulty `gorm:"foreignKey:DifficultyID" json:"difficulty"`
	Region       Region     `gorm:"foreignKey:RegionID" json:"region"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"-"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"-"`
}
