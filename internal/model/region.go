package model

import (
	"time"

	"github.com/google/uuid"
)

// Region represents a geographic region that walks belong to
type Region struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code           string    `gorm:"type:varchar(10);not null" json:"code"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	RegionImageUrl *string   `gorm:"type:text" json:"regionImageUrl"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"-"`
}
