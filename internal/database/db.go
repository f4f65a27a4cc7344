package database

import (
	"fmt"

	"walks-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Seed identifiers are fixed constants, stable across deployments
var (
	ReaderRoleID = uuid.MustParse("00eaec85-cc4e-4e85-ab50-dce6a0c41211")
	WriterRoleID = uuid.MustParse("fa1f4d77-cb75-482b-9fd7-504f50690e8a")

	EasyDifficultyID   = uuid.MustParse("54466f17-02af-48e7-8ed3-5a4a8bfacf6f")
	MediumDifficultyID = uuid.MustParse("ea294873-7a8c-4c0f-bfa7-a2eb492cbf8c")
	HardDifficultyID   = uuid.MustParse("f808ddcd-b5e5-4d80-b732-1ca523e48434")
)

// NewWalksConnection opens the application-data database and migrates the
// walks schema, including the difficulty reference rows.
func NewWalksConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Region{}, &model.Difficulty{}, &model.Walk{}); err != nil {
		return nil, fmt.Errorf("failed to migrate walks schema: %w", err)
	}

	if err := seedDifficulties(db); err != nil {
		return nil, fmt.Errorf("failed to seed difficulties: %w", err)
	}
	return db, nil
}

// NewAuthConnection opens the identity database and migrates the identity
// schema, including the built-in role rows.
func NewAuthConnection(dsn string) (*gorm.DB, error) {
	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey,
	// which the user store maps to its duplicate-username sentinel.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.Role{}); err != nil {
		return nil, fmt.Errorf("failed to migrate identity schema: %w", err)
	}

	if err := seedRoles(db); err != nil {
		return nil, fmt.Errorf("failed to seed roles: %w", err)
	}
	return db, nil
}

func seedRoles(db *gorm.DB) error {
	roles := []model.Role{
		{ID: ReaderRoleID, Name: model.RoleReader},
		{ID: WriterRoleID, Name: model.RoleWriter},
	}
	for _, role := range roles {
		var existing model.Role
		err := db.Where(model.Role{ID: role.ID}).Attrs(model.Role{Name: role.Name}).FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func seedDifficulties(db *gorm.DB) error {
	difficulties := []model.Difficulty{
		{ID: EasyDifficultyID, Name: "Easy"},
		{ID: MediumDifficultyID, Name: "Medium"},
		{ID: HardDifficultyID, Name: "Hard"},
	}
	for _, difficulty := range difficulties {
		var existing model.Difficulty
		err := db.Where(model.Difficulty{ID: difficulty.ID}).Attrs(model.Difficulty{Name: difficulty.Name}).FirstOrCreate(&existing).Error
		if err != nil {
			return err
		}
	}
	return nil
}
