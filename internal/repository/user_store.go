package repository

import (
	"context"
	"errors"
	"fmt"

	"walks-api/internal/model"

	"gorm.io/gorm"
)

// UserStore is the credential store contract. The GORM implementation runs
// against the identity database; an in-memory implementation backs tests.
type UserStore interface {
	// CreateWithRoles creates the user and its role associations atomically.
	// Either everything is persisted or nothing is.
	CreateWithRoles(ctx context.Context, user *model.User, roleNames []string) error
	// GetByUsername returns the user with roles preloaded, or ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type userStore struct {
	db *gorm.DB
}

// NewUserStore returns the database-backed UserStore
func NewUserStore(db *gorm.DB) UserStore {
	return &userStore{db: db}
}

func (s *userStore) CreateWithRoles(ctx context.Context, user *model.User, roleNames []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(roleNames) > 0 {
			var roles []model.Role
			if err := tx.Where("name IN ?", roleNames).Find(&roles).Error; err != nil {
				return fmt.Errorf("failed to resolve roles: %w", err)
			}
			if len(roles) != len(roleNames) {
				return fmt.Errorf("%w: %v", ErrRoleNotFound, missingRoleNames(roleNames, roles))
			}
			user.Roles = roles
		}

		if err := tx.Create(user).Error; err != nil {
			// A concurrent registration can slip past the service-level
			// pre-check and hit the unique index instead.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateUsername
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Preload("Roles").First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func missingRoleNames(requested []string, found []model.Role) []string {
	present := make(map[string]bool, len(found))
	for _, r := range found {
		present[r.Name] = true
	}
	var missing []string
	for _, name := range requested {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	return missing
}
