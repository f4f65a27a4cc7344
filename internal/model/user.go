package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the central identity entity. The username doubles as the email address.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"` // Omit hash from JSON requests/responses
	Roles        []Role    `gorm:"many2many:user_roles;" json:"roles"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// RoleNames returns the names of all roles held by the user
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// Built-in role names
const (
	RoleReader = "Reader"
	RoleWriter = "Writer"
)

// Role represents a named permission group. The built-in set is seeded with
// fixed identifiers that are stable across deployments.
type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}
