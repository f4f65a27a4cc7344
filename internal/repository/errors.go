package repository

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist
	ErrNotFound = errors.New("record not found")

	// ErrRoleNotFound is returned when a role name has no matching seeded role
	ErrRoleNotFound = errors.New("role not found")

	// ErrDuplicateUsername is returned when a username is already taken
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrUnknownFilterField is returned for filterOn values outside the filter registry
	ErrUnknownFilterField = errors.New("unknown filter field")

	// ErrUnknownSortField is returned for sortBy values outside the sort registry
	ErrUnknownSortField = errors.New("unknown sort field")
)
