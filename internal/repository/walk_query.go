package repository

import (
	"fmt"
	"strings"

	"walks-api/pkg/pagination"

	"gorm.io/gorm"
)

// walkFilters is the registry of filterable walk fields. Keys are matched
// case-insensitively; anything outside the registry is a validation error.
var walkFilters = map[string]func(db *gorm.DB, query string) *gorm.DB{
	// Case-sensitive substring containment on the walk name.
	"name": func(db *gorm.DB, query string) *gorm.DB {
		return db.Where("walks.name LIKE ?", "%"+query+"%")
	},
}

// walkSorts maps sortable field keys to their order-by columns
var walkSorts = map[string]string{
	"name":       "walks.name",
	"lengthinkm": "walks.length_in_km",
}

// WalkListQuery is a validated filter/sort/paginate descriptor for walk
// listings. Filtering, sorting and pagination always compose in that order.
type WalkListQuery struct {
	filter  func(db *gorm.DB) *gorm.DB
	orderBy string
	Page    pagination.Params
}

// NewWalkListQuery validates list parameters against the field registries.
// The filter only engages when both filterOn and filterQuery are non-empty.
func NewWalkListQuery(filterOn, filterQuery, sortBy string, ascending bool, page pagination.Params) (*WalkListQuery, error) {
	q := &WalkListQuery{Page: page}

	if filterOn != "" && filterQuery != "" {
		apply, ok := walkFilters[strings.ToLower(filterOn)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFilterField, filterOn)
		}
		q.filter = func(db *gorm.DB) *gorm.DB { return apply(db, filterQuery) }
	}

	if sortBy != "" {
		column, ok := walkSorts[strings.ToLower(sortBy)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSortField, sortBy)
		}
		direction := "ASC"
		if !ascending {
			direction = "DESC"
		}
		q.orderBy = column + " " + direction
	}

	return q, nil
}

// apply chains the descriptor onto a walk query: filter, then sort, then paginate
func (q *WalkListQuery) apply(db *gorm.DB) *gorm.DB {
	if q.filter != nil {
		db = q.filter(db)
	}
	if q.orderBy != "" {
		db = db.Order(q.orderBy)
	}
	return db.Offset(q.Page.Offset).Limit(q.Page.PageSize)
}
