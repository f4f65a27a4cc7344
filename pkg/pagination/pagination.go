package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// Params holds validated pagination parameters
type Params struct {
	PageNumber int
	PageSize   int
	Offset     int
}

// Parse extracts pageNumber/pageSize from query parameters and clamps them
// to sane bounds. Out-of-range values are corrected, never rejected.
func Parse(c *gin.Context) Params {
	pageNumber, _ := strconv.Atoi(c.DefaultQuery("pageNumber", strconv.Itoa(DefaultPageNumber)))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(DefaultPageSize)))

	return Clamp(pageNumber, pageSize)
}

// Clamp normalizes raw pagination values
func Clamp(pageNumber, pageSize int) Params {
	if pageNumber < 1 {
		pageNumber = DefaultPageNumber
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return Params{
		PageNumber: pageNumber,
		PageSize:   pageSize,
		Offset:     (pageNumber - 1) * pageSize,
	}
}
