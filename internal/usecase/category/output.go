// Package category implements the category use cases.
package category

import (
	"time"

	"github.com/google/uuid"

	"catalog/internal/domain"
	"catalog/internal/usecase/common"
)

// Output is the category representation returned by every use case.
type Output struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromCategory maps the aggregate to its output.
func FromCategory(c *domain.Category) *Output {
	return &Output{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// ListInput requests a page of categories.
type ListInput struct {
	common.PaginatedListInput
}

// ListOutput is a page of categories.
type ListOutput = common.PaginatedListOutput[*Output]
