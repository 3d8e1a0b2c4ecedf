// Package genre implements the genre use cases, including the management of
// the genre to category associations.
package genre

import (
	"time"

	"github.com/google/uuid"

	"catalog/internal/domain"
	"catalog/internal/usecase/common"
)

// CategoryRef is a category associated with a genre.
// Name is only filled by the read use cases.
type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

// Output is the genre representation returned by every use case.
type Output struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	IsActive   bool          `json:"is_active"`
	CreatedAt  time.Time     `json:"created_at"`
	Categories []CategoryRef `json:"categories"`
}

// FromGenre maps the aggregate to its output, categories carrying ids only.
func FromGenre(g *domain.Genre) *Output {
	ids := g.Categories()
	refs := make([]CategoryRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, CategoryRef{ID: id})
	}
	return &Output{
		ID:         g.ID,
		Name:       g.Name,
		IsActive:   g.IsActive,
		CreatedAt:  g.CreatedAt,
		Categories: refs,
	}
}

// fillCategoryNames sets the name of every reference found in names.
// References to categories missing from names keep an empty name.
func (o *Output) fillCategoryNames(names map[uuid.UUID]string) {
	for i := range o.Categories {
		o.Categories[i].Name = names[o.Categories[i].ID]
	}
}

// ListInput requests a page of genres.
type ListInput struct {
	common.PaginatedListInput
}

// ListOutput is a page of genres.
type ListOutput = common.PaginatedListOutput[*Output]
