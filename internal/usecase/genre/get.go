package genre

import (
	"context"

	"github.com/google/uuid"

	"catalog/internal/repository"
	"catalog/internal/validation"
)

// GetInput fetches a genre by id.
type GetInput struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// Get handles GetInput. The output lists the associated categories with their names.
type Get struct {
	genres     repository.GenreRepository
	categories repository.CategoryRepository
	validator  *validation.Validator
}

// NewGet constructs the Get use case.
func NewGet(genres repository.GenreRepository, categories repository.CategoryRepository, v *validation.Validator) *Get {
	return &Get{genres: genres, categories: categories, validator: v}
}

// Handle returns the genre with the requested id and its category names.
func (uc *Get) Handle(ctx context.Context, in GetInput) (*Output, error) {
	if err := uc.validator.Validate(in); err != nil {
		return nil, err
	}

	g, err := uc.genres.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	names, err := categoryNames(ctx, uc.categories, distinct(g.Categories()))
	if err != nil {
		return nil, err
	}

	out := FromGenre(g)
	out.fillCategoryNames(names)
	return out, nil
}
