package genre

import (
	"context"

	"github.com/google/uuid"

	"catalog/internal/repository"
	"catalog/internal/validation"
)

// UpdateInput updates a genre.
//
// CategoryIDs controls the associations: nil keeps them, an empty list
// removes them all, a non-empty list replaces them after every id has been
// checked against the category repository.
type UpdateInput struct {
	ID          uuid.UUID   `json:"id" validate:"required"`
	Name        string      `json:"name"`
	IsActive    *bool       `json:"is_active"`
	CategoryIDs []uuid.UUID `json:"categories_ids"`
}

// Update handles UpdateInput.
type Update struct {
	genres     repository.GenreRepository
	categories repository.CategoryRepository
	uow        repository.UnitOfWork
	validator  *validation.Validator
}

// NewUpdate constructs the Update use case.
func NewUpdate(genres repository.GenreRepository, categories repository.CategoryRepository, uow repository.UnitOfWork, v *validation.Validator) *Update {
	return &Update{genres: genres, categories: categories, uow: uow, validator: v}
}

// Handle applies the changes to an existing genre and stores it.
func (uc *Update) Handle(ctx context.Context, in UpdateInput) (*Output, error) {
	if err := uc.validator.Validate(in); err != nil {
		return nil, err
	}

	g, err := uc.genres.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := g.Update(in.Name); err != nil {
		return nil, err
	}

	if len(in.CategoryIDs) > 0 {
		if err := ensureCategoriesExist(ctx, uc.categories, in.CategoryIDs); err != nil {
			return nil, err
		}
	}

	if in.IsActive != nil && *in.IsActive != g.IsActive {
		if *in.IsActive {
			err = g.Activate()
		} else {
			err = g.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}

	if in.CategoryIDs != nil {
		if err := g.RemoveAllCategories(); err != nil {
			return nil, err
		}
		for _, id := range in.CategoryIDs {
			if err := g.AddCategory(id); err != nil {
				return nil, err
			}
		}
	}

	if err := uc.genres.Update(ctx, g); err != nil {
		return nil, err
	}
	if err := uc.uow.Commit(ctx); err != nil {
		return nil, err
	}

	return FromGenre(g), nil
}
