package genre

import (
	"context"

	"github.com/google/uuid"

	"catalog/internal/domain"
	"catalog/internal/repository"
	"catalog/internal/validation"
)

// CreateInput creates a genre. IsActive defaults to true.
// Every id in CategoryIDs must reference an existing category.
type CreateInput struct {
	Name        string      `json:"name"`
	IsActive    *bool       `json:"is_active"`
	CategoryIDs []uuid.UUID `json:"categories_ids"`
}

// Create handles CreateInput.
type Create struct {
	genres     repository.GenreRepository
	categories repository.CategoryRepository
	uow        repository.UnitOfWork
	validator  *validation.Validator
}

// NewCreate constructs the Create use case.
func NewCreate(genres repository.GenreRepository, categories repository.CategoryRepository, uow repository.UnitOfWork, v *validation.Validator) *Create {
	return &Create{genres: genres, categories: categories, uow: uow, validator: v}
}

// Handle validates the genre and its category references, then stores it.
func (uc *Create) Handle(ctx context.Context, in CreateInput) (*Output, error) {
	if err := uc.validator.Validate(in); err != nil {
		return nil, err
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	g, err := domain.NewGenre(in.Name, isActive)
	if err != nil {
		return nil, err
	}

	if len(in.CategoryIDs) > 0 {
		if err := ensureCategoriesExist(ctx, uc.categories, in.CategoryIDs); err != nil {
			return nil, err
		}
		for _, id := range in.CategoryIDs {
			if err := g.AddCategory(id); err != nil {
				return nil, err
			}
		}
	}

	if err := uc.genres.Insert(ctx, g); err != nil {
		return nil, err
	}
	if err := uc.uow.Commit(ctx); err != nil {
		return nil, err
	}

	return FromGenre(g), nil
}
