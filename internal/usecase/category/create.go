package category

import (
	"context"

	"catalog/internal/domain"
	"catalog/internal/repository"
	"catalog/internal/validation"
)

// CreateInput creates a category. IsActive defaults to true.
type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// Create handles CreateInput.
type Create struct {
	repo      repository.CategoryRepository
	uow       repository.UnitOfWork
	validator *validation.Validator
}

// NewCreate constructs the Create use case.
func NewCreate(repo repository.CategoryRepository, uow repository.UnitOfWork, v *validation.Validator) *Create {
	return &Create{repo: repo, uow: uow, validator: v}
}

// Handle validates and stores a new category.
func (uc *Create) Handle(ctx context.Context, in CreateInput) (*Output, error) {
	if err := uc.validator.Validate(in); err != nil {
		return nil, err
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	c, err := domain.NewCategory(in.Name, in.Description, isActive)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	if err := uc.uow.Commit(ctx); err != nil {
		return nil, err
	}

	return FromCategory(c), nil
}
