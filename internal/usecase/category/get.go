package category

import (
	"context"

	"github.com/google/uuid"

	"catalog/internal/repository"
	"catalog/internal/validation"
)

// GetInput fetches a category by id.
type GetInput struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// Get handles GetInput.
type Get struct {
	repo      repository.CategoryRepository
	validator *validation.Validator
}

// NewGet constructs the Get use case.
func NewGet(repo repository.CategoryRepository, v *validation.Validator) *Get {
	return &Get{repo: repo, validator: v}
}

// Handle returns the category with the requested id.
func (uc *Get) Handle(ctx context.Context, in GetInput) (*Output, error) {
	if err := uc.validator.Validate(in); err != nil {
		return nil, err
	}

	c, err := uc.repo.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	return FromCategory(c), nil
}
