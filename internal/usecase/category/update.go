package category

import (
	"context"

	"github.com/google/uuid"

	"catalog/internal/repository"
	"catalog/internal/validation"
)

// UpdateInput updates a category.
// A nil Description keeps the current one; a nil IsActive keeps the current state.
type UpdateInput struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	IsActive    *bool     `json:"is_active"`
}

// Update handles UpdateInput.
type Update struct {
	repo      repository.CategoryRepository
	uow       repository.UnitOfWork
	validator *validation.Validator
}

// NewUpdate constructs the Update use case.
func NewUpdate(repo repository.CategoryRepository, uow repository.UnitOfWork, v *validation.Validator) *Update {
	return &Update{repo: repo, uow: uow, validator: v}
}

// Handle applies the changes to an existing category and stores it.
func (uc *Update) Handle(ctx context.Context, in UpdateInput) (*Output, error) {
	if err := uc.validator.Validate(in); err != nil {
		return nil, err
	}

	c, err := uc.repo.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if err := c.Update(in.Name, in.Description); err != nil {
		return nil, err
	}

	if in.IsActive != nil && *in.IsActive != c.IsActive {
		if *in.IsActive {
			err = c.Activate()
		} else {
			err = c.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	if err := uc.uow.Commit(ctx); err != nil {
		return nil, err
	}

	return FromCategory(c), nil
}
