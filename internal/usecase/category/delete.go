package category

import (
	"context"

	"github.com/google/uuid"

	"catalog/internal/mediator"
	"catalog/internal/repository"
	"catalog/internal/validation"
)

// DeleteInput deletes a category by id.
type DeleteInput struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// Delete handles DeleteInput.
type Delete struct {
	repo      repository.CategoryRepository
	uow       repository.UnitOfWork
	validator *validation.Validator
}

// NewDelete constructs the Delete use case.
func NewDelete(repo repository.CategoryRepository, uow repository.UnitOfWork, v *validation.Validator) *Delete {
	return &Delete{repo: repo, uow: uow, validator: v}
}

// Handle removes the category with the requested id.
func (uc *Delete) Handle(ctx context.Context, in DeleteInput) (mediator.Unit, error) {
	if err := uc.validator.Validate(in); err != nil {
		return mediator.Unit{}, err
	}

	c, err := uc.repo.Get(ctx, in.ID)
	if err != nil {
		return mediator.Unit{}, err
	}

	if err := uc.repo.Delete(ctx, c); err != nil {
		return mediator.Unit{}, err
	}
	return mediator.Unit{}, uc.uow.Commit(ctx)
}
