package genre

import (
	"context"

	"github.com/google/uuid"

	"catalog/internal/mediator"
	"catalog/internal/repository"
	"catalog/internal/validation"
)

// DeleteInput deletes a genre by id.
type DeleteInput struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// Delete handles DeleteInput.
type Delete struct {
	genres    repository.GenreRepository
	uow       repository.UnitOfWork
	validator *validation.Validator
}

// NewDelete constructs the Delete use case.
func NewDelete(genres repository.GenreRepository, uow repository.UnitOfWork, v *validation.Validator) *Delete {
	return &Delete{genres: genres, uow: uow, validator: v}
}

// Handle removes the genre with the requested id.
func (uc *Delete) Handle(ctx context.Context, in DeleteInput) (mediator.Unit, error) {
	if err := uc.validator.Validate(in); err != nil {
		return mediator.Unit{}, err
	}

	g, err := uc.genres.Get(ctx, in.ID)
	if err != nil {
		return mediator.Unit{}, err
	}

	if err := uc.genres.Delete(ctx, g); err != nil {
		return mediator.Unit{}, err
	}
	return mediator.Unit{}, uc.uow.Commit(ctx)
}
