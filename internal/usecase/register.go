// Package usecase registers the category and genre use cases on a mediator.
package usecase

import (
	"errors"

	"catalog/internal/config"
	"catalog/internal/mediator"
	"catalog/internal/repository"
	"catalog/internal/usecase/category"
	"catalog/internal/usecase/genre"
	"catalog/internal/validation"
)

// Dependencies are the collaborators shared by the use cases.
type Dependencies struct {
	Categories repository.CategoryRepository
	Genres     repository.GenreRepository
	UnitOfWork repository.UnitOfWork
	Validator  *validation.Validator
	Pagination config.PaginationConfig
}

// Register binds every use case to its request type.
func Register(m *mediator.Mediator, deps Dependencies) error {
	v := deps.Validator
	if v == nil {
		v = validation.New()
	}

	return errors.Join(
		mediator.Register[category.CreateInput, *category.Output](m, category.NewCreate(deps.Categories, deps.UnitOfWork, v)),
		mediator.Register[category.GetInput, *category.Output](m, category.NewGet(deps.Categories, v)),
		mediator.Register[category.UpdateInput, *category.Output](m, category.NewUpdate(deps.Categories, deps.UnitOfWork, v)),
		mediator.Register[category.DeleteInput, mediator.Unit](m, category.NewDelete(deps.Categories, deps.UnitOfWork, v)),
		mediator.Register[category.ListInput, *category.ListOutput](m, category.NewList(deps.Categories, v, deps.Pagination)),

		mediator.Register[genre.CreateInput, *genre.Output](m, genre.NewCreate(deps.Genres, deps.Categories, deps.UnitOfWork, v)),
		mediator.Register[genre.GetInput, *genre.Output](m, genre.NewGet(deps.Genres, deps.Categories, v)),
		mediator.Register[genre.UpdateInput, *genre.Output](m, genre.NewUpdate(deps.Genres, deps.Categories, deps.UnitOfWork, v)),
		mediator.Register[genre.DeleteInput, mediator.Unit](m, genre.NewDelete(deps.Genres, deps.UnitOfWork, v)),
		mediator.Register[genre.ListInput, *genre.ListOutput](m, genre.NewList(deps.Genres, deps.Categories, v, deps.Pagination)),
	)
}
