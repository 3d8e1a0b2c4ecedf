package genre

import (
	"context"

	"github.com/google/uuid"

	"catalog/internal/config"
	"catalog/internal/domain"
	"catalog/internal/repository"
	"catalog/internal/usecase/common"
	"catalog/internal/validation"
)

// List handles ListInput. Category names for the whole page are resolved
// with one lookup.
type List struct {
	genres     repository.GenreRepository
	categories repository.CategoryRepository
	validator  *validation.Validator
	pagination config.PaginationConfig
}

// NewList constructs the List use case.
func NewList(genres repository.GenreRepository, categories repository.CategoryRepository, v *validation.Validator, pagination config.PaginationConfig) *List {
	return &List{genres: genres, categories: categories, validator: v, pagination: pagination}
}

// Handle returns one page of genres with their category names.
func (uc *List) Handle(ctx context.Context, in ListInput) (*ListOutput, error) {
	if err := uc.validator.Validate(in); err != nil {
		return nil, err
	}

	page, err := uc.genres.Search(ctx, in.ToSearchInput(uc.pagination))
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	if page != nil {
		for _, g := range page.Items {
			ids = append(ids, g.Categories()...)
		}
	}

	names, err := categoryNames(ctx, uc.categories, distinct(ids))
	if err != nil {
		return nil, err
	}

	out := common.NewPaginatedListOutput(page, func(g *domain.Genre) *Output {
		o := FromGenre(g)
		o.fillCategoryNames(names)
		return o
	})
	return &out, nil
}
