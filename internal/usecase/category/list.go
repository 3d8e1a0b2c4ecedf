package category

import (
	"context"

	"catalog/internal/config"
	"catalog/internal/repository"
	"catalog/internal/usecase/common"
	"catalog/internal/validation"
)

// List handles ListInput.
type List struct {
	repo       repository.CategoryRepository
	validator  *validation.Validator
	pagination config.PaginationConfig
}

// NewList constructs the List use case.
func NewList(repo repository.CategoryRepository, v *validation.Validator, pagination config.PaginationConfig) *List {
	return &List{repo: repo, validator: v, pagination: pagination}
}

// Handle returns one page of categories.
func (uc *List) Handle(ctx context.Context, in ListInput) (*ListOutput, error) {
	if err := uc.validator.Validate(in); err != nil {
		return nil, err
	}

	page, err := uc.repo.Search(ctx, in.ToSearchInput(uc.pagination))
	if err != nil {
		return nil, err
	}

	out := common.NewPaginatedListOutput(page, FromCategory)
	return &out, nil
}
