// Package common holds the pagination DTOs shared by the list use cases.
package common

import (
	"catalog/internal/config"
	"catalog/internal/repository"
)

// PaginatedListInput is the list request shared by every aggregate.
// Zero values fall back to the configured defaults.
type PaginatedListInput struct {
	Page    int    `json:"page" validate:"gte=0"`
	PerPage int    `json:"per_page" validate:"gte=0"`
	Search  string `json:"search"`
	Sort    string `json:"sort"`
	Dir     string `json:"dir" validate:"omitempty,oneof=asc desc"`
}

// ToSearchInput converts the request to a repository search, applying defaults:
// page 1, cfg.DefaultPerPage items capped at cfg.MaxPerPage, ascending order.
func (in PaginatedListInput) ToSearchInput(cfg config.PaginationConfig) repository.SearchInput {
	page := in.Page
	if page <= 0 {
		page = 1
	}

	perPage := in.PerPage
	if perPage <= 0 {
		perPage = cfg.DefaultPerPage
	}
	if cfg.MaxPerPage > 0 && perPage > cfg.MaxPerPage {
		perPage = cfg.MaxPerPage
	}

	order := repository.SearchOrderAsc
	if in.Dir == string(repository.SearchOrderDesc) {
		order = repository.SearchOrderDesc
	}

	return repository.SearchInput{
		Page:    page,
		PerPage: perPage,
		Search:  in.Search,
		OrderBy: in.Sort,
		Order:   order,
	}
}

// PaginatedListOutput is a page of use-case outputs.
type PaginatedListOutput[T any] struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Items   []T `json:"items"`
}

// NewPaginatedListOutput maps a repository page with fn, keeping its pagination metadata.
// A nil page yields an empty output.
func NewPaginatedListOutput[S, T any](page *repository.SearchOutput[S], fn func(S) T) PaginatedListOutput[T] {
	if page == nil {
		return PaginatedListOutput[T]{Items: []T{}}
	}

	items := make([]T, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, fn(item))
	}
	return PaginatedListOutput[T]{
		Page:    page.CurrentPage,
		PerPage: page.PerPage,
		Total:   page.Total,
		Items:   items,
	}
}
