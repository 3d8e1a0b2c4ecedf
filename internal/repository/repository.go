// Package repository contains the persistence contracts used by the use cases.
// Implementations live outside this module; mocks provides test doubles.
package repository

import (
	"context"

	"github.com/google/uuid"

	domainerrors "catalog/internal/errors"
)

// SearchOrder is the sort direction of a search.
type SearchOrder string

const (
	SearchOrderAsc  SearchOrder = "asc"
	SearchOrderDesc SearchOrder = "desc"
)

// SearchInput holds page-based pagination, a free text filter and ordering.
// Page is 1-based.
type SearchInput struct {
	Page    int
	PerPage int
	Search  string
	OrderBy string
	Order   SearchOrder
}

// SearchOutput is a generic page of aggregates.
type SearchOutput[T any] struct {
	CurrentPage int
	PerPage     int
	Total       int
	Items       []T
}

// Searchable is implemented by repositories supporting paginated search.
type Searchable[T any] interface {
	// Search filters, orders and paginates aggregates according to input.
	Search(ctx context.Context, input SearchInput) (*SearchOutput[T], error)
}

// UnitOfWork is the transactional commit boundary shared by the repositories.
type UnitOfWork interface {
	Commit(ctx context.Context) error
}

// NotFound builds the error repositories return from Get when no aggregate has the id.
func NotFound(aggregate string, id uuid.UUID) error {
	return domainerrors.NotFoundf("%s '%s' not found", aggregate, id)
}
