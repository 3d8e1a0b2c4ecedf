package repository

import (
	"context"

	"github.com/google/uuid"

	"catalog/internal/domain"
)

// CategoryRepository defines data access for categories.
// No business logic here, strictly persistence operations.
type CategoryRepository interface {
	Searchable[*domain.Category]

	Insert(ctx context.Context, category *domain.Category) error

	// Get returns the category or an error matching errors.ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Category, error)

	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, category *domain.Category) error

	// GetIDListByIDs returns the subset of ids that exist.
	GetIDListByIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)

	// GetListByIDs returns the existing categories among ids.
	GetListByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Category, error)
}
