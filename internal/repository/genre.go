package repository

import (
	"context"

	"github.com/google/uuid"

	"catalog/internal/domain"
)

// GenreRepository defines data access for genres, including their category links.
type GenreRepository interface {
	Searchable[*domain.Genre]

	Insert(ctx context.Context, genre *domain.Genre) error

	// Get returns the genre or an error matching errors.ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Genre, error)

	Update(ctx context.Context, genre *domain.Genre) error
	Delete(ctx context.Context, genre *domain.Genre) error
}
