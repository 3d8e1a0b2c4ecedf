package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"catalog/internal/domain"
	"catalog/internal/repository"
)

type MockGenreRepository struct {
	mock.Mock
}

var _ repository.GenreRepository = (*MockGenreRepository)(nil)

func (m *MockGenreRepository) Search(ctx context.Context, input repository.SearchInput) (*repository.SearchOutput[*domain.Genre], error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SearchOutput[*domain.Genre]), args.Error(1)
}

func (m *MockGenreRepository) Insert(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *MockGenreRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *MockGenreRepository) Update(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}

func (m *MockGenreRepository) Delete(ctx context.Context, genre *domain.Genre) error {
	args := m.Called(ctx, genre)
	return args.Error(0)
}
