package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"catalog/internal/repository"
)

type MockUnitOfWork struct {
	mock.Mock
}

var _ repository.UnitOfWork = (*MockUnitOfWork)(nil)

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
