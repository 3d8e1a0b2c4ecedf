package app

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog/internal/config"
	"catalog/internal/domain"
	domainerrors "catalog/internal/errors"
	"catalog/internal/mediator"
	"catalog/internal/repository"
	repoMocks "catalog/internal/repository/mocks"
	"catalog/internal/usecase/category"
	"catalog/internal/usecase/genre"
)

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Environment: "test",
		Log:         config.LogConfig{Level: "info", Format: "json"},
		Pagination:  config.PaginationConfig{DefaultPerPage: 15, MaxPerPage: 100},
		Telemetry:   config.TelemetryConfig{Enabled: false},
	}
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestNew_RequiresRepositories(t *testing.T) {
	_, err := New(context.Background(), testConfig(), Repositories{Categories: new(repoMocks.MockCategoryRepository)}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "genre repository is required")
	assert.Contains(t, err.Error(), "unit of work is required")
	assert.NotContains(t, err.Error(), "category repository is required")
}

func TestApp_EndToEnd(t *testing.T) {
	ctx := context.Background()
	categories := new(repoMocks.MockCategoryRepository)
	genres := new(repoMocks.MockGenreRepository)
	uow := new(repoMocks.MockUnitOfWork)

	var buf bytes.Buffer
	a, err := New(ctx, testConfig(), Repositories{Categories: categories, Genres: genres, UnitOfWork: uow}, &buf)
	require.NoError(t, err)
	defer func() { assert.NoError(t, a.Shutdown(ctx)) }()

	categories.On("Insert", mock.Anything, mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)

	created, err := mediator.Send[category.CreateInput, *category.Output](ctx, a.Mediator, category.CreateInput{Name: "Documentary"})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	missing := uuid.New()
	categories.On("GetIDListByIDs", mock.Anything, []uuid.UUID{created.ID, missing}).Return([]uuid.UUID{created.ID}, nil)

	_, err = mediator.Send[genre.CreateInput, *genre.Output](ctx, a.Mediator, genre.CreateInput{
		Name:        "Biography",
		CategoryIDs: []uuid.UUID{created.ID, missing},
	})
	assert.ErrorIs(t, err, domainerrors.ErrRelatedAggregate)
	genres.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)

	genres.On("Search", mock.Anything, mock.Anything).Return(&repository.SearchOutput[*domain.Genre]{CurrentPage: 1, PerPage: 15}, nil)
	page, err := mediator.Send[genre.ListInput, *genre.ListOutput](ctx, a.Mediator, genre.ListInput{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	lines := logLines(t, &buf)
	var requests []map[string]any
	for _, line := range lines {
		if _, ok := line["request"]; ok {
			requests = append(requests, line)
		}
	}
	require.Len(t, requests, 3)
	assert.Equal(t, "category.CreateInput", requests[0]["request"])
	assert.Equal(t, "ok", requests[0]["status"])
	assert.Equal(t, "genre.CreateInput", requests[1]["request"])
	assert.Equal(t, "RELATED_AGGREGATE", requests[1]["error_code"])
	assert.NotEmpty(t, requests[2]["request_id"])
	assert.NotEmpty(t, requests[2]["ts"])

	n, err := testutil.GatherAndCount(a.Registry, "catalog_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
