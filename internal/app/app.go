// Package app assembles the catalog core around caller-supplied repositories.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"catalog/internal/config"
	"catalog/internal/logger"
	"catalog/internal/mediator"
	"catalog/internal/repository"
	"catalog/internal/telemetry"
	"catalog/internal/usecase"
	"catalog/internal/validation"
)

// Repositories are the persistence implementations the use cases run against.
type Repositories struct {
	Categories repository.CategoryRepository
	Genres     repository.GenreRepository
	UnitOfWork repository.UnitOfWork
}

func (r Repositories) validate() error {
	var errs []error
	if r.Categories == nil {
		errs = append(errs, errors.New("category repository is required"))
	}
	if r.Genres == nil {
		errs = append(errs, errors.New("genre repository is required"))
	}
	if r.UnitOfWork == nil {
		errs = append(errs, errors.New("unit of work is required"))
	}
	return errors.Join(errs...)
}

// App holds the wired catalog: send requests through Mediator.
type App struct {
	Config   *config.AppConfig
	Logger   *logrus.Logger
	Mediator *mediator.Mediator
	Registry *prometheus.Registry

	shutdownTracing telemetry.ShutdownFunc
}

// New wires logging, tracing, metrics and every use case.
// Logs are written to logOut, stdout when nil.
func New(ctx context.Context, cfg *config.AppConfig, repos Repositories, logOut io.Writer) (*App, error) {
	if err := repos.validate(); err != nil {
		return nil, fmt.Errorf("invalid repositories: %w", err)
	}

	log := logger.New(cfg.Log, cfg.Environment, logOut)

	tp, shutdown, err := telemetry.Init(ctx, cfg.Telemetry, log)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := mediator.NewMetrics(reg)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	// RequestID runs first so the other behaviours see the id.
	m := mediator.New(
		mediator.RequestID(),
		mediator.Tracing(tp),
		mediator.Logging(log),
		metrics.Behavior(),
	)

	err = usecase.Register(m, usecase.Dependencies{
		Categories: repos.Categories,
		Genres:     repos.Genres,
		UnitOfWork: repos.UnitOfWork,
		Validator:  validation.New(),
		Pagination: cfg.Pagination,
	})
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("register use cases: %w", err)
	}

	log.WithField("environment", cfg.Environment).Info("catalog_ready")

	return &App{
		Config:          cfg,
		Logger:          log,
		Mediator:        m,
		Registry:        reg,
		shutdownTracing: shutdown,
	}, nil
}

// Shutdown flushes pending spans.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.shutdownTracing(ctx); err != nil {
		return fmt.Errorf("shutdown tracing: %w", err)
	}
	return nil
}
