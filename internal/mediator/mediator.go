// Package mediator dispatches use-case requests to their handlers.
//
// Each request type has exactly one handler. Requests travel through the
// registered behaviours (request id, logging, tracing, metrics) before reaching
// the handler, in the order the behaviours were added.
package mediator

import (
	"context"
	"fmt"
	"reflect"

	domainerrors "catalog/internal/errors"
)

// Unit is the response of requests that produce no output.
type Unit struct{}

// Handler handles a single request type.
type Handler[Req, Resp any] interface {
	Handle(ctx context.Context, req Req) (Resp, error)
}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc[Req, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Handle calls f.
func (f HandlerFunc[Req, Resp]) Handle(ctx context.Context, req Req) (Resp, error) {
	return f(ctx, req)
}

// Next invokes the remainder of the pipeline.
type Next func(ctx context.Context) (any, error)

// Behavior wraps request handling. name identifies the request type, e.g. "genre.UpdateInput".
type Behavior func(ctx context.Context, name string, req any, next Next) (any, error)

type registration struct {
	name   string
	handle func(ctx context.Context, req any) (any, error)
}

// Mediator routes requests to handlers. Register handlers before the first Send;
// after that a Mediator is safe for concurrent use.
type Mediator struct {
	handlers  map[reflect.Type]registration
	behaviors []Behavior
}

// New creates a mediator with the given behaviours, outermost first.
func New(behaviors ...Behavior) *Mediator {
	return &Mediator{
		handlers:  make(map[reflect.Type]registration),
		behaviors: behaviors,
	}
}

// Use appends behaviours to the pipeline.
func (m *Mediator) Use(behaviors ...Behavior) {
	m.behaviors = append(m.behaviors, behaviors...)
}

// Register binds h to the request type Req. Registering a second handler for
// the same request type is an error.
func Register[Req, Resp any](m *Mediator, h Handler[Req, Resp]) error {
	t := reflect.TypeFor[Req]()
	name := t.String()
	if _, exists := m.handlers[t]; exists {
		return fmt.Errorf("mediator: handler already registered for %s", name)
	}

	m.handlers[t] = registration{
		name: name,
		handle: func(ctx context.Context, req any) (any, error) {
			return h.Handle(ctx, req.(Req))
		},
	}
	return nil
}

// Send dispatches req through the pipeline to its handler.
func Send[Req, Resp any](ctx context.Context, m *Mediator, req Req) (Resp, error) {
	var zero Resp

	reg, ok := m.handlers[reflect.TypeFor[Req]()]
	if !ok {
		return zero, domainerrors.Internalf("mediator: no handler registered for %s", reflect.TypeFor[Req]())
	}

	next := Next(func(ctx context.Context) (any, error) {
		return reg.handle(ctx, req)
	})
	for i := len(m.behaviors) - 1; i >= 0; i-- {
		behavior, inner := m.behaviors[i], next
		next = func(ctx context.Context) (any, error) {
			return behavior(ctx, reg.name, req, inner)
		}
	}

	res, err := next(ctx)
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}
	out, ok := res.(Resp)
	if !ok {
		return zero, domainerrors.Internalf("mediator: %s handler returned %T, want %s", reg.name, res, reflect.TypeFor[Resp]())
	}
	return out, nil
}

// Status is the outcome label used in logs and metrics: "ok" or the error code.
func Status(err error) string {
	if err == nil {
		return "ok"
	}
	return string(domainerrors.CodeOf(err))
}
