package mediator

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	domainerrors "catalog/internal/errors"
)

const tracerName = "catalog/internal/mediator"

// Tracing starts one span per request, named after the request type.
// A nil provider falls back to the global one.
func Tracing(tp trace.TracerProvider) Behavior {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer(tracerName)

	return func(ctx context.Context, name string, _ any, next Next) (any, error) {
		ctx, span := tracer.Start(ctx, name,
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attribute.String("catalog.request", name)),
		)
		defer span.End()

		if id := RequestIDFromContext(ctx); id != "" {
			span.SetAttributes(attribute.String("catalog.request_id", id))
		}

		res, err := next(ctx)
		if err != nil {
			span.SetAttributes(attribute.String("catalog.error_code", string(domainerrors.CodeOf(err))))
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return res, err
		}
		span.SetStatus(codes.Ok, "")
		return res, nil
	}
}
