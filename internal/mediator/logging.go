package mediator

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	domainerrors "catalog/internal/errors"
)

// Logging logs each request once it has been handled.
// Fields: request_id, request, status, latency (milliseconds) and error_code on failure.
// Client errors (validation, not found, related aggregate) log at warn, everything else at error.
func Logging(log logrus.FieldLogger) Behavior {
	return func(ctx context.Context, name string, _ any, next Next) (any, error) {
		start := time.Now()

		res, err := next(ctx)

		entry := log.WithFields(logrus.Fields{
			"request_id": RequestIDFromContext(ctx),
			"request":    name,
			"status":     Status(err),
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		})

		if err == nil {
			entry.Info("request handled")
			return res, nil
		}

		code := domainerrors.CodeOf(err)
		entry = entry.WithField("error_code", string(code)).WithError(err)
		switch code {
		case domainerrors.CodeValidation, domainerrors.CodeNotFound, domainerrors.CodeRelatedAggregate:
			entry.Warn("request rejected")
		default:
			entry.Error("request failed")
		}
		return res, err
	}
}
