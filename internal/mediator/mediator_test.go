package mediator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "catalog/internal/errors"
)

type ping struct{ Value string }

type pong struct{ Value string }

type echoHandler struct{}

func (echoHandler) Handle(_ context.Context, req ping) (pong, error) {
	return pong{Value: req.Value}, nil
}

func TestSend(t *testing.T) {
	m := New()
	require.NoError(t, Register[ping, pong](m, echoHandler{}))

	res, err := Send[ping, pong](context.Background(), m, ping{Value: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", res.Value)
}

func TestRegister_Duplicate(t *testing.T) {
	m := New()
	require.NoError(t, Register[ping, pong](m, echoHandler{}))

	err := Register[ping, pong](m, echoHandler{})
	assert.EqualError(t, err, "mediator: handler already registered for mediator.ping")
}

func TestSend_NoHandler(t *testing.T) {
	_, err := Send[ping, pong](context.Background(), New(), ping{})
	assert.ErrorIs(t, err, domainerrors.ErrInternal)
	assert.Contains(t, err.Error(), "no handler registered for mediator.ping")
}

func TestSend_ResponseTypeMismatch(t *testing.T) {
	m := New()
	require.NoError(t, Register[ping, pong](m, echoHandler{}))

	_, err := Send[ping, Unit](context.Background(), m, ping{})
	assert.ErrorIs(t, err, domainerrors.ErrInternal)
}

func TestSend_HandlerError(t *testing.T) {
	m := New()
	handler := HandlerFunc[ping, *pong](func(context.Context, ping) (*pong, error) {
		return nil, domainerrors.NotFoundf("Thing 'x' not found")
	})
	require.NoError(t, Register[ping, *pong](m, handler))

	res, err := Send[ping, *pong](context.Background(), m, ping{})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestSend_BehaviorOrder(t *testing.T) {
	var calls []string
	trace := func(label string) Behavior {
		return func(ctx context.Context, name string, req any, next Next) (any, error) {
			assert.Equal(t, "mediator.ping", name)
			assert.IsType(t, ping{}, req)
			calls = append(calls, label+" in")
			res, err := next(ctx)
			calls = append(calls, label+" out")
			return res, err
		}
	}

	m := New(trace("outer"))
	m.Use(trace("inner"))
	require.NoError(t, Register[ping, pong](m, HandlerFunc[ping, pong](func(_ context.Context, req ping) (pong, error) {
		calls = append(calls, "handler")
		return pong(req), nil
	})))

	_, err := Send[ping, pong](context.Background(), m, ping{})
	require.NoError(t, err)
	assert.Equal(t, []string{"outer in", "inner in", "handler", "inner out", "outer out"}, calls)
}

func TestSend_BehaviorShortCircuit(t *testing.T) {
	m := New(func(context.Context, string, any, Next) (any, error) {
		return nil, domainerrors.Validationf("rejected")
	})
	require.NoError(t, Register[ping, pong](m, HandlerFunc[ping, pong](func(context.Context, ping) (pong, error) {
		t.Fatal("handler must not run")
		return pong{}, nil
	})))

	_, err := Send[ping, pong](context.Background(), m, ping{})
	assert.EqualError(t, err, "rejected")
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "ok", Status(nil))
	assert.Equal(t, "VALIDATION", Status(domainerrors.Validationf("bad")))
	assert.Equal(t, "INTERNAL", Status(assert.AnError))
}
