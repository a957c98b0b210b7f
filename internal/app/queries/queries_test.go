package queries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoQuery struct {
	Value string
}

func (echoQuery) Key() string { return "test.echo" }

type echoHandler struct{}

func (echoHandler) Handle(ctx context.Context, q echoQuery) (string, error) {
	return q.Value, nil
}

func TestInMemoryBusRoutesToHandler(t *testing.T) {
	bus := NewInMemoryBus()
	RegisterHandler(bus, echoQuery{}.Key(), echoHandler{})

	got, err := Ask[echoQuery, string](context.Background(), bus, echoQuery{Value: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestInMemoryBusUnknownKey(t *testing.T) {
	bus := NewInMemoryBus()

	_, err := Ask[echoQuery, string](context.Background(), bus, echoQuery{})
	assert.ErrorIs(t, err, ErrHandlerNotFound)
}

func TestAskNilBus(t *testing.T) {
	_, err := Ask[echoQuery, string](context.Background(), nil, echoQuery{})
	assert.ErrorIs(t, err, ErrNilBus)
}

func TestAskResultTypeMismatch(t *testing.T) {
	bus := NewInMemoryBus()
	RegisterHandler(bus, echoQuery{}.Key(), echoHandler{})

	_, err := Ask[echoQuery, int](context.Background(), bus, echoQuery{Value: "hello"})
	assert.ErrorIs(t, err, ErrResultType)
}
