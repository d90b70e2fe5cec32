package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), TasksKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, LogsKey, `[{"id":"a"}]`))

	value, err := store.Get(ctx, LogsKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, value)

	// Keys are independent slots
	require.NoError(t, store.Set(ctx, LogsKey, `[]`))
	value, err = store.Get(ctx, LogsKey)
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)

	_, err = store.Get(ctx, ModulesKey)
	assert.ErrorIs(t, err, ErrNotFound)
}
