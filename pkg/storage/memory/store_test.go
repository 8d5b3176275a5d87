package memory

import (
	"context"
	"testing"

	"github.com/fadedpez/onexrace/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	value := []byte(`1000`)
	require.NoError(t, s.Set(ctx, storage.KeyCoins, value))
	value[0] = '9'

	got, err := s.Get(ctx, storage.KeyCoins)
	require.NoError(t, err)
	assert.Equal(t, []byte(`1000`), got, "store keeps its own copy")

	require.NoError(t, s.Delete(ctx, storage.KeyCoins))
	require.NoError(t, s.Delete(ctx, storage.KeyCoins), "deleting a missing key is fine")
	assert.Zero(t, s.Keys())

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Set(ctx, "k", nil), storage.ErrClosed)
}
