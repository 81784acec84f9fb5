package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/cumbre/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PutGetReplace(t *testing.T) {
	store := NewSQLiteStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "selectedYear", "1"))
	require.NoError(t, store.Put(ctx, "selectedYear", "2"))

	got, err := store.Get(ctx, "selectedYear")
	require.NoError(t, err)
	assert.Equal(t, "2", got)
}

func TestStore_GetMissing(t *testing.T) {
	store := NewSQLiteStore(testutil.NewTestDB(t))

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	store := NewSQLiteStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "k", "v"))
	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_KeysMatchesPrefixLiterally(t *testing.T) {
	store := NewSQLiteStore(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, k := range []string{"studentProgress_tecnicatura", "studentProgress_custom_ab12cd34", "studentProgressXfoo", "selectedCareer"} {
		require.NoError(t, store.Put(ctx, k, "{}"))
	}

	keys, err := store.Keys(ctx, ProgressKeyPrefix)
	require.NoError(t, err)
	assert.Equal(t, []string{"studentProgress_custom_ab12cd34", "studentProgress_tecnicatura"}, keys)
}
