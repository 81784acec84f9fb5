package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/cumbre/internal/domain"
	"github.com/alexanderramin/cumbre/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%06d", n)
	}
}

func TestCatalogRepo_EmptyCatalog(t *testing.T) {
	repo := NewSQLiteCatalogRepo(testutil.NewTestDB(t))

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestCatalogRepo_SaveListFind(t *testing.T) {
	repo := NewSQLiteCatalogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	entries := []domain.CustomCareer{
		{ID: "aaaa1111", Name: "Uno", Subjects: []domain.Subject{{ID: "custom_s0", Name: "X", Hours: 10, State: domain.StateNo, Year: 1}}},
		{ID: "bbbb2222", Name: "Dos", Subjects: []domain.Subject{}},
	}
	require.NoError(t, repo.Save(ctx, entries))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, got)

	e, err := repo.Find(ctx, "custom_bbbb2222")
	require.NoError(t, err)
	assert.Equal(t, "Dos", e.Name)
	assert.Equal(t, 1, e.Index)
}

func TestCatalogRepo_UpgradesLegacyEntries(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCatalogRepo(database)
	repo.newID = sequentialIDs()
	ctx := context.Background()

	legacy := `[{"name":"Vieja","subjects":[{"id":"custom_s0","name":"A","hours":4,"state":"no","year":1}]},{"name":"Otra","subjects":null}]`
	require.NoError(t, NewSQLiteStore(database).Put(ctx, CustomCareersKey, legacy))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "0", entries[0].ID)
	assert.Equal(t, "custom_0", entries[0].Key())
	assert.Equal(t, "1", entries[1].ID)
	assert.NotNil(t, entries[1].Subjects)

	// Ids were written back, so a second read keeps them.
	again, err := NewSQLiteCatalogRepo(database).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, entries, again)
}

func TestCatalogRepo_UpgradeSkipsTakenPositions(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCatalogRepo(database)
	repo.newID = sequentialIDs()
	ctx := context.Background()

	mixed := `[{"id":"1","name":"Nueva","subjects":[]},{"name":"Vieja","subjects":[]}]`
	require.NoError(t, NewSQLiteStore(database).Put(ctx, CustomCareersKey, mixed))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "1", entries[0].ID)
	assert.Equal(t, "id000001", entries[1].ID)
}

func TestCatalogRepo_FindPositionalFallback(t *testing.T) {
	repo := NewSQLiteCatalogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []domain.CustomCareer{
		{ID: "aaaa1111", Name: "Uno"},
		{ID: "bbbb2222", Name: "Dos"},
	}))

	e, err := repo.Find(ctx, "custom_1")
	require.NoError(t, err)
	assert.Equal(t, "bbbb2222", e.ID)

	_, err = repo.Find(ctx, "custom_7")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Find(ctx, "tecnicatura")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogRepo_IDMatchBeatsPosition(t *testing.T) {
	repo := NewSQLiteCatalogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []domain.CustomCareer{
		{ID: "aaaa1111", Name: "Uno"},
		{ID: "0", Name: "Cero por id"},
	}))

	e, err := repo.Find(ctx, "custom_0")
	require.NoError(t, err)
	assert.Equal(t, "Cero por id", e.Name)
}

func TestCatalogRepo_CorruptCatalog(t *testing.T) {
	database := testutil.NewTestDB(t)
	require.NoError(t, NewSQLiteStore(database).Put(context.Background(), CustomCareersKey, `{"not":"array"}`))

	_, err := NewSQLiteCatalogRepo(database).List(context.Background())
	assert.ErrorIs(t, err, domain.ErrFormat)
}

func TestNewCatalogID(t *testing.T) {
	a, b := NewCatalogID(), NewCatalogID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
