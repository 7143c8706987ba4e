package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusgrid/campusgrid/core"
	"github.com/campusgrid/campusgrid/storage"
)

func TestCatalogRepository_AddAndGet(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	t.Run("explicit id round-trips", func(t *testing.T) {
		doc := &core.RawInstitute{Id: 7, Name: "Alpha Institute"}
		_, err := repo.AddInstitutes(ctx, doc)
		require.NoError(t, err)

		got, err := repo.GetInstitute(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "Alpha Institute", got.Name)
	})

	t.Run("zero id becomes content-based", func(t *testing.T) {
		doc := &core.RawInstitute{Name: "Beta College"}
		stored, err := repo.AddInstitutes(ctx, doc)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.NotZero(t, stored[0].Id)
		assert.Equal(t, core.IDFromContent("beta college"), stored[0].Id)
	})

	t.Run("missing id returns ErrNotFound", func(t *testing.T) {
		_, err := repo.GetInstitute(ctx, 99999)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("invalid document rejected", func(t *testing.T) {
		_, err := repo.AddInstitutes(ctx, &core.RawInstitute{})
		assert.ErrorIs(t, err, core.ErrInvalidInstitute)
	})
}

func TestCatalogRepository_FullScan(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	_, err = repo.AddInstitutes(ctx,
		&core.RawInstitute{Name: "Alpha Institute"},
		&core.RawInstitute{Name: "Beta College"},
		&core.RawInstitute{Name: "Gamma University"},
	)
	require.NoError(t, err)

	docs, err := repo.GetAllInstitutes(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 3)

	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.Name
	}
	assert.ElementsMatch(t, []string{"Alpha Institute", "Beta College", "Gamma University"}, names)

	count, err := repo.CountInstitutes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCatalogRepository_UpsertReplaces(t *testing.T) {
	repo, backend, err := NewMemoryRepository()
	require.NoError(t, err)
	defer func() {
		repo.Close()
		backend.Close()
	}()

	ctx := context.Background()

	_, err = repo.AddInstitutes(ctx, &core.RawInstitute{Id: 1, Name: "Alpha Institute"})
	require.NoError(t, err)
	_, err = repo.AddInstitutes(ctx, &core.RawInstitute{Id: 1, Name: "Alpha Institute of Technology"})
	require.NoError(t, err)

	count, err := repo.CountInstitutes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := repo.GetInstitute(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alpha Institute of Technology", got.Name)
}
