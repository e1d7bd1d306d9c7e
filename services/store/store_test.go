package store_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Ludex/config"
	"Ludex/models"
	"Ludex/services/store"
)

func setupStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := config.ConnectGORM(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, config.MigrateDatabase(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return store.New(db, zerolog.Nop())
}

func TestInsert(t *testing.T) {
	s := setupStore(t)

	genres, err := store.Insert(s, []models.Genre{{Name: "RPG"}, {Name: "FPS"}})
	require.NoError(t, err)
	require.Len(t, genres, 2)
	// Identifiers populated on the way back
	assert.NotZero(t, genres[0].ID)
	assert.NotZero(t, genres[1].ID)

	t.Run("empty input rejected before any transaction", func(t *testing.T) {
		_, err := store.Insert(s, []models.Genre{})
		assert.ErrorIs(t, err, store.ErrNoModels)
	})

	t.Run("constraint violation rolls the batch back", func(t *testing.T) {
		_, err := store.Insert(s, []models.Genre{{Name: "Puzzle"}, {Name: "RPG"}})
		require.Error(t, err)

		// The whole batch is gone, including the non-conflicting row
		rows, err := store.Fetch[models.Genre](s, store.Where().Eq("name", "Puzzle"))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestFetch(t *testing.T) {
	s := setupStore(t)
	_, err := store.Insert(s, []models.Genre{{Name: "RPG"}, {Name: "FPS"}, {Name: "Puzzle"}})
	require.NoError(t, err)

	t.Run("no filter returns all rows", func(t *testing.T) {
		rows, err := store.Fetch[models.Genre](s, nil)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("filter is a conjunction of equalities", func(t *testing.T) {
		rows, err := store.Fetch[models.Genre](s, store.Where().Eq("name", "FPS"))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "FPS", rows[0].Name)
	})

	t.Run("first", func(t *testing.T) {
		row, err := store.FetchFirst[models.Genre](s, store.Where().Eq("name", "RPG"))
		require.NoError(t, err)
		assert.Equal(t, "RPG", row.Name)
	})

	t.Run("miss is reported as ErrNotFound", func(t *testing.T) {
		_, err := store.FetchFirst[models.Genre](s, store.Where().Eq("name", "Sports"))
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestUpdate(t *testing.T) {
	s := setupStore(t)
	publishers, err := store.Insert(s, []models.Publisher{{Name: "Nintendow"}})
	require.NoError(t, err)

	count, err := store.Update[models.Publisher](s,
		store.Where().Eq("id", publishers[0].ID),
		store.Set().To("name", "Nintendo"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	row, err := store.FetchFirst[models.Publisher](s, store.Where().Eq("id", publishers[0].ID))
	require.NoError(t, err)
	assert.Equal(t, "Nintendo", row.Name)

	t.Run("filter and values are mandatory", func(t *testing.T) {
		_, err := store.Update[models.Publisher](s, nil, store.Set().To("name", "x"))
		assert.ErrorIs(t, err, store.ErrEmptyFilter)

		_, err = store.Update[models.Publisher](s, store.Where().Eq("id", 1), nil)
		assert.ErrorIs(t, err, store.ErrEmptyValues)
	})
}

func TestDelete(t *testing.T) {
	s := setupStore(t)
	_, err := store.Insert(s, []models.Platform{{Name: "PC"}, {Name: "PS5"}})
	require.NoError(t, err)

	count, err := store.Delete[models.Platform](s, store.Where().Eq("name", "PC"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	rows, err := store.Fetch[models.Platform](s, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	t.Run("empty filter rejected", func(t *testing.T) {
		_, err := store.Delete[models.Platform](s, store.Filter{})
		assert.ErrorIs(t, err, store.ErrEmptyFilter)
	})

	t.Run("no match deletes nothing", func(t *testing.T) {
		count, err := store.Delete[models.Platform](s, store.Where().Eq("name", "Dreamcast"))
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
