package gallery

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/catalog"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/schema"
)

func newTestStorage(t *testing.T) *FileStorage {
	t.Helper()
	return NewFileStorage(filepath.Join(t.TempDir(), "gallery.json"))
}

func newTestStore(t *testing.T, storage Storage) *Store {
	t.Helper()

	validator, err := schema.NewValidator()
	require.NoError(t, err)
	return NewStore(storage, validator)
}

func testArtwork(id int) catalog.Artwork {
	title := "Artwork"
	artist := "An Artist"
	return catalog.Artwork{
		ID:          id,
		Title:       title,
		ArtistTitle: &artist,
	}
}

func TestStore_Add(t *testing.T) {
	store := newTestStore(t, newTestStorage(t))
	artwork := testArtwork(100)

	added, err := store.Add(artwork)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, store.Contains(artwork.ID))
	assert.Equal(t, 1, store.Len())

	added, err = store.Add(artwork)
	require.NoError(t, err)
	assert.False(t, added, "adding the same artwork twice must be rejected")
	assert.Equal(t, 1, store.Len())
}

func TestStore_Remove(t *testing.T) {
	store := newTestStore(t, newTestStorage(t))

	_, err := store.Add(testArtwork(1))
	require.NoError(t, err)
	_, err = store.Add(testArtwork(2))
	require.NoError(t, err)

	require.NoError(t, store.Remove(1))
	assert.False(t, store.Contains(1))
	assert.True(t, store.Contains(2))

	// removing twice is safe
	require.NoError(t, store.Remove(1))
	assert.Equal(t, 1, store.Len())
}

func TestStore_SetNote(t *testing.T) {
	t.Run("rejects text over the length limit and keeps the old note", func(t *testing.T) {
		store := newTestStore(t, newTestStorage(t))
		_, err := store.Add(testArtwork(1))
		require.NoError(t, err)

		ok, err := store.SetNote(1, "a short note")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = store.SetNote(1, strings.Repeat("x", MaxNoteLength+1))
		require.NoError(t, err)
		assert.False(t, ok)

		note := store.Note(1)
		require.NotNil(t, note)
		assert.Equal(t, "a short note", note.Text)
	})

	t.Run("accepts text at exactly the limit", func(t *testing.T) {
		store := newTestStore(t, newTestStorage(t))
		_, err := store.Add(testArtwork(1))
		require.NoError(t, err)

		ok, err := store.SetNote(1, strings.Repeat("x", MaxNoteLength))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects notes on artworks outside the gallery", func(t *testing.T) {
		store := newTestStore(t, newTestStorage(t))

		ok, err := store.SetNote(42, "nobody owns this")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, store.Note(42))
	})

	t.Run("edits preserve creation time and advance update time", func(t *testing.T) {
		store := newTestStore(t, newTestStorage(t))
		_, err := store.Add(testArtwork(1))
		require.NoError(t, err)

		first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		second := first.Add(time.Hour)
		now := first
		store.now = func() time.Time { return now }

		ok, err := store.SetNote(1, "first version")
		require.NoError(t, err)
		require.True(t, ok)

		now = second
		ok, err = store.SetNote(1, "second version")
		require.NoError(t, err)
		require.True(t, ok)

		note := store.Note(1)
		require.NotNil(t, note)
		assert.Equal(t, "second version", note.Text)
		assert.Equal(t, first, note.CreatedAt)
		assert.Equal(t, second, note.UpdatedAt)
	})

	t.Run("update time never decreases even if the clock does", func(t *testing.T) {
		store := newTestStore(t, newTestStorage(t))
		_, err := store.Add(testArtwork(1))
		require.NoError(t, err)

		later := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		earlier := later.Add(-time.Minute)
		now := later
		store.now = func() time.Time { return now }

		_, err = store.SetNote(1, "first")
		require.NoError(t, err)

		now = earlier
		_, err = store.SetNote(1, "second")
		require.NoError(t, err)

		note := store.Note(1)
		require.NotNil(t, note)
		assert.False(t, note.UpdatedAt.Before(later))
	})
}

func TestStore_DeleteNote(t *testing.T) {
	store := newTestStore(t, newTestStorage(t))
	_, err := store.Add(testArtwork(1))
	require.NoError(t, err)

	ok, err := store.SetNote(1, "to be deleted")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.DeleteNote(1))
	assert.Nil(t, store.Note(1))
	assert.True(t, store.Contains(1), "deleting a note keeps the item")

	// deleting an absent note or an absent item is a no-op
	require.NoError(t, store.DeleteNote(1))
	require.NoError(t, store.DeleteNote(999))
}

func TestStore_RoundTrip(t *testing.T) {
	storage := newTestStorage(t)
	store := newTestStore(t, storage)

	for _, id := range []int{3, 1, 2} {
		_, err := store.Add(testArtwork(id))
		require.NoError(t, err)
	}
	ok, err := store.SetNote(1, "a note that must survive")
	require.NoError(t, err)
	require.True(t, ok)

	reloaded := newTestStore(t, storage)
	require.Equal(t, store.Len(), reloaded.Len())

	original := store.Items()
	restored := reloaded.Items()
	for i := range original {
		assert.Equal(t, original[i].Artwork.ID, restored[i].Artwork.ID, "insertion order must survive")
	}

	note := reloaded.Note(1)
	require.NotNil(t, note)
	assert.Equal(t, "a note that must survive", note.Text)
	assert.Nil(t, reloaded.Note(2))
}

func TestStore_CorruptStorageRecovery(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{
			name: "invalid json",
			blob: `{not json at all`,
		},
		{
			name: "wrong shape",
			blob: `{"items": "should be an array"}`,
		},
		{
			name: "item without an artwork id",
			blob: `[{"artwork": {"title": "nameless"}, "note": null, "addedAt": "2026-03-01T10:00:00Z"}]`,
		},
		{
			name: "duplicate artwork ids",
			blob: `[
				{"artwork": {"id": 1}, "note": null, "addedAt": "2026-03-01T10:00:00Z"},
				{"artwork": {"id": 1}, "note": null, "addedAt": "2026-03-01T11:00:00Z"}
			]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "gallery.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.blob), 0o644))
			storage := NewFileStorage(path)

			store := newTestStore(t, storage)
			assert.Equal(t, 0, store.Len())

			// the corrupt blob must not resurrect on the next load
			_, found, err := storage.Load()
			require.NoError(t, err)
			assert.False(t, found, "corrupt storage must be cleared")
		})
	}
}

func TestStore_PersistsEveryMutation(t *testing.T) {
	storage := newTestStorage(t)
	store := newTestStore(t, storage)

	_, err := store.Add(testArtwork(7))
	require.NoError(t, err)

	blob, found, err := storage.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Contains(t, string(blob), `"id":7`)

	require.NoError(t, store.Remove(7))
	blob, found, err = storage.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "[]", string(blob))
}
