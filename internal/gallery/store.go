package gallery

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/catalog"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/schema"
)

// Store is the authoritative in-memory gallery collection. Every mutation
// re-persists the full collection before it commits, so the in-memory state
// and the durable blob never diverge: a failed write leaves both untouched.
// All methods are safe for concurrent use; mutations are single-writer.
type Store struct {
	mu        sync.Mutex
	items     []Item
	storage   Storage
	validator *schema.Validator
	now       func() time.Time
}

// NewStore loads the gallery from storage. An absent blob starts an empty
// collection. A blob that cannot be read or fails validation is discarded and
// cleared so that corruption does not resurrect on the next load; recovery is
// logged but never surfaced as a failure.
func NewStore(storage Storage, validator *schema.Validator) *Store {
	store := &Store{
		storage:   storage,
		validator: validator,
		now:       time.Now,
	}

	blob, found, err := storage.Load()
	if err != nil {
		slog.Warn("failed to read the stored gallery, starting empty", "error", err)
		return store
	}
	if !found {
		return store
	}

	items, err := decodeGallery(blob)
	if err != nil {
		slog.Warn("stored gallery is invalid, resetting", "error", err)
		if clearErr := storage.Clear(); clearErr != nil {
			slog.Warn("failed to clear the invalid gallery", "error", clearErr)
		}
		return store
	}

	store.items = items
	return store
}

// Add appends the artwork as a new item with no note. It returns false
// without touching storage when the artwork is already in the gallery.
func (s *Store) Add(artwork catalog.Artwork) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(artwork.ID) >= 0 {
		return false, nil
	}

	next := make([]Item, len(s.items), len(s.items)+1)
	copy(next, s.items)
	next = append(next, Item{
		Artwork: artwork,
		Note:    nil,
		AddedAt: s.now(),
	})
	if err := s.persist(next); err != nil {
		return false, err
	}
	s.items = next
	return true, nil
}

// Remove deletes the item with the given artwork id. Removing an absent id is
// a no-op.
func (s *Store) Remove(artworkID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(artworkID)
	if index < 0 {
		return nil
	}

	next := make([]Item, 0, len(s.items)-1)
	next = append(next, s.items[:index]...)
	next = append(next, s.items[index+1:]...)
	if err := s.persist(next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// Contains reports whether an artwork is in the gallery.
func (s *Store) Contains(artworkID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(artworkID) >= 0
}

// SetNote creates or replaces the note on an item. It returns false without
// any state change when the text fails validation or no item matches the id.
// Edits preserve the note's creation time; the update time never decreases.
func (s *Store) SetNote(artworkID int, text string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(artworkID)
	if index < 0 {
		return false, nil
	}

	now := s.now()
	note := Note{
		ArtworkID: artworkID,
		Text:      strings.TrimSpace(text),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.validator.Struct(note); err != nil {
		return false, nil
	}
	if existing := s.items[index].Note; existing != nil {
		note.CreatedAt = existing.CreatedAt
		if note.UpdatedAt.Before(existing.UpdatedAt) {
			note.UpdatedAt = existing.UpdatedAt
		}
	}

	next := s.copyItems()
	next[index].Note = &note
	if err := s.persist(next); err != nil {
		return false, err
	}
	s.items = next
	return true, nil
}

// DeleteNote clears the note on an item. Absent ids and absent notes are
// no-ops.
func (s *Store) DeleteNote(artworkID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(artworkID)
	if index < 0 || s.items[index].Note == nil {
		return nil
	}

	next := s.copyItems()
	next[index].Note = nil
	if err := s.persist(next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// Note returns a copy of the note on an item, or nil when the item or its
// note is absent.
func (s *Store) Note(artworkID int) *Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(artworkID)
	if index < 0 || s.items[index].Note == nil {
		return nil
	}
	note := *s.items[index].Note
	return &note
}

// Items returns a copy of the collection in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyItems()
}

// Len returns the number of items in the gallery.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) indexOf(artworkID int) int {
	for i, item := range s.items {
		if item.Artwork.ID == artworkID {
			return i
		}
	}
	return -1
}

func (s *Store) copyItems() []Item {
	next := make([]Item, len(s.items))
	copy(next, s.items)
	for i, item := range next {
		if item.Note != nil {
			note := *item.Note
			next[i].Note = &note
		}
	}
	return next
}

func (s *Store) persist(items []Item) error {
	blob, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal gallery: %w", err)
	}
	if err := s.storage.Save(blob); err != nil {
		return fmt.Errorf("persist gallery: %w", err)
	}
	return nil
}
