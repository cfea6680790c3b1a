package gallery

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/catalog"
	"github.com/Maximilian-D-Muhr/art-explorer/internal/schema"
)

type itemWire struct {
	Artwork json.RawMessage `json:"artwork"`
	Note    *noteWire       `json:"note"`
	AddedAt *time.Time      `json:"addedAt"`
}

type noteWire struct {
	ArtworkID *float64   `json:"artworkId"`
	Text      *string    `json:"text"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// decodeGallery validates a persisted gallery blob. Any structural problem,
// including duplicate artwork ids, rejects the whole blob; the store then
// resets to an empty collection.
func decodeGallery(blob []byte) ([]Item, error) {
	var wire []itemWire
	if err := json.Unmarshal(blob, &wire); err != nil {
		return nil, schema.Errorf("", "malformed gallery blob: %v", err)
	}

	items := make([]Item, 0, len(wire))
	seen := make(map[int]struct{}, len(wire))
	for i, raw := range wire {
		path := fmt.Sprintf("[%d]", i)

		if raw.Artwork == nil {
			return nil, schema.Errorf(path+".artwork", "required object is missing")
		}
		artwork, err := catalog.DecodeArtwork(raw.Artwork, path+".artwork")
		if err != nil {
			return nil, err
		}
		if _, ok := seen[artwork.ID]; ok {
			return nil, schema.Errorf(path+".artwork.id", "duplicate artwork id %d", artwork.ID)
		}
		seen[artwork.ID] = struct{}{}

		if raw.AddedAt == nil {
			return nil, schema.Errorf(path+".addedAt", "required timestamp is missing")
		}

		item := Item{Artwork: artwork, AddedAt: *raw.AddedAt}
		if raw.Note != nil {
			note, err := raw.Note.normalize(path + ".note")
			if err != nil {
				return nil, err
			}
			item.Note = &note
		}
		items = append(items, item)
	}
	return items, nil
}

func (w noteWire) normalize(path string) (Note, error) {
	if w.ArtworkID == nil {
		return Note{}, schema.Errorf(path+".artworkId", "required integer is missing")
	}
	if *w.ArtworkID != math.Trunc(*w.ArtworkID) {
		return Note{}, schema.Errorf(path+".artworkId", "expected an integer, got %v", *w.ArtworkID)
	}
	if w.Text == nil {
		return Note{}, schema.Errorf(path+".text", "required string is missing")
	}
	if utf8.RuneCountInString(*w.Text) > MaxNoteLength {
		return Note{}, schema.Errorf(path+".text", "note exceeds %d characters", MaxNoteLength)
	}
	if w.CreatedAt == nil {
		return Note{}, schema.Errorf(path+".createdAt", "required timestamp is missing")
	}
	if w.UpdatedAt == nil {
		return Note{}, schema.Errorf(path+".updatedAt", "required timestamp is missing")
	}
	return Note{
		ArtworkID: int(*w.ArtworkID),
		Text:      *w.Text,
		CreatedAt: *w.CreatedAt,
		UpdatedAt: *w.UpdatedAt,
	}, nil
}
