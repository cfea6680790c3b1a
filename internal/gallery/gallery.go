// Package gallery owns the user's curated collection of artworks and its
// durable persistence. The collection is insertion-ordered, unique by artwork
// id, and written back to storage wholesale after every mutation. The
// persisted blob is the second trust boundary of the application and is
// validated on load; unreadable data resets the collection to empty.
package gallery

import (
	"time"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/catalog"
)

// MaxNoteLength is the upper bound on note text, in characters.
const MaxNoteLength = 500

// Note is a free-text annotation on a gallery item. CreatedAt is fixed at
// first creation; UpdatedAt advances on every edit.
type Note struct {
	ArtworkID int       `json:"artworkId"`
	Text      string    `json:"text" validate:"max=500"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Item is one saved artwork. The artwork is an owned snapshot taken at save
// time; later catalog changes do not propagate into the gallery.
type Item struct {
	Artwork catalog.Artwork `json:"artwork"`
	Note    *Note           `json:"note"`
	AddedAt time.Time       `json:"addedAt"`
}
