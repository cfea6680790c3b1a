package catalog

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/schema"
)

// Wire types mirror the untrusted JSON shape of the catalog. Every field is a
// pointer so that absent and null are indistinguishable; normalization fills
// the canonical defaults before the rest of the application sees the value.

type artworkWire struct {
	ID            *float64       `json:"id"`
	Title         *string        `json:"title"`
	ArtistTitle   *string        `json:"artist_title"`
	ArtistDisplay *string        `json:"artist_display"`
	DateDisplay   *string        `json:"date_display"`
	MediumDisplay *string        `json:"medium_display"`
	Dimensions    *string        `json:"dimensions"`
	ImageID       *string        `json:"image_id"`
	Thumbnail     *thumbnailWire `json:"thumbnail"`
}

type thumbnailWire struct {
	AltText *string  `json:"alt_text"`
	Width   *float64 `json:"width"`
	Height  *float64 `json:"height"`
}

type paginationWire struct {
	Total       *float64 `json:"total"`
	Limit       *float64 `json:"limit"`
	CurrentPage *float64 `json:"current_page"`
	TotalPages  *float64 `json:"total_pages"`
}

type artistWire struct {
	ID        *float64 `json:"id"`
	Title     *string  `json:"title"`
	BirthDate *float64 `json:"birth_date"`
	DeathDate *float64 `json:"death_date"`
}

type searchResponseWire struct {
	Data       []artworkWire   `json:"data"`
	Pagination *paginationWire `json:"pagination"`
}

type artworkResponseWire struct {
	Data *artworkWire `json:"data"`
}

type artistResponseWire struct {
	Data       []artistWire    `json:"data"`
	Pagination *paginationWire `json:"pagination"`
}

// DefaultTitle is filled in when the catalog omits an artwork title.
const DefaultTitle = "Untitled"

// DefaultArtistTitle is filled in when an agent record carries no name.
const DefaultArtistTitle = "Unknown Artist"

func requireInt(value *float64, path string) (int, error) {
	if value == nil {
		return 0, schema.Errorf(path, "required integer is missing")
	}
	if *value != math.Trunc(*value) {
		return 0, schema.Errorf(path, "expected an integer, got %v", *value)
	}
	return int(*value), nil
}

func optionalInt(value *float64, path string) (*int, error) {
	if value == nil {
		return nil, nil
	}
	if *value != math.Trunc(*value) {
		return nil, schema.Errorf(path, "expected an integer, got %v", *value)
	}
	n := int(*value)
	return &n, nil
}

func (w artworkWire) normalize(path string) (Artwork, error) {
	id, err := requireInt(w.ID, path+".id")
	if err != nil {
		return Artwork{}, err
	}

	artwork := Artwork{
		ID:            id,
		Title:         DefaultTitle,
		ArtistTitle:   w.ArtistTitle,
		ArtistDisplay: w.ArtistDisplay,
		DateDisplay:   w.DateDisplay,
		MediumDisplay: w.MediumDisplay,
		Dimensions:    w.Dimensions,
		ImageID:       w.ImageID,
	}
	if w.Title != nil {
		artwork.Title = *w.Title
	}
	if w.Thumbnail != nil {
		width, err := optionalInt(w.Thumbnail.Width, path+".thumbnail.width")
		if err != nil {
			return Artwork{}, err
		}
		height, err := optionalInt(w.Thumbnail.Height, path+".thumbnail.height")
		if err != nil {
			return Artwork{}, err
		}
		artwork.Thumbnail = &Thumbnail{
			AltText: w.Thumbnail.AltText,
			Width:   width,
			Height:  height,
		}
	}
	return artwork, nil
}

func (w paginationWire) normalize(path string) (Pagination, error) {
	total, err := requireInt(w.Total, path+".total")
	if err != nil {
		return Pagination{}, err
	}
	limit, err := requireInt(w.Limit, path+".limit")
	if err != nil {
		return Pagination{}, err
	}
	currentPage, err := requireInt(w.CurrentPage, path+".current_page")
	if err != nil {
		return Pagination{}, err
	}
	totalPages, err := requireInt(w.TotalPages, path+".total_pages")
	if err != nil {
		return Pagination{}, err
	}
	return Pagination{
		Total:       total,
		Limit:       limit,
		CurrentPage: currentPage,
		TotalPages:  totalPages,
	}, nil
}

func (w artistWire) normalize(path string) (ArtistInfo, error) {
	id, err := requireInt(w.ID, path+".id")
	if err != nil {
		return ArtistInfo{}, err
	}
	birth, err := optionalInt(w.BirthDate, path+".birth_date")
	if err != nil {
		return ArtistInfo{}, err
	}
	death, err := optionalInt(w.DeathDate, path+".death_date")
	if err != nil {
		return ArtistInfo{}, err
	}

	artist := ArtistInfo{
		ID:        id,
		Title:     DefaultArtistTitle,
		BirthDate: birth,
		DeathDate: death,
	}
	if w.Title != nil {
		artist.Title = *w.Title
	}
	return artist, nil
}

// DecodeArtwork validates a single raw artwork value, such as one embedded in
// the persisted gallery. The path prefixes any validation error.
func DecodeArtwork(data []byte, path string) (Artwork, error) {
	var wire artworkWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return Artwork{}, schema.Errorf(path, "malformed artwork: %v", err)
	}
	return wire.normalize(path)
}

func decodeSearchResponse(body []byte) (*SearchResultPage, error) {
	var wire searchResponseWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, schema.Errorf("", "malformed response body: %v", err)
	}
	if wire.Pagination == nil {
		return nil, schema.Errorf("pagination", "required object is missing")
	}

	pagination, err := wire.Pagination.normalize("pagination")
	if err != nil {
		return nil, err
	}
	items := make([]Artwork, 0, len(wire.Data))
	for i, raw := range wire.Data {
		artwork, err := raw.normalize(fmt.Sprintf("data[%d]", i))
		if err != nil {
			return nil, err
		}
		items = append(items, artwork)
	}

	if len(items) > pagination.Limit {
		return nil, schema.Errorf("data", "page holds %d items, limit is %d", len(items), pagination.Limit)
	}
	if pagination.TotalPages > 0 &&
		(pagination.CurrentPage < 1 || pagination.CurrentPage > pagination.TotalPages) {
		return nil, schema.Errorf("pagination.current_page", "page %d is outside [1, %d]", pagination.CurrentPage, pagination.TotalPages)
	}

	return &SearchResultPage{Items: items, Pagination: pagination}, nil
}

func decodeArtworkResponse(body []byte) (Artwork, error) {
	var wire artworkResponseWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return Artwork{}, schema.Errorf("", "malformed response body: %v", err)
	}
	if wire.Data == nil {
		return Artwork{}, schema.Errorf("data", "required object is missing")
	}
	return wire.Data.normalize("data")
}

func decodeArtistResponse(body []byte) (*ArtistPage, error) {
	var wire artistResponseWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, schema.Errorf("", "malformed response body: %v", err)
	}
	if wire.Pagination == nil {
		return nil, schema.Errorf("pagination", "required object is missing")
	}

	pagination, err := wire.Pagination.normalize("pagination")
	if err != nil {
		return nil, err
	}
	items := make([]ArtistInfo, 0, len(wire.Data))
	for i, raw := range wire.Data {
		artist, err := raw.normalize(fmt.Sprintf("data[%d]", i))
		if err != nil {
			return nil, err
		}
		items = append(items, artist)
	}
	return &ArtistPage{Items: items, Pagination: pagination}, nil
}
