// Package catalog models the remote artwork catalog: the entities it returns,
// the query payloads it accepts, and the client that talks to it. All data
// from the catalog crosses a trust boundary and is decoded through the
// validating constructors in decode.go before anything else sees it.
package catalog

import "fmt"

// Artwork is a single catalog item. Instances are built only by decoding a
// validated catalog response and are never mutated afterwards. Nullable
// catalog fields are pointers; nil means the catalog carried null or omitted
// the field, which this package treats as the same thing.
type Artwork struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	ArtistTitle   *string    `json:"artist_title"`
	ArtistDisplay *string    `json:"artist_display"`
	DateDisplay   *string    `json:"date_display"`
	MediumDisplay *string    `json:"medium_display"`
	Dimensions    *string    `json:"dimensions"`
	ImageID       *string    `json:"image_id"`
	Thumbnail     *Thumbnail `json:"thumbnail"`
}

// Thumbnail carries the catalog's low-resolution image metadata.
type Thumbnail struct {
	AltText *string `json:"alt_text"`
	Width   *int    `json:"width"`
	Height  *int    `json:"height"`
}

// ArtistInfo is a single entry of an artist listing.
type ArtistInfo struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	BirthDate *int   `json:"birth_date"`
	DeathDate *int   `json:"death_date"`
}

// Pagination describes the position of a result page within the full result
// set.
type Pagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// SearchResultPage is one page of artwork search results.
type SearchResultPage struct {
	Items      []Artwork
	Pagination Pagination
}

// ArtistPage is one page of an artist listing.
type ArtistPage struct {
	Items      []ArtistInfo
	Pagination Pagination
}

const (
	iiifBaseURL      = "https://www.artic.edu/iiif/2"
	placeholderImage = "/placeholder-art.svg"

	// DefaultImageSize is the IIIF width used when the caller does not care.
	DefaultImageSize = 843
)

// ImageURL returns the IIIF URL for an image reference, or a placeholder when
// the artwork has no image.
func ImageURL(imageID *string, size int) string {
	if imageID == nil || *imageID == "" {
		return placeholderImage
	}
	return fmt.Sprintf("%s/%s/full/%d,/0/default.jpg", iiifBaseURL, *imageID, size)
}
