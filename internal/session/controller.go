// Package session tracks the state of an ongoing catalog search: the active
// query mode, the current page, loading and error state, and the last result
// page. It is the component the presentation layer talks to.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/Maximilian-D-Muhr/art-explorer/internal/catalog"
)

// Mode identifies how the active search is expressed.
type Mode int

const (
	ModeNone Mode = iota
	ModeFreeText
	ModeAdvanced
	ModeArtistLetter
)

func (m Mode) String() string {
	switch m {
	case ModeFreeText:
		return "free-text"
	case ModeAdvanced:
		return "advanced"
	case ModeArtistLetter:
		return "artist-letter"
	default:
		return "none"
	}
}

// ErrPageOutOfRange rejects a page change outside [1, totalPages]. The
// controller rejects rather than clamps, so the active page never moves on an
// invalid request.
var ErrPageOutOfRange = errors.New("page is out of range")

// ErrNoActiveSearch rejects a page change before any search has been issued.
var ErrNoActiveSearch = errors.New("no active search to paginate")

// Catalog is the slice of the catalog client the controller needs.
type Catalog interface {
	Search(ctx context.Context, query catalog.SearchQuery, page int) (*catalog.SearchResultPage, error)
	ArtistsByLetter(ctx context.Context, letter string, page int) (*catalog.ArtistPage, error)
}

// State is a consumer-facing snapshot of the session. Artworks and Artists
// are never both set; whichever matches the mode holds the results, and
// Error is only non-empty when both are nil.
type State struct {
	Mode        Mode
	Criteria    catalog.SearchQuery
	CurrentPage int
	Loading     bool
	Error       string
	Artworks    *catalog.SearchResultPage
	Artists     *catalog.ArtistPage
}

// Controller orchestrates searches against the catalog. Each issued request
// carries a monotonically increasing sequence number and a completion is
// applied only while its number is still the latest, so when requests race
// the last-started one wins and superseded completions are dropped.
type Controller struct {
	mu       sync.Mutex
	catalog  Catalog
	mode     Mode
	criteria catalog.SearchQuery
	page     int
	loading  bool
	seq      uint64
	errMsg   string
	artworks *catalog.SearchResultPage
	artists  *catalog.ArtistPage
}

// NewController creates a Controller over a catalog client.
func NewController(client Catalog) *Controller {
	return &Controller{catalog: client}
}

// SearchFreeText issues a free-text search for page 1. Invalid input is
// rejected synchronously before any state change or I/O.
func (c *Controller) SearchFreeText(ctx context.Context, text string) error {
	return c.search(ctx, ModeFreeText, catalog.FreeTextQuery{Text: text}, 1)
}

// SearchAdvanced issues an advanced search for page 1. Invalid input is
// rejected synchronously before any state change or I/O.
func (c *Controller) SearchAdvanced(ctx context.Context, query catalog.AdvancedQuery) error {
	return c.search(ctx, ModeAdvanced, query, 1)
}

// BrowseArtists issues an artist listing for page 1.
func (c *Controller) BrowseArtists(ctx context.Context, letter string) error {
	return c.search(ctx, ModeArtistLetter, catalog.ArtistLetterQuery{Letter: letter}, 1)
}

// ChangePage re-issues the last criteria for another page. The criteria are
// not altered; pages outside [1, totalPages] of the last known result are
// rejected with ErrPageOutOfRange.
func (c *Controller) ChangePage(ctx context.Context, page int) error {
	c.mu.Lock()
	if c.mode == ModeNone {
		c.mu.Unlock()
		return ErrNoActiveSearch
	}
	mode, criteria := c.mode, c.criteria
	totalPages := 0
	if c.artworks != nil {
		totalPages = c.artworks.Pagination.TotalPages
	} else if c.artists != nil {
		totalPages = c.artists.Pagination.TotalPages
	}
	c.mu.Unlock()

	if page < 1 || (totalPages > 0 && page > totalPages) {
		return ErrPageOutOfRange
	}
	return c.search(ctx, mode, criteria, page)
}

// SetMode switches the active query mode and discards the previous mode's
// results and error so nothing stale is displayed. Any in-flight request is
// superseded.
func (c *Controller) SetMode(mode Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.mode = mode
	c.criteria = nil
	c.page = 1
	c.loading = false
	c.errMsg = ""
	c.artworks = nil
	c.artists = nil
}

// SelectArtist moves the session into advanced mode with the artist field
// pre-filled, without executing the query. The consumer decides when to
// submit.
func (c *Controller) SelectArtist(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	c.mode = ModeAdvanced
	c.criteria = catalog.AdvancedQuery{Artist: name}
	c.page = 1
	c.loading = false
	c.errMsg = ""
	c.artworks = nil
	c.artists = nil
}

// State returns a snapshot of the session.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Mode:        c.mode,
		Criteria:    c.criteria,
		CurrentPage: c.page,
		Loading:     c.loading,
		Error:       c.errMsg,
		Artworks:    c.artworks,
		Artists:     c.artists,
	}
}

func (c *Controller) search(ctx context.Context, mode Mode, criteria catalog.SearchQuery, page int) error {
	if err := criteria.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mode = mode
	c.criteria = criteria
	c.page = page
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	var artworks *catalog.SearchResultPage
	var artists *catalog.ArtistPage
	var err error
	switch q := criteria.(type) {
	case catalog.ArtistLetterQuery:
		artists, err = c.catalog.ArtistsByLetter(ctx, q.Letter, page)
	default:
		artworks, err = c.catalog.Search(ctx, criteria, page)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seq != seq {
		// A newer request was started while this one was in flight; its
		// completion owns the session state now.
		return nil
	}

	c.loading = false
	if err != nil {
		c.errMsg = errorMessage(err)
		c.artworks = nil
		c.artists = nil
		return nil
	}
	c.errMsg = ""
	c.artworks = artworks
	c.artists = artists
	return nil
}
