package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// ClientConfig configures the catalog client.
type ClientConfig struct {
	BaseURL         string
	Timeout         time.Duration
	ArtworkPageSize int
	ArtistPageSize  int
}

// Client talks to the remote catalog service. Every operation is a single
// request/response round trip: no retry, no caching, no shared state beyond
// the underlying connection pool. Failures are terminal for that call.
type Client struct {
	http            *resty.Client
	artworkPageSize int
	artistPageSize  int
}

// NewClient creates a catalog client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}

	artworkPageSize := cfg.ArtworkPageSize
	if artworkPageSize <= 0 {
		artworkPageSize = DefaultArtworkPageSize
	}
	artistPageSize := cfg.ArtistPageSize
	if artistPageSize <= 0 {
		artistPageSize = DefaultArtistPageSize
	}

	return &Client{
		http:            httpClient,
		artworkPageSize: artworkPageSize,
		artistPageSize:  artistPageSize,
	}
}

// Search runs a free-text or advanced artwork search and returns one result
// page. The page argument is 1-indexed.
func (c *Client) Search(ctx context.Context, query SearchQuery, page int) (*SearchResultPage, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	var res *resty.Response
	var err error
	switch q := query.(type) {
	case FreeTextQuery:
		res, err = c.http.R().
			SetContext(ctx).
			SetQueryParams(q.queryParams(page, c.artworkPageSize)).
			Get("/artworks/search")
	case AdvancedQuery:
		res, err = c.http.R().
			SetContext(ctx).
			SetBody(q.payload(page, c.artworkPageSize)).
			Post("/artworks/search")
	default:
		return nil, fmt.Errorf("query type %T is not an artwork search", query)
	}
	if err != nil {
		return nil, fmt.Errorf("search artworks: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &TransportError{Status: res.StatusCode()}
	}

	result, err := decodeSearchResponse(res.Body())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return result, nil
}

// GetByID fetches a single artwork. Non-positive ids are rejected with
// ErrInvalidID before any request is made.
func (c *Client) GetByID(ctx context.Context, id int) (Artwork, error) {
	if id < 1 {
		return Artwork{}, ErrInvalidID
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("fields", artworkFieldsParam()).
		Get(fmt.Sprintf("/artworks/%d", id))
	if err != nil {
		return Artwork{}, fmt.Errorf("get artwork %d: %w", id, err)
	}
	if res.StatusCode() != http.StatusOK {
		return Artwork{}, &TransportError{Status: res.StatusCode()}
	}

	artwork, err := decodeArtworkResponse(res.Body())
	if err != nil {
		return Artwork{}, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return artwork, nil
}

// ArtistsByLetter lists person-type artists whose sortable name starts with
// the letter, ordered by that name.
func (c *Client) ArtistsByLetter(ctx context.Context, letter string, page int) (*ArtistPage, error) {
	query := ArtistLetterQuery{Letter: letter}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetBody(query.payload(page, c.artistPageSize)).
		Post("/agents/search")
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, &TransportError{Status: res.StatusCode()}
	}

	result, err := decodeArtistResponse(res.Body())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	return result, nil
}
