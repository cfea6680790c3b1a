package catalog

import (
	"strconv"
	"strings"
)

// artworkFields is the fixed projection requested from the catalog for every
// artwork query.
var artworkFields = []string{
	"id",
	"title",
	"artist_title",
	"artist_display",
	"date_display",
	"medium_display",
	"dimensions",
	"image_id",
	"thumbnail",
}

var artistFields = []string{"id", "title", "birth_date", "death_date"}

func artworkFieldsParam() string {
	return strings.Join(artworkFields, ",")
}

const (
	// DefaultArtworkPageSize is the page size for artwork searches.
	DefaultArtworkPageSize = 12
	// DefaultArtistPageSize is the page size for artist listings.
	DefaultArtistPageSize = 50

	// agentTypePerson is the catalog's agent type id for individual artists,
	// as opposed to organizations.
	agentTypePerson = 1
)

// SearchQuery is the closed set of ways a search can be expressed. Exactly
// one of FreeTextQuery, AdvancedQuery and ArtistLetterQuery implements it;
// consumers switch over the concrete type.
type SearchQuery interface {
	// Validate rejects criteria that must never reach the catalog, such as a
	// blank free-text query. It performs no I/O.
	Validate() error

	searchQuery()
}

// FreeTextQuery searches the whole catalog with a single text expression.
type FreeTextQuery struct {
	Text string
}

func (q FreeTextQuery) searchQuery() {}

// Validate returns ErrEmptyQuery when the text is blank after trimming.
func (q FreeTextQuery) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return ErrEmptyQuery
	}
	return nil
}

// queryParams builds the GET parameters for a free-text search.
func (q FreeTextQuery) queryParams(page, limit int) map[string]string {
	return map[string]string{
		"q":      strings.TrimSpace(q.Text),
		"page":   strconv.Itoa(page),
		"limit":  strconv.Itoa(limit),
		"fields": artworkFieldsParam(),
	}
}

// AdvancedQuery searches by any combination of title, artist and an inclusive
// creation date range. Empty strings and nil bounds mean "not set"; at least
// one criterion must be present.
type AdvancedQuery struct {
	Title     string
	Artist    string
	DateStart *int
	DateEnd   *int
}

func (q AdvancedQuery) searchQuery() {}

// Validate returns ErrNoCriteria when no field and no date bound is set.
func (q AdvancedQuery) Validate() error {
	if strings.TrimSpace(q.Title) == "" &&
		strings.TrimSpace(q.Artist) == "" &&
		q.DateStart == nil && q.DateEnd == nil {
		return ErrNoCriteria
	}
	return nil
}

// payload builds the search service's query body: a conjunctive bool.must
// list with a match clause per present field and a single range clause for
// the date bounds. Clauses are never OR'd.
func (q AdvancedQuery) payload(page, limit int) map[string]any {
	var must []any

	if title := strings.TrimSpace(q.Title); title != "" {
		must = append(must, map[string]any{
			"match": map[string]any{
				"title": map[string]any{
					"query":    title,
					"operator": "and",
				},
			},
		})
	}

	if artist := strings.TrimSpace(q.Artist); artist != "" {
		must = append(must, map[string]any{
			"match": map[string]any{
				"artist_title": map[string]any{
					"query":    artist,
					"operator": "and",
				},
			},
		})
	}

	if q.DateStart != nil || q.DateEnd != nil {
		bounds := map[string]any{}
		if q.DateStart != nil {
			bounds["gte"] = *q.DateStart
		}
		if q.DateEnd != nil {
			bounds["lte"] = *q.DateEnd
		}
		must = append(must, map[string]any{
			"range": map[string]any{
				"date_start": bounds,
			},
		})
	}

	return map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
		"fields": artworkFields,
		"page":   page,
		"limit":  limit,
	}
}

// ArtistLetterQuery lists artists whose sortable name starts with a letter.
type ArtistLetterQuery struct {
	Letter string
}

func (q ArtistLetterQuery) searchQuery() {}

// Validate returns ErrEmptyQuery when the letter is blank.
func (q ArtistLetterQuery) Validate() error {
	if strings.TrimSpace(q.Letter) == "" {
		return ErrEmptyQuery
	}
	return nil
}

// payload builds the agent search body: a case-insensitive prefix filter on
// the sortable name, restricted to person-type agents, sorted ascending by
// that same name.
func (q ArtistLetterQuery) payload(page, limit int) map[string]any {
	letter := strings.ToLower(strings.TrimSpace(q.Letter))
	return map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": []any{
					map[string]any{
						"prefix": map[string]any{
							"sort_title": letter,
						},
					},
					map[string]any{
						"term": map[string]any{
							"agent_type_id": agentTypePerson,
						},
					},
				},
			},
		},
		"fields": artistFields,
		"page":   page,
		"limit":  limit,
		"sort": map[string]any{
			"sort_title": "asc",
		},
	}
}
