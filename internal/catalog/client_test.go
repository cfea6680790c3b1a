package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://catalog.test/api/v1"

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client := NewClient(ClientConfig{BaseURL: testBaseURL})
	httpmock.ActivateNonDefault(client.http.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

const searchResponseBody = `{
	"data": [
		{"id": 27992, "title": "A Sunday on La Grande Jatte", "artist_title": "Georges Seurat"}
	],
	"pagination": {"total": 1, "limit": 12, "current_page": 1, "total_pages": 1}
}`

func TestClient_Search_FreeText(t *testing.T) {
	client := newTestClient(t)

	var gotQuery string
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/artworks/search",
		func(req *http.Request) (*http.Response, error) {
			gotQuery = req.URL.Query().Get("q")
			return httpmock.NewStringResponse(http.StatusOK, searchResponseBody), nil
		})

	page, err := client.Search(context.Background(), FreeTextQuery{Text: " seurat "}, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 27992, page.Items[0].ID)
	assert.Equal(t, 1, page.Pagination.TotalPages)
	assert.Equal(t, "seurat", gotQuery)
}

func TestClient_Search_Advanced(t *testing.T) {
	client := newTestClient(t)

	var gotBody map[string]any
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/artworks/search",
		func(req *http.Request) (*http.Response, error) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&gotBody))
			return httpmock.NewStringResponse(http.StatusOK, searchResponseBody), nil
		})

	_, err := client.Search(context.Background(), AdvancedQuery{Artist: "Seurat"}, 2)
	require.NoError(t, err)

	must := gotBody["query"].(map[string]any)["bool"].(map[string]any)["must"].([]any)
	require.Len(t, must, 1)
	assert.Equal(t, float64(2), gotBody["page"])
	assert.Equal(t, float64(12), gotBody["limit"])
}

func TestClient_Search_InputRejectedBeforeRequest(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Search(context.Background(), FreeTextQuery{Text: "  "}, 1)
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = client.Search(context.Background(), AdvancedQuery{}, 1)
	assert.ErrorIs(t, err, ErrNoCriteria)

	assert.Zero(t, httpmock.GetTotalCallCount())
}

func TestClient_Search_TransportError(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/artworks/search",
		httpmock.NewStringResponder(http.StatusServiceUnavailable, "upstream down"))

	_, err := client.Search(context.Background(), FreeTextQuery{Text: "seurat"}, 1)
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusServiceUnavailable, transportErr.Status)
}

func TestClient_Search_InvalidResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "not json",
			body: "<html>gateway error</html>",
		},
		{
			name: "artwork without id",
			body: `{
				"data": [{"title": "nameless"}],
				"pagination": {"total": 1, "limit": 12, "current_page": 1, "total_pages": 1}
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t)
			httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/artworks/search",
				httpmock.NewStringResponder(http.StatusOK, tt.body))

			_, err := client.Search(context.Background(), FreeTextQuery{Text: "seurat"}, 1)
			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

func TestClient_GetByID(t *testing.T) {
	t.Run("rejects invalid ids before any request", func(t *testing.T) {
		client := newTestClient(t)

		for _, id := range []int{0, -5} {
			_, err := client.GetByID(context.Background(), id)
			assert.ErrorIs(t, err, ErrInvalidID)
		}
		assert.Zero(t, httpmock.GetTotalCallCount())
	})

	t.Run("fetches a single artwork", func(t *testing.T) {
		client := newTestClient(t)

		httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/artworks/27992",
			httpmock.NewStringResponder(http.StatusOK, `{
				"data": {"id": 27992, "title": "The Bedroom"}
			}`))

		artwork, err := client.GetByID(context.Background(), 27992)
		require.NoError(t, err)
		assert.Equal(t, 27992, artwork.ID)
		assert.Equal(t, "The Bedroom", artwork.Title)
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t)

		httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/artworks/99999999",
			httpmock.NewStringResponder(http.StatusNotFound, `{"status": 404}`))

		_, err := client.GetByID(context.Background(), 99999999)
		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Equal(t, http.StatusNotFound, transportErr.Status)
	})
}

func TestClient_ArtistsByLetter(t *testing.T) {
	t.Run("lists artists", func(t *testing.T) {
		client := newTestClient(t)

		var gotBody map[string]any
		httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/agents/search",
			func(req *http.Request) (*http.Response, error) {
				require.NoError(t, json.NewDecoder(req.Body).Decode(&gotBody))
				return httpmock.NewStringResponse(http.StatusOK, `{
					"data": [{"id": 35809, "title": "Claude Monet", "birth_date": 1840, "death_date": 1926}],
					"pagination": {"total": 1, "limit": 50, "current_page": 1, "total_pages": 1}
				}`), nil
			})

		page, err := client.ArtistsByLetter(context.Background(), "M", 1)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "Claude Monet", page.Items[0].Title)

		must := gotBody["query"].(map[string]any)["bool"].(map[string]any)["must"].([]any)
		require.Len(t, must, 2)
		assert.Equal(t, map[string]any{"sort_title": "m"}, must[0].(map[string]any)["prefix"])
	})

	t.Run("rejects a blank letter", func(t *testing.T) {
		client := newTestClient(t)

		_, err := client.ArtistsByLetter(context.Background(), " ", 1)
		assert.ErrorIs(t, err, ErrEmptyQuery)
		assert.Zero(t, httpmock.GetTotalCallCount())
	})
}
