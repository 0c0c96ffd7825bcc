package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/raminaphoto/website/pkg/models"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Path  string
	Query string
}

func newContentServer(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var (
		mu       sync.Mutex
		requests []recordedRequest
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, recordedRequest{Path: r.URL.Path, Query: r.URL.Query().Get("query")})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))

	t.Cleanup(server.Close)
	return server, &requests
}

func newTestService(baseURL string) ContentService {
	return NewContentService(ContentServiceConfig{
		BaseURL:    baseURL,
		Dataset:    "production",
		APIVersion: "2025-01-01",
		ProjectID:  "abc123",
	})
}

func TestIsConfigured(t *testing.T) {
	t.Parallel()

	require.False(t, NewContentService(ContentServiceConfig{}).IsConfigured())
	require.False(t, NewContentService(ContentServiceConfig{ProjectID: PlaceholderProjectID}).IsConfigured())
	require.False(t, NewContentService(ContentServiceConfig{ProjectID: "   "}).IsConfigured())
	require.True(t, NewContentService(ContentServiceConfig{ProjectID: "abc123"}).IsConfigured())
}

func TestFetchWithoutProjectFailsWithoutRequest(t *testing.T) {
	t.Parallel()

	server, requests := newContentServer(t, http.StatusOK, `{"result":[]}`)

	service := NewContentService(ContentServiceConfig{BaseURL: server.URL, ProjectID: PlaceholderProjectID})
	_, err := service.FetchPortfolio(context.Background())

	require.ErrorIs(t, err, ErrNotConfigured)
	require.Empty(t, *requests)
}

func TestFetchPortfolioSendsQueryAndDecodesResult(t *testing.T) {
	t.Parallel()

	server, requests := newContentServer(t, http.StatusOK, `{"result":[
		{"order":1,"title":"Sea","coverUrl":"https://img.test/sea.jpg","galleryUrls":["https://img.test/1.jpg"],"videoUrl":null},
		{"order":2,"title":null,"coverUrl":null,"galleryUrls":null}
	]}`)

	items, err := newTestService(server.URL).FetchPortfolio(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Sea", models.StringOr(items[0].Title, ""))
	require.Nil(t, items[1].Title)
	require.Empty(t, items[1].EffectiveGallery())

	query, _ := QueryFor(models.CollectionPortfolio)

	require.Len(t, *requests, 1)
	require.Equal(t, "/v2025-01-01/data/query/production", (*requests)[0].Path)
	require.Equal(t, query, (*requests)[0].Query)
}

func TestFetchSettingsNullResultIsNil(t *testing.T) {
	t.Parallel()

	server, _ := newContentServer(t, http.StatusOK, `{"result":null}`)

	settings, err := newTestService(server.URL).FetchSettings(context.Background())
	require.NoError(t, err)
	require.Nil(t, settings)
}

func TestFetchPricesEmptyResult(t *testing.T) {
	t.Parallel()

	server, _ := newContentServer(t, http.StatusOK, `{"result":[]}`)

	prices, err := newTestService(server.URL).FetchPrices(context.Background())
	require.NoError(t, err)
	require.Empty(t, prices)
}

func TestTransportErrorDescriptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{
			name:     "payload description",
			status:   http.StatusForbidden,
			body:     `{"error":{"description":"CORS origin not allowed"}}`,
			expected: "content store error: 403. CORS origin not allowed",
		},
		{
			name:     "raw body",
			status:   http.StatusBadGateway,
			body:     "upstream down",
			expected: "content store error: 502. upstream down",
		},
		{
			name:     "empty body",
			status:   http.StatusInternalServerError,
			body:     "",
			expected: "content store error: 500. HTTP 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server, _ := newContentServer(t, tt.status, tt.body)

			_, err := newTestService(server.URL).FetchCertificates(context.Background())
			require.ErrorIs(t, err, ErrTransport)

			var transportErr *TransportError
			require.True(t, errors.As(err, &transportErr))
			require.Equal(t, tt.status, transportErr.Status)
			require.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestRemoteErrorInSuccessfulResponse(t *testing.T) {
	t.Parallel()

	server, _ := newContentServer(t, http.StatusOK, `{"error":{"description":"query parse error"}}`)

	_, err := newTestService(server.URL).FetchPortfolio(context.Background())
	require.ErrorIs(t, err, ErrRemote)
	require.Contains(t, err.Error(), "query parse error")
}

func TestUnreadableSuccessBodyIsTreatedAsEmpty(t *testing.T) {
	t.Parallel()

	server, _ := newContentServer(t, http.StatusOK, "<html>not json</html>")

	items, err := newTestService(server.URL).FetchPortfolio(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestResultShapeMismatchIsAnError(t *testing.T) {
	t.Parallel()

	server, _ := newContentServer(t, http.StatusOK, `{"result":{"title":"not a list"}}`)

	_, err := newTestService(server.URL).FetchPrices(context.Background())
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "error decoding prices result"))
}

func TestFetchHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	server, _ := newContentServer(t, http.StatusOK, `{"result":[]}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService(server.URL).FetchPortfolio(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestUnknownCollection(t *testing.T) {
	t.Parallel()

	var dest any

	err := newTestService("http://127.0.0.1:1").FetchCollection(context.Background(), models.Collection("albums"), &dest)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown collection")
}

func TestEndpointUsesPublicHostByDefault(t *testing.T) {
	t.Parallel()

	service := NewContentService(ContentServiceConfig{ProjectID: "abc123"})
	require.Equal(t, "https://abc123.apicdn.sanity.io/v2025-01-01/data/query/production", service.endpoint())
}

func TestNullEntriesInListsAreDropped(t *testing.T) {
	t.Parallel()

	server, _ := newContentServer(t, http.StatusOK, `{"result":[null,{"title":"A","coverUrl":"x.jpg"},null]}`)
	service := newTestService(server.URL)

	items, err := service.FetchPortfolio(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "A", models.StringOr(items[0].Title, ""))

	prices, err := service.FetchPrices(context.Background())
	require.NoError(t, err)
	require.Len(t, prices, 1)

	certificates, err := service.FetchCertificates(context.Background())
	require.NoError(t, err)
	require.Len(t, certificates, 1)
}

func TestTruncatedSuccessBodyIsAnError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", "4096")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"result":[`))
	}))
	t.Cleanup(server.Close)

	_, err := newTestService(server.URL).FetchPortfolio(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "error reading portfolio response")
}
