package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/raminaphoto/website/pkg/models"
)

const (
	// PlaceholderProjectID is the value shipped in sample configuration. It counts as "not configured".
	PlaceholderProjectID = "REPLACE_ME"

	defaultDataset    = "production"
	defaultAPIVersion = "2025-01-01"
)

type ContentServicer interface {
	IsConfigured() bool
	FetchCollection(ctx context.Context, collection models.Collection, dest any) error
	FetchSettings(ctx context.Context) (*models.SiteSettings, error)
	FetchPortfolio(ctx context.Context) ([]models.PortfolioItem, error)
	FetchPrices(ctx context.Context) ([]models.PricePackage, error)
	FetchCertificates(ctx context.Context) ([]models.Certificate, error)
}

type ContentServiceConfig struct {
	APIVersion string
	/*
	 * BaseURL replaces the public API host when set. The dataset path is
	 * still appended to it.
	 */
	BaseURL    string
	Dataset    string
	HTTPClient *http.Client
	ProjectID  string
}

type ContentService struct {
	apiVersion string
	baseURL    string
	dataset    string
	httpClient *http.Client
	projectID  string
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *queryError     `json:"error"`
}

type queryError struct {
	Description string `json:"description"`
}

func NewContentService(config ContentServiceConfig) ContentService {
	result := ContentService{
		apiVersion: strings.TrimPrefix(strings.TrimSpace(config.APIVersion), "v"),
		baseURL:    strings.TrimRight(strings.TrimSpace(config.BaseURL), "/"),
		dataset:    strings.TrimSpace(config.Dataset),
		httpClient: config.HTTPClient,
		projectID:  strings.TrimSpace(config.ProjectID),
	}

	if result.apiVersion == "" {
		result.apiVersion = defaultAPIVersion
	}

	if result.dataset == "" {
		result.dataset = defaultDataset
	}

	if result.httpClient == nil {
		result.httpClient = &http.Client{}
	}

	return result
}

func (s ContentService) IsConfigured() bool {
	return s.projectID != "" && s.projectID != PlaceholderProjectID
}

/*
FetchCollection runs the fixed query for a collection and decodes the
result payload into dest. A null result leaves dest untouched.
*/
func (s ContentService) FetchCollection(ctx context.Context, collection models.Collection, dest any) error {
	var (
		err      error
		req      *http.Request
		response *http.Response
		raw      []byte
		payload  *queryResponse
	)

	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	query, ok := QueryFor(collection)

	if !ok {
		return fmt.Errorf("error querying content store: unknown collection '%s'", collection)
	}

	endpoint := s.endpoint() + "?query=" + url.QueryEscape(query)

	if req, err = http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil); err != nil {
		return fmt.Errorf("error building request for %s: %w", collection, err)
	}

	req.Header.Set("Accept", "application/json")

	if response, err = s.httpClient.Do(req); err != nil {
		return fmt.Errorf("error requesting %s from content store: %w", collection, err)
	}

	defer response.Body.Close()

	raw, err = io.ReadAll(response.Body)
	payload = decodeQueryResponse(raw)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return &TransportError{
			Status:      response.StatusCode,
			Description: describeFailure(response.StatusCode, raw, payload),
		}
	}

	if err != nil {
		return fmt.Errorf("error reading %s response from content store: %w", collection, err)
	}

	if payload == nil {
		slog.Warn("content store returned an unreadable body", "collection", collection, "status", response.StatusCode)
		return nil
	}

	if payload.Error != nil {
		return &RemoteError{Description: payload.Error.Description}
	}

	if len(payload.Result) == 0 || string(payload.Result) == "null" {
		return nil
	}

	if err = json.Unmarshal(payload.Result, dest); err != nil {
		return fmt.Errorf("error decoding %s result: %w", collection, err)
	}

	return nil
}

func (s ContentService) FetchSettings(ctx context.Context) (*models.SiteSettings, error) {
	var (
		err    error
		result *models.SiteSettings
	)

	if err = s.FetchCollection(ctx, models.CollectionSettings, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (s ContentService) FetchPortfolio(ctx context.Context) ([]models.PortfolioItem, error) {
	var (
		err    error
		result []*models.PortfolioItem
	)

	if err = s.FetchCollection(ctx, models.CollectionPortfolio, &result); err != nil {
		return nil, err
	}

	return compact(result), nil
}

func (s ContentService) FetchPrices(ctx context.Context) ([]models.PricePackage, error) {
	var (
		err    error
		result []*models.PricePackage
	)

	if err = s.FetchCollection(ctx, models.CollectionPrices, &result); err != nil {
		return nil, err
	}

	return compact(result), nil
}

func (s ContentService) FetchCertificates(ctx context.Context) ([]models.Certificate, error) {
	var (
		err    error
		result []*models.Certificate
	)

	if err = s.FetchCollection(ctx, models.CollectionCertificates, &result); err != nil {
		return nil, err
	}

	return compact(result), nil
}

/*
compact drops the null entries the store may return inside a list. A nil
list stays nil.
*/
func compact[T any](items []*T) []T {
	if items == nil {
		return nil
	}

	result := make([]T, 0, len(items))

	for _, item := range items {
		if item != nil {
			result = append(result, *item)
		}
	}

	return result
}

func (s ContentService) endpoint() string {
	base := s.baseURL

	if base == "" {
		base = fmt.Sprintf("https://%s.apicdn.sanity.io", s.projectID)
	}

	return fmt.Sprintf("%s/v%s/data/query/%s", base, s.apiVersion, url.PathEscape(s.dataset))
}

func decodeQueryResponse(raw []byte) *queryResponse {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}

	result := &queryResponse{}

	if err := json.Unmarshal(raw, result); err != nil {
		return nil
	}

	return result
}

func describeFailure(status int, raw []byte, payload *queryResponse) string {
	if payload != nil && payload.Error != nil && payload.Error.Description != "" {
		return payload.Error.Description
	}

	if body := strings.TrimSpace(string(raw)); body != "" {
		return body
	}

	return fmt.Sprintf("HTTP %d", status)
}
