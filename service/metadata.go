package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultGoogleBooksURL = "https://www.googleapis.com/books/v1/volumes"

// MetadataClient fetches book metadata from the Google Books API. The short
// client timeout keeps a slow upstream from blocking book creation.
type MetadataClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewMetadataClient(baseURL string) *MetadataClient {
	if baseURL == "" {
		baseURL = defaultGoogleBooksURL
	}
	return &MetadataClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// volumesResponse is the response from GET /volumes?q=isbn:...
type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo struct {
			Authors       []string `json:"authors"`
			Publisher     string   `json:"publisher"`
			PublishedDate string   `json:"publishedDate"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// BookMetadata is the enrichment snapshot for one ISBN. Fields the upstream
// does not know are set to "missing".
type BookMetadata struct {
	Authors       string
	Publisher     string
	PublishedDate string
}

// FetchByISBN queries the metadata service for an ISBN. A transport or
// non-200 failure is ErrMetadataUnavailable; an answer with no volumes is
// ErrNoMetadataMatch.
func (c *MetadataClient) FetchByISBN(ctx context.Context, isbn string) (*BookMetadata, error) {
	q := url.Values{}
	q.Set("q", "isbn:"+strings.TrimSpace(isbn))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrMetadataUnavailable, resp.StatusCode)
	}
	var data volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
	}
	if len(data.Items) == 0 {
		return nil, ErrNoMetadataMatch
	}
	vi := data.Items[0].VolumeInfo
	return &BookMetadata{
		Authors:       joinAuthors(vi.Authors),
		Publisher:     orMissing(vi.Publisher),
		PublishedDate: orMissing(vi.PublishedDate),
	}, nil
}

// joinAuthors flattens the author list into the stored string: "missing"
// when empty, the single name when one, names joined with " and " otherwise.
func joinAuthors(authors []string) string {
	if len(authors) == 0 {
		return "missing"
	}
	return strings.Join(authors, " and ")
}

func orMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return "missing"
	}
	return s
}
