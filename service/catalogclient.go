package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sapirHafner/Library-management-project/models"
)

// CatalogClient resolves ISBNs against the books service from the loan
// desk. The two services share a database but the desk never reads the
// books collection directly; the catalog owns it.
type CatalogClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// BookByISBN fetches the book carrying an ISBN. A 404 or empty result means
// no such book (ErrBookNotFound); transport and other failures mean the
// service is unreachable (ErrCatalogUnavailable).
func (c *CatalogClient) BookByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	u := c.BaseURL + "/books?isbn=" + url.QueryEscape(isbn)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrBookNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d", ErrCatalogUnavailable, resp.StatusCode)
	}
	var books []models.Book
	if err := json.NewDecoder(resp.Body).Decode(&books); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	if len(books) == 0 {
		return nil, ErrBookNotFound
	}
	return &books[0], nil
}
