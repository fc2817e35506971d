package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/favstore/wishlist-backend/pkg/config"
)

// Client talks to the upstream product catalog HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// CatalogProduct is the upstream representation of a catalog listing.
type CatalogProduct struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Image       *string  `json:"image,omitempty"`
	Brand       string   `json:"brand"`
	ReviewScore *float64 `json:"reviewScore,omitempty"`
}

// ProductPage is one page of the upstream listing.
type ProductPage struct {
	Products []CatalogProduct `json:"products"`
	Meta     PageMeta         `json:"meta"`
}

// PageMeta carries upstream pagination info.
type PageMeta struct {
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
}

// NewClient builds a catalog client from configuration.
func NewClient(cfg config.CatalogConfig) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("catalog base url is required")
	}

	timeout := cfg.FetchTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// ListProducts fetches one page of the upstream catalog. Pages are 1-based.
func (c *Client) ListProducts(ctx context.Context, page int) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}

	endpoint := fmt.Sprintf("%s/products?%s", c.baseURL, url.Values{"page": {strconv.Itoa(page)}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog page %d: %w", page, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog page %d: unexpected status %d", page, resp.StatusCode)
	}

	var result ProductPage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode catalog page %d: %w", page, err)
	}
	return &result, nil
}

// GetProduct fetches a single catalog listing. A 404 returns (nil, nil).
func (c *Client) GetProduct(ctx context.Context, id int64) (*CatalogProduct, error) {
	endpoint := fmt.Sprintf("%s/products/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog product %d: %w", id, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog product %d: unexpected status %d", id, resp.StatusCode)
	}

	var result CatalogProduct
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode catalog product %d: %w", id, err)
	}
	return &result, nil
}

func drainAndClose(body io.ReadCloser) {
	io.Copy(io.Discard, body)
	body.Close()
}
