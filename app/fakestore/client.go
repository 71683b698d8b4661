// Package fakestore reads the product catalog from the public Fake Store API
// (https://fakestoreapi.com) and maps its payloads onto the domain models.
package fakestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/catalog-service/app/metrics"
	"github.com/storefront/catalog-service/models"
)

const DefaultBaseURL = "https://fakestoreapi.com"

// Client fetches products from the upstream store API. Every call is a single read with no
// retry; a call either yields complete results or an error.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient returns a Client for baseURL whose requests give up after timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return newClient(&http.Client{Timeout: timeout}, baseURL)
}

func newClient(client *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    client,
		baseURL: baseURL,
	}
}

// product is the upstream wire shape.
type product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      struct {
		Rate  float64 `json:"rate"`
		Count int     `json:"count"`
	} `json:"rating"`
}

func (p product) toModel() models.Product {
	return models.Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Category:    p.Category,
		Rating:      models.Rating{Rate: p.Rating.Rate, Count: p.Rating.Count},
		Image:       p.Image,
		Description: p.Description,
	}
}

// GetAllProducts fetches the full product list.
func (c *Client) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	var payload []product
	if err := c.getJSON(ctx, "products", "/products", &payload); err != nil {
		return nil, err
	}

	products := make([]models.Product, len(payload))
	for i, p := range payload {
		products[i] = p.toModel()
	}
	return products, nil
}

// GetByID fetches a single product. The upstream answers an unknown id with 404 or with an
// empty body, both are reported as models.ErrProductNotFound.
func (c *Client) GetByID(ctx context.Context, id int) (*models.Product, error) {
	var payload *product
	err := c.getJSON(ctx, "product", fmt.Sprintf("/products/%d", id), &payload)
	if errors.Is(err, errNotFound) || errors.Is(err, errEmptyBody) {
		return nil, models.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, models.ErrProductNotFound
	}

	p := payload.toModel()
	return &p, nil
}

var (
	errNotFound  = errors.New("not found")
	errEmptyBody = errors.New("empty response body")
)

func (c *Client) getJSON(ctx context.Context, endpoint, path string, dst any) (err error) {
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		metrics.UpstreamFetches.WithLabelValues(endpoint, outcome).Inc()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return fmt.Errorf("failed to fetch %s: %w", path, errNotFound)
	case res.StatusCode != http.StatusOK:
		return fmt.Errorf("failed to fetch %s: status %d", path, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			err = errEmptyBody
		}
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
