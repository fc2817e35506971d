package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/favstore/wishlist-backend/pkg/config"
)

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(config.CatalogConfig{}); err == nil {
		t.Fatal("expected error for missing base url")
	}
}

func TestListProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Fatalf("expected page=2, got %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"products": [
				{"id": 1, "title": "Mouse", "price": 99.5, "brand": "Acme", "reviewScore": 4.2},
				{"id": 2, "title": "Keyboard", "price": 200, "brand": "Acme"}
			],
			"meta": {"page_number": 2, "page_size": 2}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(config.CatalogConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	page, err := client.ListProducts(context.Background(), 2)
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(page.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(page.Products))
	}
	first := page.Products[0]
	if first.ID != 1 || first.Title != "Mouse" || first.Price != 99.5 {
		t.Fatalf("unexpected product %+v", first)
	}
	if first.ReviewScore == nil || *first.ReviewScore != 4.2 {
		t.Fatalf("review score not decoded: %+v", first.ReviewScore)
	}
	if page.Products[1].ReviewScore != nil {
		t.Fatal("expected nil review score when absent upstream")
	}
	if page.Meta.PageNumber != 2 {
		t.Fatalf("unexpected meta %+v", page.Meta)
	}
}

func TestListProductsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(config.CatalogConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.ListProducts(context.Background(), 1); err == nil {
		t.Fatal("expected error for upstream 502")
	}
}

func TestGetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/42":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"id": 42, "title": "Desk", "price": 1500, "brand": "WoodWorks"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := NewClient(config.CatalogConfig{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	product, err := client.GetProduct(context.Background(), 42)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if product == nil || product.Title != "Desk" {
		t.Fatalf("unexpected product %+v", product)
	}

	missing, err := client.GetProduct(context.Background(), 43)
	if err != nil {
		t.Fatalf("get missing product: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for 404, got %+v", missing)
	}
}
