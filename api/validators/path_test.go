package validators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/favstore/wishlist-backend/pkg/errors"
	"github.com/go-chi/chi/v5"
)

func requestWithParam(key, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	routeCtx := chi.NewRouteContext()
	if value != "" {
		routeCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestParsePathIDValid(t *testing.T) {
	id, err := ParsePathID(requestWithParam("productId", "42"), "productId", "Product not found")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected 42 got %d", id)
	}
}

func TestParsePathIDInvalidValues(t *testing.T) {
	for _, raw := range []string{"", "abc", "12abc", "-5", "0", "1.5"} {
		_, err := ParsePathID(requestWithParam("productId", raw), "productId", "Product not found")
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
			t.Fatalf("value %q: expected not found, got %v", raw, err)
		}
		if typed.Message() != "Product not found" {
			t.Fatalf("value %q: unexpected message %q", raw, typed.Message())
		}
	}
}
