package middleware

import (
	"context"

	"github.com/favstore/wishlist-backend/pkg/db/models"
)

type contextKey string

const (
	ctxCustomer contextKey = "customer"
)

// CustomerFromContext returns the authenticated customer or nil.
func CustomerFromContext(ctx context.Context) *models.Customer {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxCustomer).(*models.Customer); ok {
		return v
	}
	return nil
}

// WithCustomer injects the authenticated customer into the context.
func WithCustomer(ctx context.Context, customer *models.Customer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxCustomer, customer)
}
