package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/favstore/wishlist-backend/api/responses"
	pkgAuth "github.com/favstore/wishlist-backend/pkg/auth"
	"github.com/favstore/wishlist-backend/pkg/config"
	"github.com/favstore/wishlist-backend/pkg/db/models"
	pkgerrors "github.com/favstore/wishlist-backend/pkg/errors"
	"github.com/favstore/wishlist-backend/pkg/logger"
)

// CustomerFinder resolves the token subject to a live customer row. A deleted
// customer makes outstanding tokens unusable even before they expire.
type CustomerFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
}

// Auth validates a bearer token and seeds the request context with the customer.
func Auth(cfg config.JWTConfig, finder CustomerFinder, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			// only the bearer scheme is accepted; a bare token is rejected
			scheme, token, found := strings.Cut(raw, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid authorization scheme"))
				return
			}
			token = strings.TrimSpace(token)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			customer, err := finder.FindByEmail(r.Context(), claims.Email())
			if err != nil {
				if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid token"))
					return
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve customer"))
				return
			}
			if customer == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid token"))
				return
			}

			ctx := WithCustomer(r.Context(), customer)
			if logg != nil {
				ctx = logg.WithCustomerID(ctx, customer.ID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
