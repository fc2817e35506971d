package controllers

import (
	"net/http"

	"github.com/favstore/wishlist-backend/api/middleware"
	"github.com/favstore/wishlist-backend/api/responses"
	"github.com/favstore/wishlist-backend/api/validators"
	"github.com/favstore/wishlist-backend/internal/customers"
	pkgerrors "github.com/favstore/wishlist-backend/pkg/errors"
	"github.com/favstore/wishlist-backend/pkg/logger"
)

// CustomerRegister creates a new customer account.
func CustomerRegister(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		var body customers.CreateCustomerRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		body.Name = validators.SanitizeString(body.Name, 255)

		result, err := svc.Register(ctx, body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// CustomerMe returns the authenticated customer's profile.
func CustomerMe(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		customer := middleware.CustomerFromContext(ctx)
		if customer == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		responses.WriteSuccess(w, customers.FromModel(customer))
	}
}

// CustomerUpdateMe applies profile changes to the authenticated customer.
func CustomerUpdateMe(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		customer := middleware.CustomerFromContext(ctx)
		if customer == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var body customers.UpdateCustomerRequest
		if err := validators.DecodeJSON(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		// empty fields are skipped rather than rejected
		body.NormalizeEmpty()
		if err := validators.ValidateStruct(&body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if body.Name != nil {
			sanitized := validators.SanitizeString(*body.Name, 255)
			body.Name = &sanitized
		}

		result, err := svc.Update(ctx, customer.ID, body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// CustomerDeleteMe removes the authenticated customer and their wishlist.
func CustomerDeleteMe(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}

		customer := middleware.CustomerFromContext(ctx)
		if customer == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		if err := svc.Delete(ctx, customer.ID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}
