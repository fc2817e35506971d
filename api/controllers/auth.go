package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/favstore/wishlist-backend/api/responses"
	"github.com/favstore/wishlist-backend/internal/auth"
	pkgerrors "github.com/favstore/wishlist-backend/pkg/errors"
	"github.com/favstore/wishlist-backend/pkg/logger"
)

// AuthToken wires the token endpoint into the HTTP layer. Credentials arrive
// either form-encoded (username/password) or as a JSON body (email/password).
func AuthToken(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		body, err := decodeCredentials(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

func decodeCredentials(r *http.Request) (auth.LoginRequest, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return auth.LoginRequest{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body")
		}
		email := r.PostFormValue("username")
		if email == "" {
			email = r.PostFormValue("email")
		}
		return auth.LoginRequest{
			Email:    email,
			Password: r.PostFormValue("password"),
		}, nil
	}

	var body auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return auth.LoginRequest{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid request body")
	}
	return body, nil
}
