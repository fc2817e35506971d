package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/favstore/wishlist-backend/pkg/errors"
	"github.com/go-chi/chi/v5"
)

// ParsePathID reads a decimal integer path parameter. A non-numeric value maps
// to NotFound so unknown and malformed ids are indistinguishable to clients.
func ParsePathID(r *http.Request, key, notFoundMessage string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	if raw == "" {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, notFoundMessage)
	}
	return value, nil
}
