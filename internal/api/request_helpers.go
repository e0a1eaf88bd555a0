package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/endorsa/endorsa-api/internal/store"
	"github.com/go-chi/chi/v5"
)

// getPathID extracts a numeric id from the URL path parameters.
//
// A missing, non-numeric or non-positive value cannot name any row, so it
// is reported as store.ErrNotFound and answered like any unknown id.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q is not a valid id", store.ErrNotFound, paramName, raw)
	}
	return id, nil
}

// emptyIfNil keeps JSON arrays from rendering as null.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
