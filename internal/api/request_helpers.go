package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tracklet/tracker-api/internal/api/shared"
	"github.com/tracklet/tracker-api/internal/store"
)

// Pagination bounds shared by the list endpoints. Page numbering starts at
// 1; the per-resource default size differs (tasks 50, habits 20) but the
// ceiling does not.
const (
	pageMin = 1
	sizeMin = 1
	sizeMax = 200
)

// getPathID extracts the resource ID from the URL path. An ID that does not
// parse as a UUID cannot name a stored record, so the caller treats the
// returned false the same as a missing record.
func getPathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parsePageQuery reads the page/size query parameters, applying defaults and
// range checks. Violations come back as field-level detail for a 422.
func parsePageQuery(r *http.Request, defaultSize int) (store.Page, []shared.FieldError) {
	page := store.Page{Page: pageMin, Size: defaultSize}
	var details []shared.FieldError

	query := r.URL.Query()

	if raw := query.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			details = append(details, shared.FieldError{Field: "page", Message: "must be an integer"})
		case n < pageMin:
			details = append(details, shared.FieldError{Field: "page", Message: "must be at least 1"})
		default:
			page.Page = n
		}
	}

	if raw := query.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			details = append(details, shared.FieldError{Field: "size", Message: "must be an integer"})
		case n < sizeMin || n > sizeMax:
			details = append(details, shared.FieldError{Field: "size", Message: "must be between 1 and 200"})
		default:
			page.Size = n
		}
	}

	return page, details
}

// parseTagQuery reads the optional tag filter. An empty parameter counts as
// absent, matching the original API's behavior.
func parseTagQuery(r *http.Request) *string {
	if raw := r.URL.Query().Get("tag"); raw != "" {
		return &raw
	}
	return nil
}

// parseBoolQuery reads an optional boolean query parameter. The second
// return is a validation detail when the value does not parse as a bool.
func parseBoolQuery(r *http.Request, name string) (*bool, *shared.FieldError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, &shared.FieldError{Field: name, Message: "must be a boolean"}
	}
	return &value, nil
}
