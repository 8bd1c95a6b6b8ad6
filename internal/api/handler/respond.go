package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"budgetd/internal/util"
)

// DefaultTimeout bounds request handling time at the router level.
const DefaultTimeout = 30 * time.Second

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// respondWithJSON marshals the payload and writes it with the given status.
func respondWithJSON(w http.ResponseWriter, logger *slog.Logger, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps service errors onto the HTTP error taxonomy:
// validation failures are client errors, dangling references are
// unprocessable, everything unrecognized is a generic server error.
func respondWithError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = "Invalid username or password"
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case util.IsError(err, util.ErrReferenceNotFound):
		statusCode = http.StatusUnprocessableEntity
		message = err.Error()
	case util.IsError(err, util.ErrDuplicateEntry):
		statusCode = http.StatusConflict
		message = err.Error()
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(w, logger, statusCode, map[string]string{"error": message})
}

// pathID parses a positive integer id from a chi URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, util.ErrInvalidInput
	}
	return id, nil
}

// pathInt parses a plain integer path parameter (year, month).
func pathInt(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0, util.ErrInvalidInput
	}
	return v, nil
}

// queryDateRange parses the start/end query parameters as calendar dates.
// Both are required; malformed values are a client error. No ordering check
// is made: an inverted range flows through and matches nothing.
func queryDateRange(r *http.Request) (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, r.URL.Query().Get("start"))
	if err != nil {
		return time.Time{}, time.Time{}, util.ErrInvalidInput
	}
	end, err = time.Parse(dateLayout, r.URL.Query().Get("end"))
	if err != nil {
		return time.Time{}, time.Time{}, util.ErrInvalidInput
	}
	return start, end, nil
}
