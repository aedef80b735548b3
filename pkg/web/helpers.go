package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
)

// MaxBodyBytes caps the request bodies DecodeJSON will read.
const MaxBodyBytes = 1 << 20

// ErrEmptyBody is returned by DecodeJSON when the request has no body at all.
var ErrEmptyBody = errors.New("request body is empty")

func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// RespondError writes {"message": message} with the given status.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, map[string]string{"message": message})
}

// DecodeJSON reads a single JSON value from the request body without binding it to a type,
// so that the caller can validate its shape first. Numbers are kept as json.Number.
// Bodies over MaxBodyBytes fail with an error wrapping *http.MaxBytesError.
func DecodeJSON(w http.ResponseWriter, r *http.Request) (any, error) {
	if r.Body == nil {
		return nil, ErrEmptyBody
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyBody
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode request body: %w", err)
	}
	if dec.More() {
		return nil, errors.New("request body must contain a single JSON value")
	}
	return payload, nil
}

// ParseID extracts the numeric ID from the request path. Returns the ID and a boolean indicating success.
// Routes constrain {id} to digits, so a failure here means the value overflowed int64.
func ParseID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, notFoundMessage string) (int64, bool) {
	pathValueID := r.PathValue("id")
	id, ok := parseNonNegative(pathValueID)
	if !ok {
		logger.WarnContext(r.Context(), "Unusable ID in path", "ID", pathValueID)
		RespondError(w, logger, http.StatusNotFound, notFoundMessage)
		return 0, false
	}
	return id, true
}

// parseNonNegative parses a base 10 integer that must be >= 0.
func parseNonNegative(value string) (int64, bool) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
