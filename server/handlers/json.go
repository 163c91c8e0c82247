package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"rental-server/server/middleware"
	services "rental-server/service"
	"rental-server/validator"
)

// MAX_BODY_BYTES bounds JSON request bodies.
const MAX_BODY_BYTES = 1 << 20

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
	Meta   map[string]string `json:"meta,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg, Meta: meta(r)})
}

func BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	WriteError(w, r, http.StatusBadRequest, msg)
}

func NotFound(w http.ResponseWriter, r *http.Request, msg string) {
	WriteError(w, r, http.StatusNotFound, msg)
}

func InternalError(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, http.StatusInternalServerError, "internal server error")
}

func meta(r *http.Request) map[string]string {
	if rid := middleware.RequestIDFromContext(r.Context()); rid != "" {
		return map[string]string{"request_id": rid}
	}
	return nil
}

// writeServiceError maps service errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs validator.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		WriteJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Fields: fieldErrs, Meta: meta(r)})
	case errors.Is(err, services.ErrListingNotFound), errors.Is(err, services.ErrConversationNotFound):
		NotFound(w, r, err.Error())
	case errors.Is(err, services.ErrDatesUnavailable):
		WriteError(w, r, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidDates),
		errors.Is(err, services.ErrGuestsOutOfRange),
		errors.Is(err, services.ErrInvalidRadius),
		errors.Is(err, services.ErrEmptyMessage):
		BadRequest(w, r, err.Error())
	default:
		log.Printf("[Handlers] %s %s failed: %v", r.Method, r.URL.Path, err)
		InternalError(w, r)
	}
}

// decodeJSON reads a single JSON object from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MAX_BODY_BYTES))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
