package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
)

type Kind int

const (
	Validation Kind = iota
	Duplicate
	NotFound
	Unauthorized
	Forbidden
	Internal
)

// Error is the single error currency between stores, handlers and the
// responder. Message is what the client sees.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func StatusOf(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case Validation:
		return http.StatusBadRequest
	case Duplicate:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// WriteError maps any error to its status code and the uniform
// {success:false, message} body.
func WriteError(w http.ResponseWriter, err error) {
	message := "Internal server error"
	var appErr *Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusOf(err))
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
