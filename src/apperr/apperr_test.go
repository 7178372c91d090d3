package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{Validation, http.StatusBadRequest},
		{Duplicate, http.StatusConflict},
		{NotFound, http.StatusNotFound},
		{Unauthorized, http.StatusUnauthorized},
		{Forbidden, http.StatusForbidden},
		{Internal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := StatusOf(New(tc.kind, "m")); got != tc.want {
			t.Errorf("StatusOf(kind %d) = %d, want %d", tc.kind, got, tc.want)
		}
	}

	if got := StatusOf(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("StatusOf(plain error) = %d, want 500", got)
	}
}

func TestStatusOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", New(NotFound, "gone"))
	if got := StatusOf(wrapped); got != http.StatusNotFound {
		t.Errorf("StatusOf(wrapped) = %d, want 404", got)
	}
}

func TestWriteErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, New(NotFound, "Kindly add income first"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["success"] != false {
		t.Error("body must carry success=false")
	}
	if body["message"] != "Kindly add income first" {
		t.Errorf("message = %q, want the error message", body["message"])
	}
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New("pq: connection refused"))

	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Internal server error" {
		t.Errorf("message = %q, internal errors must not leak", body["message"])
	}
}
