package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"insure-backend/internal/repositories"
	"insure-backend/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestWriteServiceError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", repositories.ErrNotFound, http.StatusNotFound},
		{"duplicate", repositories.ErrDuplicate, http.StatusConflict},
		{"in use", repositories.ErrInUse, http.StatusConflict},
		{"invalid reference", repositories.ErrInvalidRef, http.StatusBadRequest},
		{"invalid input", errors.Join(services.ErrInvalidInput, errors.New("bad status")), http.StatusBadRequest},
		{"bad credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"validation", &services.ValidationError{Fields: map[string]string{"phone": "required"}}, http.StatusBadRequest},
		{"storage disabled", services.ErrLogoStorageDisabled, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, tc.err)
			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWriteServiceErrorHidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, errors.New("pq: password authentication failed"))

	assert.NotContains(t, rec.Body.String(), "password")
	assert.Contains(t, rec.Body.String(), "internal server error")
}
