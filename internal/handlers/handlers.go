package handlers

import (
	"errors"
	"net/http"

	"insure-backend/internal/repositories"
	"insure-backend/internal/services"
	"insure-backend/pkg/utils"
)

// writeServiceError maps service-layer errors onto HTTP statuses. Anything
// unrecognized is a 500 with a generic message so internals never leak.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": vErr.Fields,
		})
	case errors.Is(err, services.ErrInvalidInput):
		utils.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.Error(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, repositories.ErrInvalidRef):
		utils.Error(w, http.StatusBadRequest, "referenced record does not exist")
	case errors.Is(err, repositories.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "record not found")
	case errors.Is(err, repositories.ErrDuplicate):
		utils.Error(w, http.StatusConflict, "a record with that value already exists")
	case errors.Is(err, services.ErrLogoStorageDisabled):
		utils.Error(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, repositories.ErrInUse):
		utils.Error(w, http.StatusConflict, "record is referenced by other data and cannot be deleted")
	default:
		utils.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
