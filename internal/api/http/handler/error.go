package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/agreement-server/internal/logger"
	"github.com/dtroode/agreement-server/internal/model"
)

// handleError translates a service error into an HTTP response. It is the
// only place where error kinds map to status codes.
func handleError(w http.ResponseWriter, r *http.Request, logger *logger.Logger, err error) {
	status, message := classify(err)
	if status >= http.StatusInternalServerError {
		logger.Error("HTTP: request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		logger.Debug("HTTP: request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	writeError(w, status, message)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrAlreadySigned):
		return http.StatusConflict, "agreement already signed"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrIntegration):
		return http.StatusServiceUnavailable, "feature unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
