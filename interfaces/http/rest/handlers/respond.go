// Package handlers contains the HTTP handlers that translate requests into
// domain controller calls and domain errors into stable JSON responses.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	pkgerrors "catalog-backend/pkg/errors"
)

var validate = validator.New()

type errorResponse struct {
	Error   bool   `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func respondJSON(logger *zap.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

// respondError maps a domain error to its HTTP status via the error code.
// Foreign errors become a plain 500.
func respondError(logger *zap.Logger, w http.ResponseWriter, err error) {
	var domainErr *pkgerrors.DomainError
	if errors.As(err, &domainErr) {
		status := pkgerrors.ErrorCode(domainErr.Code).HTTPStatusCode()
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", zap.Error(err))
		}
		respondJSON(logger, w, status, errorResponse{
			Error:   true,
			Code:    domainErr.Code,
			Message: domainErr.Message,
		})
		return
	}

	logger.Error("request failed", zap.Error(err))
	respondJSON(logger, w, http.StatusInternalServerError, errorResponse{
		Error:   true,
		Message: "Internal server error",
	})
}

func respondBadRequest(logger *zap.Logger, w http.ResponseWriter, message string) {
	respondJSON(logger, w, http.StatusBadRequest, errorResponse{
		Error:   true,
		Message: message,
	})
}

// PictureResponse is the JSON shape of an uploaded picture or icon.
type PictureResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// LinkResponse is the JSON shape of a product-to-category assignment.
type LinkResponse struct {
	ProductID  string `json:"productId"`
	CategoryID string `json:"categoryId"`
}

// UpdateResponse reports whether a mutation changed anything.
type UpdateResponse struct {
	ID      string `json:"id"`
	Updated bool   `json:"updated"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
