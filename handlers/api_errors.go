package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/audit"
	"github.com/camden-git/pvtheatresbackend/logger"
	"github.com/camden-git/pvtheatresbackend/services"
)

// APIErrorDetail represents a single error in the standardized error response.
type APIErrorDetail struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// APIErrorResponse represents the standardized error response body.
type APIErrorResponse struct {
	Errors []APIErrorDetail `json:"errors"`
}

// WriteAPIError writes a standardized error response with the given HTTP status, code, and detail.
func WriteAPIError(w http.ResponseWriter, httpStatus int, code string, detail string) {
	writeAPIErrors(w, httpStatus, code, detail)
}

// writeAPIErrors writes one error entry per detail, all sharing status and code.
func writeAPIErrors(w http.ResponseWriter, httpStatus int, code string, details ...string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)

	resp := APIErrorResponse{Errors: make([]APIErrorDetail, 0, len(details))}
	status := strconv.Itoa(httpStatus)
	for _, detail := range details {
		resp.Errors = append(resp.Errors, APIErrorDetail{Code: code, Status: status, Detail: detail})
	}

	_ = json.NewEncoder(w).Encode(resp)
}

// writeServiceError maps an error returned by the services or the listing onto a response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		verr *services.ValidationError
		serr *services.StorageError
	)
	switch {
	case errors.As(err, &verr):
		writeAPIErrors(w, http.StatusUnprocessableEntity, "validation_failed", verr.Problems...)
	case errors.Is(err, gorm.ErrRecordNotFound):
		WriteAPIError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, audit.ErrNoActor), errors.Is(err, services.ErrInvalidCredentials):
		WriteAPIError(w, http.StatusUnauthorized, "unauthorized", err.Error())
	case errors.As(err, &serr):
		logger.Sugar().Errorw("storage failure", "request_id", middleware.GetReqID(r.Context()), "op", serr.Op, "error", serr.Err)
		WriteAPIError(w, http.StatusInternalServerError, "storage_error", "The change could not be saved.")
	default:
		logger.Sugar().Errorw("request failed", "request_id", middleware.GetReqID(r.Context()), "path", r.URL.Path, "error", err)
		WriteAPIError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred.")
	}
}
