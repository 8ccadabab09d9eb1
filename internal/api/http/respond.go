package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError maps the domain error taxonomy onto HTTP status codes. Expected
// conditions come back as 4xx; collaborator failures as 502; integrity
// violations as 500.
func writeError(w http.ResponseWriter, err error) {
	var (
		validation  *domain.ValidationError
		dateRange   *domain.InvalidDateRangeError
		document    *domain.InvalidDocumentError
		conflict    *domain.ConflictError
		dupSerial   *domain.DuplicateSerialError
		unavailable *domain.EquipmentUnavailableError
		notFound    *domain.NotFoundError
		referential *domain.ReferentialIntegrityError
		external    *domain.ExternalServiceError
		geocode     *domain.GeocodeFailedError
		route       *domain.RouteUnavailableError
		integrity   *domain.DataIntegrityError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validation), errors.As(err, &dateRange), errors.As(err, &document):
		status = http.StatusBadRequest
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &conflict), errors.As(err, &dupSerial),
		errors.As(err, &unavailable), errors.As(err, &referential):
		status = http.StatusConflict
	case errors.As(err, &geocode), errors.As(err, &route), errors.As(err, &external):
		status = http.StatusBadGateway
	case errors.As(err, &integrity):
		logger.Error("data integrity violation", "error", err)
		status = http.StatusInternalServerError
	default:
		logger.Error("unhandled error", "error", err)
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &domain.ValidationError{Field: "body", Reason: "malformed JSON payload"}
	}
	return nil
}
