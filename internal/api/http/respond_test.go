package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"concrental-backend/internal/domain"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &domain.ValidationError{Field: "name", Reason: "required"}, http.StatusBadRequest},
		{"date range", &domain.InvalidDateRangeError{StartDate: "2026-03-10", EndDate: "2026-03-01"}, http.StatusBadRequest},
		{"document", &domain.InvalidDocumentError{DocType: domain.DocumentTypeCPF, Reason: "bad check digits"}, http.StatusBadRequest},
		{"not found", &domain.NotFoundError{Resource: "rental", ID: "RENT999"}, http.StatusNotFound},
		{"conflict", &domain.ConflictError{Resource: "rental", Detail: "already completed"}, http.StatusConflict},
		{"duplicate serial", &domain.DuplicateSerialError{SerialNumber: "X"}, http.StatusConflict},
		{"unavailable", &domain.EquipmentUnavailableError{EquipmentID: "EQ001", Status: domain.EquipmentStatusRented}, http.StatusConflict},
		{"referential", &domain.ReferentialIntegrityError{Resource: "customer", ID: "CUST001"}, http.StatusConflict},
		{"geocode", &domain.GeocodeFailedError{Address: "nowhere"}, http.StatusBadGateway},
		{"route", &domain.RouteUnavailableError{Err: errors.New("down")}, http.StatusBadGateway},
		{"external", &domain.ExternalServiceError{Service: "sendgrid", Err: errors.New("500")}, http.StatusBadGateway},
		{"integrity", &domain.DataIntegrityError{Detail: "malformed id"}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)
			assert.Equal(t, tt.want, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}
