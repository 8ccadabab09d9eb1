package http

import (
	"net/http"

	"concrental-backend/internal/service"
)

func (h *Handlers) handleFreightEstimate(w http.ResponseWriter, r *http.Request) {
	var req service.FreightEstimateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	estimate, err := h.freight.Estimate(r.Context(), accountID(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, estimate)
}

func (h *Handlers) handleFinanceSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.finance.Summary(r.Context(), accountID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
