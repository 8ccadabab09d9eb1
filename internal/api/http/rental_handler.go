package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/pdf"
	"concrental-backend/internal/service"
)

func (h *Handlers) handleCreateRental(w http.ResponseWriter, r *http.Request) {
	var req service.CreateRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rentals, err := h.rentals.CreateRental(r.Context(), accountID(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rentals)
}

func (h *Handlers) handleGetRental(w http.ResponseWriter, r *http.Request) {
	view, err := h.rentals.GetRental(r.Context(), accountID(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) handleListRentals(w http.ResponseWriter, r *http.Request) {
	list, err := h.rentals.ListRentals(r.Context(), accountID(r), r.URL.Query().Get("customer_id"))
	if err != nil {
		writeError(w, err)
		return
	}

	// Optional split between the live book and the completed history.
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.RentalStatus(raw)
		if !status.Valid() {
			writeError(w, &domain.ValidationError{Field: "status", Reason: "unknown rental status"})
			return
		}
		filtered := make([]service.RentalView, 0, len(list))
		for _, view := range list {
			if view.Status == status {
				filtered = append(filtered, view)
			}
		}
		list = filtered
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) handleCompleteRental(w http.ResponseWriter, r *http.Request) {
	rt, err := h.rentals.CompleteRental(r.Context(), accountID(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

type updatePaymentStatusRequest struct {
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
}

func (h *Handlers) handleUpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req updatePaymentStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.rentals.UpdatePaymentStatus(r.Context(), accountID(r), mux.Vars(r)["id"], req.PaymentStatus); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type extendEndDateRequest struct {
	EndDate time.Time `json:"end_date"`
}

func (h *Handlers) handleExtendEndDate(w http.ResponseWriter, r *http.Request) {
	var req extendEndDateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.rentals.ExtendEndDate(r.Context(), accountID(r), mux.Vars(r)["id"], req.EndDate); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRentalContract renders the rental's contract as a PDF download.
func (h *Handlers) handleRentalContract(w http.ResponseWriter, r *http.Request) {
	acct := accountID(r)
	view, err := h.rentals.GetRental(r.Context(), acct, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	customer, err := h.customers.GetCustomer(r.Context(), acct, view.CustomerID)
	if err != nil {
		writeError(w, err)
		return
	}
	equipment, err := h.equipment.GetEquipment(r.Context(), acct, view.EquipmentID)
	if err != nil {
		writeError(w, err)
		return
	}

	data := pdf.ContractData{
		CustomerName:    customer.FullName,
		CustomerPhone:   customer.PhoneNumber,
		CustomerAddress: customer.Address,
		EquipmentName:   equipment.Name,
		SerialNumber:    equipment.SerialNumber,
		StartDate:       view.StartDate,
		EndDate:         view.EndDate,
		Valor:           view.Valor,
		PaymentStatus:   string(view.PaymentStatus),
	}
	doc, err := h.contracts.RenderContract(data)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=contract-%s.pdf", view.RentalID))
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}

// handleUploadSignedContract stores a scanned, signed contract and records
// its URL on the rental.
func (h *Handlers) handleUploadSignedContract(w http.ResponseWriter, r *http.Request) {
	acct := accountID(r)
	rentalID := mux.Vars(r)["id"]

	if _, err := h.rentals.GetRental(r.Context(), acct, rentalID); err != nil {
		writeError(w, err)
		return
	}

	contentType := r.Header.Get("Content-Type")
	key := fmt.Sprintf("accounts/%d/rentals/%s/contracts/%s", acct, rentalID, uuid.NewString())

	url, err := h.blobs.Upload(r.Context(), key, contentType, http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.rentals.AttachSignedContract(r.Context(), acct, rentalID, url); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
