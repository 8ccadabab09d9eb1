package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"concrental-backend/internal/service"
)

func (h *Handlers) handleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req service.CreateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.customers.CreateCustomer(r.Context(), accountID(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handlers) handleGetCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := h.customers.GetCustomer(r.Context(), accountID(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) handleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateCustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	c, err := h.customers.UpdateCustomer(r.Context(), accountID(r), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handlers) handleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.customers.DeleteCustomer(r.Context(), accountID(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) handleListCustomers(w http.ResponseWriter, r *http.Request) {
	list, err := h.customers.ListCustomers(r.Context(), accountID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) handleGeocodeCustomer(w http.ResponseWriter, r *http.Request) {
	coords, err := h.customers.GeocodeAndStore(r.Context(), accountID(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, coords)
}

// handleUploadCustomerDocument stores a customer's ID document (image or
// PDF) and records the resulting URL.
func (h *Handlers) handleUploadCustomerDocument(w http.ResponseWriter, r *http.Request) {
	acct := accountID(r)
	customerID := mux.Vars(r)["id"]

	if _, err := h.customers.GetCustomer(r.Context(), acct, customerID); err != nil {
		writeError(w, err)
		return
	}

	contentType := r.Header.Get("Content-Type")
	key := fmt.Sprintf("accounts/%d/customers/%s/documents/%s", acct, customerID, uuid.NewString())

	url, err := h.blobs.Upload(r.Context(), key, contentType, http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.customers.AttachDocument(r.Context(), acct, customerID, url); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
