package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/service"
)

func (h *Handlers) handleGetFreightProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.settings.GetFreightProfile(r.Context(), accountID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handlers) handleUpdateFreightProfile(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateFreightProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	profile, err := h.settings.UpdateFreightProfile(r.Context(), accountID(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handlers) handleAddOriginAddress(w http.ResponseWriter, r *http.Request) {
	var req service.AddOriginAddressRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	addr, err := h.settings.AddOriginAddress(r.Context(), accountID(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, addr)
}

func (h *Handlers) handleListOriginAddresses(w http.ResponseWriter, r *http.Request) {
	list, err := h.settings.ListOriginAddresses(r.Context(), accountID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handlers) handleDeleteOriginAddress(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		writeError(w, &domain.ValidationError{Field: "id", Reason: "must be an integer"})
		return
	}

	if err := h.settings.DeleteOriginAddress(r.Context(), accountID(r), int32(id)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
