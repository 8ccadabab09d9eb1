package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"concrental-backend/internal/service"
)

func (h *Handlers) handleCreateEquipment(w http.ResponseWriter, r *http.Request) {
	var req service.CreateEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	eq, err := h.equipment.CreateEquipment(r.Context(), accountID(r), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, eq)
}

func (h *Handlers) handleGetEquipment(w http.ResponseWriter, r *http.Request) {
	eq, err := h.equipment.GetEquipment(r.Context(), accountID(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *Handlers) handleUpdateEquipment(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateEquipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	eq, err := h.equipment.UpdateEquipment(r.Context(), accountID(r), mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *Handlers) handleDeleteEquipment(w http.ResponseWriter, r *http.Request) {
	if err := h.equipment.DeleteEquipment(r.Context(), accountID(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) handleListEquipment(w http.ResponseWriter, r *http.Request) {
	list, err := h.equipment.ListEquipment(r.Context(), accountID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
