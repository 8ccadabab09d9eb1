package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"concrental-backend/internal/security"
	"concrental-backend/internal/storage"
)

// NewRouter wires every endpoint. localStorage may be nil when a cloud
// storage backend is configured.
func NewRouter(h *Handlers, tokens security.TokenManager, localStorage *storage.LocalStorage) *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/login", h.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", h.handleRegister).Methods(http.MethodPost)

	if localStorage != nil {
		fs := &fileServer{local: localStorage}
		api.HandleFunc("/files/{key:.+}", fs.handleDownload).Methods(http.MethodGet)
	}

	// Authenticated routes
	auth := api.NewRoute().Subrouter()
	auth.Use(authMiddleware(tokens))

	auth.HandleFunc("/equipment", h.handleCreateEquipment).Methods(http.MethodPost)
	auth.HandleFunc("/equipment", h.handleListEquipment).Methods(http.MethodGet)
	auth.HandleFunc("/equipment/{id}", h.handleGetEquipment).Methods(http.MethodGet)
	auth.HandleFunc("/equipment/{id}", h.handleUpdateEquipment).Methods(http.MethodPatch)
	auth.HandleFunc("/equipment/{id}", h.handleDeleteEquipment).Methods(http.MethodDelete)

	auth.HandleFunc("/customers", h.handleCreateCustomer).Methods(http.MethodPost)
	auth.HandleFunc("/customers", h.handleListCustomers).Methods(http.MethodGet)
	auth.HandleFunc("/customers/{id}", h.handleGetCustomer).Methods(http.MethodGet)
	auth.HandleFunc("/customers/{id}", h.handleUpdateCustomer).Methods(http.MethodPatch)
	auth.HandleFunc("/customers/{id}", h.handleDeleteCustomer).Methods(http.MethodDelete)
	auth.HandleFunc("/customers/{id}/geocode", h.handleGeocodeCustomer).Methods(http.MethodPost)
	auth.HandleFunc("/customers/{id}/document", h.handleUploadCustomerDocument).Methods(http.MethodPut)

	auth.HandleFunc("/rentals", h.handleCreateRental).Methods(http.MethodPost)
	auth.HandleFunc("/rentals", h.handleListRentals).Methods(http.MethodGet)
	auth.HandleFunc("/rentals/{id}", h.handleGetRental).Methods(http.MethodGet)
	auth.HandleFunc("/rentals/{id}/complete", h.handleCompleteRental).Methods(http.MethodPost)
	auth.HandleFunc("/rentals/{id}/payment-status", h.handleUpdatePaymentStatus).Methods(http.MethodPatch)
	auth.HandleFunc("/rentals/{id}/end-date", h.handleExtendEndDate).Methods(http.MethodPatch)
	auth.HandleFunc("/rentals/{id}/contract", h.handleRentalContract).Methods(http.MethodGet)
	auth.HandleFunc("/rentals/{id}/contract", h.handleUploadSignedContract).Methods(http.MethodPut)

	auth.HandleFunc("/freight/estimate", h.handleFreightEstimate).Methods(http.MethodPost)
	auth.HandleFunc("/finance/summary", h.handleFinanceSummary).Methods(http.MethodGet)

	auth.HandleFunc("/settings/freight", h.handleGetFreightProfile).Methods(http.MethodGet)
	auth.HandleFunc("/settings/freight", h.handleUpdateFreightProfile).Methods(http.MethodPut)
	auth.HandleFunc("/settings/addresses", h.handleAddOriginAddress).Methods(http.MethodPost)
	auth.HandleFunc("/settings/addresses", h.handleListOriginAddresses).Methods(http.MethodGet)
	auth.HandleFunc("/settings/addresses/{id}", h.handleDeleteOriginAddress).Methods(http.MethodDelete)

	return r
}
