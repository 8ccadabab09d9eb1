// Package http exposes the engine over a JSON REST API.
package http

import (
	"concrental-backend/internal/pdf"
	"concrental-backend/internal/service"
	"concrental-backend/internal/storage"
)

// Handlers bundles every service the API fronts.
type Handlers struct {
	auth      service.AuthService
	equipment service.EquipmentService
	customers service.CustomerService
	rentals   service.RentalService
	freight   service.FreightService
	finance   service.FinanceService
	settings  service.SettingsService
	blobs     storage.BlobStorage
	contracts *pdf.Generator
}

func NewHandlers(
	auth service.AuthService,
	equipment service.EquipmentService,
	customers service.CustomerService,
	rentals service.RentalService,
	freight service.FreightService,
	finance service.FinanceService,
	settings service.SettingsService,
	blobs storage.BlobStorage,
	contracts *pdf.Generator,
) *Handlers {
	return &Handlers{
		auth:      auth,
		equipment: equipment,
		customers: customers,
		rentals:   rentals,
		freight:   freight,
		finance:   finance,
		settings:  settings,
		blobs:     blobs,
		contracts: contracts,
	}
}

// maxUploadBytes caps document and contract uploads at 10 MiB.
const maxUploadBytes = 10 << 20
