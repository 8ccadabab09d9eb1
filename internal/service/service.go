package service

import (
	"context"
	"time"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/geo"

	"github.com/shopspring/decimal"
)

// Geocoder resolves a free-text address to coordinates. Implemented by
// geo.NominatimClient.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (geo.Coordinates, error)
}

// Router returns a driving distance between two points. Implemented by
// geo.OSRMClient; may be absent, in which case estimation is geodesic only.
type Router interface {
	RouteDistanceKm(ctx context.Context, origin, dest geo.Coordinates) (float64, error)
}

type EquipmentService interface {
	CreateEquipment(ctx context.Context, accountID int32, req CreateEquipmentRequest) (*domain.Equipment, error)
	GetEquipment(ctx context.Context, accountID int32, equipmentID string) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, accountID int32, equipmentID string, req UpdateEquipmentRequest) (*domain.Equipment, error)
	DeleteEquipment(ctx context.Context, accountID int32, equipmentID string) error
	ListEquipment(ctx context.Context, accountID int32) ([]domain.Equipment, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, accountID int32, req CreateCustomerRequest) (*domain.Customer, error)
	GetCustomer(ctx context.Context, accountID int32, customerID string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, accountID int32, customerID string, req UpdateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, accountID int32, customerID string) error
	ListCustomers(ctx context.Context, accountID int32) ([]domain.Customer, error)
	GeocodeAndStore(ctx context.Context, accountID int32, customerID string) (geo.Coordinates, error)
	AttachDocument(ctx context.Context, accountID int32, customerID, url string) error
}

type RentalService interface {
	CreateRental(ctx context.Context, accountID int32, req CreateRentalRequest) ([]domain.Rental, error)
	GetRental(ctx context.Context, accountID int32, rentalID string) (*RentalView, error)
	CompleteRental(ctx context.Context, accountID int32, rentalID string) (*domain.Rental, error)
	UpdatePaymentStatus(ctx context.Context, accountID int32, rentalID string, status domain.PaymentStatus) error
	ExtendEndDate(ctx context.Context, accountID int32, rentalID string, endDate time.Time) error
	AttachSignedContract(ctx context.Context, accountID int32, rentalID, url string) error
	ListRentals(ctx context.Context, accountID int32, customerID string) ([]RentalView, error)
}

type FreightService interface {
	Estimate(ctx context.Context, accountID int32, req FreightEstimateRequest) (*FreightEstimate, error)
}

type FinanceService interface {
	Summary(ctx context.Context, accountID int32) (*domain.FinanceSummary, error)
}

type SettingsService interface {
	GetFreightProfile(ctx context.Context, accountID int32) (*domain.FreightProfile, error)
	UpdateFreightProfile(ctx context.Context, accountID int32, req UpdateFreightProfileRequest) (*domain.FreightProfile, error)
	AddOriginAddress(ctx context.Context, accountID int32, req AddOriginAddressRequest) (*domain.OriginAddress, error)
	ListOriginAddresses(ctx context.Context, accountID int32) ([]domain.OriginAddress, error)
	DeleteOriginAddress(ctx context.Context, accountID, id int32) error
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.UserAccount, error)
	Register(ctx context.Context, username, password, email string) (*domain.UserAccount, error)
}

type EmailService interface {
	SendOverdueRentalsReminder(ctx context.Context, toEmail, username string, rentals []domain.Rental) error
}

type CreateEquipmentRequest struct {
	Name            string                `json:"name" validate:"required"`
	Category        string                `json:"category" validate:"required"`
	SerialNumber    string                `json:"serial_number" validate:"required"`
	AcquisitionDate time.Time             `json:"acquisition_date" validate:"required"`
	PurchaseStatus  domain.PurchaseStatus `json:"purchase_status" validate:"required"`
}

// UpdateEquipmentRequest is the closed set of operator-editable fields. Nil
// fields stay untouched. Status only covers the manual maintenance toggle;
// RENTED is owned by the rental core.
type UpdateEquipmentRequest struct {
	Name            *string                 `json:"name,omitempty"`
	Category        *string                 `json:"category,omitempty"`
	SerialNumber    *string                 `json:"serial_number,omitempty"`
	AcquisitionDate *time.Time              `json:"acquisition_date,omitempty"`
	PurchaseStatus  *domain.PurchaseStatus  `json:"purchase_status,omitempty"`
	Status          *domain.EquipmentStatus `json:"status,omitempty"`
}

type CreateCustomerRequest struct {
	FullName       string              `json:"full_name" validate:"required"`
	CompanyName    string              `json:"company_name"`
	PhoneNumber    string              `json:"phone_number"`
	EmailAddress   string              `json:"email_address" validate:"required,email"`
	Address        string              `json:"address" validate:"required"`
	DocumentType   domain.DocumentType `json:"document_type" validate:"required"`
	DocumentNumber string              `json:"document_number" validate:"required"`
}

type UpdateCustomerRequest struct {
	FullName       *string              `json:"full_name,omitempty"`
	CompanyName    *string              `json:"company_name,omitempty"`
	PhoneNumber    *string              `json:"phone_number,omitempty"`
	EmailAddress   *string              `json:"email_address,omitempty" validate:"omitempty,email"`
	Address        *string              `json:"address,omitempty"`
	DocumentType   *domain.DocumentType `json:"document_type,omitempty"`
	DocumentNumber *string              `json:"document_number,omitempty"`
}

type CreateRentalRequest struct {
	CustomerID   string              `json:"customer_id" validate:"required"`
	EquipmentIDs []string            `json:"equipment_ids" validate:"required,min=1,dive,required"`
	StartDate    time.Time           `json:"start_date" validate:"required"`
	EndDate      time.Time           `json:"end_date" validate:"required"`
	TotalValue   decimal.Decimal     `json:"total_value"`
	FreightCost  decimal.NullDecimal `json:"freight_cost"`
}

type FreightEstimateRequest struct {
	OriginAddressID    int32  `json:"origin_address_id" validate:"required"`
	DestinationAddress string `json:"destination_address" validate:"required"`
	// RequireRoute surfaces a RouteUnavailableError instead of falling back
	// to geodesic distance when the routing service fails.
	RequireRoute bool `json:"require_route"`
}

type FreightEstimate struct {
	DistanceOneWayKm float64         `json:"distance_one_way_km"`
	TotalDistanceKm  float64         `json:"total_distance_km"`
	Cost             decimal.Decimal `json:"cost"`
	Routed           bool            `json:"routed"`
}

type UpdateFreightProfileRequest struct {
	FuelConsumptionKmPerLiter decimal.Decimal `json:"fuel_consumption_km_per_liter"`
	FuelCostPerLiter          decimal.Decimal `json:"fuel_cost_per_liter"`
}

type AddOriginAddressRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// RentalView augments a rental with its read-time overdue projection.
type RentalView struct {
	domain.Rental
	Overdue bool `json:"overdue"`
}
