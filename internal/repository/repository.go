package repository

import (
	"context"
	"time"

	"concrental-backend/internal/domain"
)

type EquipmentRepository interface {
	// Create allocates the next EQ identifier and inserts the row in one
	// transaction. Fills EquipmentID on success.
	Create(ctx context.Context, eq *domain.Equipment) error
	GetByID(ctx context.Context, accountID int32, equipmentID string) (*domain.Equipment, error)
	// Update writes the operator-editable fields. Status is excluded; it
	// moves through SetStatus or the rental booking/completion paths.
	Update(ctx context.Context, eq *domain.Equipment) error
	// SetStatus switches a unit between AVAILABLE and MAINTENANCE. A unit
	// that is currently RENTED is left untouched and reported as a conflict.
	SetStatus(ctx context.Context, accountID int32, equipmentID string, status domain.EquipmentStatus) error
	Delete(ctx context.Context, accountID int32, equipmentID string) error
	ListByAccount(ctx context.Context, accountID int32) ([]domain.Equipment, error)
}

type CustomerRepository interface {
	// Create allocates the next CUST identifier and inserts the row in one
	// transaction. Fills CustomerID on success.
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, accountID int32, customerID string) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	UpdateCoordinates(ctx context.Context, accountID int32, customerID string, lat, lon float64) error
	SetDocumentPath(ctx context.Context, accountID int32, customerID, url string) error
	Delete(ctx context.Context, accountID int32, customerID string) error
	ListByAccount(ctx context.Context, accountID int32) ([]domain.Customer, error)
}

type RentalRepository interface {
	// CreateBatch books every unit in the batch or none: inside one
	// transaction it locks the equipment rows, verifies availability,
	// allocates contiguous RENT identifiers from a single max read, inserts
	// the rental rows and flips the equipment to RENTED.
	CreateBatch(ctx context.Context, batch *domain.RentalBatch) ([]domain.Rental, error)
	GetByID(ctx context.Context, accountID int32, rentalID string) (*domain.Rental, error)
	// Complete transitions ACTIVE -> COMPLETED and restores the linked
	// equipment to AVAILABLE atomically.
	Complete(ctx context.Context, accountID int32, rentalID string) (*domain.Rental, error)
	UpdatePaymentStatus(ctx context.Context, accountID int32, rentalID string, status domain.PaymentStatus) error
	UpdateEndDate(ctx context.Context, accountID int32, rentalID string, endDate time.Time) error
	SetSignedContractPath(ctx context.Context, accountID int32, rentalID, url string) error
	// ListByAccount returns rentals newest start date first; customerID
	// narrows the listing when non-empty.
	ListByAccount(ctx context.Context, accountID int32, customerID string) ([]domain.Rental, error)
	ListOverdueByAccount(ctx context.Context, accountID int32, asOf time.Time) ([]domain.Rental, error)
}

type SettingsRepository interface {
	// GetFreightProfile returns stored figures, or the defaults when the
	// account has never saved any.
	GetFreightProfile(ctx context.Context, accountID int32) (*domain.FreightProfile, error)
	UpdateFreightProfile(ctx context.Context, profile *domain.FreightProfile) error
	AddOriginAddress(ctx context.Context, addr *domain.OriginAddress) error
	GetOriginAddress(ctx context.Context, accountID, id int32) (*domain.OriginAddress, error)
	ListOriginAddresses(ctx context.Context, accountID int32) ([]domain.OriginAddress, error)
	DeleteOriginAddress(ctx context.Context, accountID, id int32) error
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.UserAccount) error
	GetByID(ctx context.Context, id int32) (*domain.UserAccount, error)
	GetByUsername(ctx context.Context, username string) (*domain.UserAccount, error)
	List(ctx context.Context) ([]domain.UserAccount, error)
}
