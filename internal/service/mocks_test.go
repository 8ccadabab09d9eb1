package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/geo"
)

type mockRentalRepository struct {
	mock.Mock
}

func (m *mockRentalRepository) CreateBatch(ctx context.Context, batch *domain.RentalBatch) ([]domain.Rental, error) {
	args := m.Called(ctx, batch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *mockRentalRepository) GetByID(ctx context.Context, accountID int32, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, accountID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockRentalRepository) Complete(ctx context.Context, accountID int32, rentalID string) (*domain.Rental, error) {
	args := m.Called(ctx, accountID, rentalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *mockRentalRepository) UpdatePaymentStatus(ctx context.Context, accountID int32, rentalID string, status domain.PaymentStatus) error {
	args := m.Called(ctx, accountID, rentalID, status)
	return args.Error(0)
}

func (m *mockRentalRepository) UpdateEndDate(ctx context.Context, accountID int32, rentalID string, endDate time.Time) error {
	args := m.Called(ctx, accountID, rentalID, endDate)
	return args.Error(0)
}

func (m *mockRentalRepository) SetSignedContractPath(ctx context.Context, accountID int32, rentalID, url string) error {
	args := m.Called(ctx, accountID, rentalID, url)
	return args.Error(0)
}

func (m *mockRentalRepository) ListByAccount(ctx context.Context, accountID int32, customerID string) ([]domain.Rental, error) {
	args := m.Called(ctx, accountID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *mockRentalRepository) ListOverdueByAccount(ctx context.Context, accountID int32, asOf time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, accountID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

type mockCustomerRepository struct {
	mock.Mock
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, accountID int32, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, accountID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCustomerRepository) UpdateCoordinates(ctx context.Context, accountID int32, customerID string, lat, lon float64) error {
	args := m.Called(ctx, accountID, customerID, lat, lon)
	return args.Error(0)
}

func (m *mockCustomerRepository) SetDocumentPath(ctx context.Context, accountID int32, customerID, url string) error {
	args := m.Called(ctx, accountID, customerID, url)
	return args.Error(0)
}

func (m *mockCustomerRepository) Delete(ctx context.Context, accountID int32, customerID string) error {
	args := m.Called(ctx, accountID, customerID)
	return args.Error(0)
}

func (m *mockCustomerRepository) ListByAccount(ctx context.Context, accountID int32) ([]domain.Customer, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

type mockSettingsRepository struct {
	mock.Mock
}

func (m *mockSettingsRepository) GetFreightProfile(ctx context.Context, accountID int32) (*domain.FreightProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FreightProfile), args.Error(1)
}

func (m *mockSettingsRepository) UpdateFreightProfile(ctx context.Context, profile *domain.FreightProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *mockSettingsRepository) AddOriginAddress(ctx context.Context, addr *domain.OriginAddress) error {
	args := m.Called(ctx, addr)
	return args.Error(0)
}

func (m *mockSettingsRepository) GetOriginAddress(ctx context.Context, accountID, id int32) (*domain.OriginAddress, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OriginAddress), args.Error(1)
}

func (m *mockSettingsRepository) ListOriginAddresses(ctx context.Context, accountID int32) ([]domain.OriginAddress, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OriginAddress), args.Error(1)
}

func (m *mockSettingsRepository) DeleteOriginAddress(ctx context.Context, accountID, id int32) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *domain.UserAccount) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int32) (*domain.UserAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserAccount), args.Error(1)
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.UserAccount, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserAccount), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]domain.UserAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserAccount), args.Error(1)
}

type mockEquipmentRepository struct {
	mock.Mock
}

func (m *mockEquipmentRepository) Create(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}

func (m *mockEquipmentRepository) GetByID(ctx context.Context, accountID int32, equipmentID string) (*domain.Equipment, error) {
	args := m.Called(ctx, accountID, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *mockEquipmentRepository) Update(ctx context.Context, eq *domain.Equipment) error {
	args := m.Called(ctx, eq)
	return args.Error(0)
}

func (m *mockEquipmentRepository) SetStatus(ctx context.Context, accountID int32, equipmentID string, status domain.EquipmentStatus) error {
	args := m.Called(ctx, accountID, equipmentID, status)
	return args.Error(0)
}

func (m *mockEquipmentRepository) Delete(ctx context.Context, accountID int32, equipmentID string) error {
	args := m.Called(ctx, accountID, equipmentID)
	return args.Error(0)
}

func (m *mockEquipmentRepository) ListByAccount(ctx context.Context, accountID int32) ([]domain.Equipment, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

type mockGeocoder struct {
	mock.Mock
}

func (m *mockGeocoder) Geocode(ctx context.Context, address string) (geo.Coordinates, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(geo.Coordinates), args.Error(1)
}

type mockRouter struct {
	mock.Mock
}

func (m *mockRouter) RouteDistanceKm(ctx context.Context, origin, dest geo.Coordinates) (float64, error) {
	args := m.Called(ctx, origin, dest)
	return args.Get(0).(float64), args.Error(1)
}
