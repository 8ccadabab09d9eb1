package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"concrental-backend/internal/domain"
)

func validRentalRequest() CreateRentalRequest {
	return CreateRentalRequest{
		CustomerID:   "CUST001",
		EquipmentIDs: []string{"EQ001", "EQ002", "EQ003"},
		StartDate:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		TotalValue:   decimal.RequireFromString("100.00"),
	}
}

func TestCreateRental_SplitsValueEvenly(t *testing.T) {
	repo := new(mockRentalRepository)
	svc := NewRentalService(repo)

	repo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(b *domain.RentalBatch) bool {
		return b.ValorPerUnit.Equal(decimal.RequireFromString("33.33")) &&
			len(b.EquipmentIDs) == 3 &&
			b.CustomerID == "CUST001"
	})).Return([]domain.Rental{
		{RentalID: "RENT001"}, {RentalID: "RENT002"}, {RentalID: "RENT003"},
	}, nil)

	rentals, err := svc.CreateRental(context.Background(), 1, validRentalRequest())
	require.NoError(t, err)
	assert.Len(t, rentals, 3)
	repo.AssertExpectations(t)
}

func TestCreateRental_EndBeforeStart(t *testing.T) {
	repo := new(mockRentalRepository)
	svc := NewRentalService(repo)

	req := validRentalRequest()
	req.EndDate = req.StartDate.AddDate(0, 0, -1)

	_, err := svc.CreateRental(context.Background(), 1, req)
	var dateRange *domain.InvalidDateRangeError
	assert.True(t, errors.As(err, &dateRange))
	repo.AssertNotCalled(t, "CreateBatch")
}

func TestCreateRental_ZeroValue(t *testing.T) {
	repo := new(mockRentalRepository)
	svc := NewRentalService(repo)

	req := validRentalRequest()
	req.TotalValue = decimal.Zero

	_, err := svc.CreateRental(context.Background(), 1, req)
	var validation *domain.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "total_value", validation.Field)
}

func TestCreateRental_NoEquipment(t *testing.T) {
	repo := new(mockRentalRepository)
	svc := NewRentalService(repo)

	req := validRentalRequest()
	req.EquipmentIDs = nil

	_, err := svc.CreateRental(context.Background(), 1, req)
	var validation *domain.ValidationError
	assert.True(t, errors.As(err, &validation))
}

func TestCreateRental_DuplicateUnits(t *testing.T) {
	repo := new(mockRentalRepository)
	svc := NewRentalService(repo)

	req := validRentalRequest()
	req.EquipmentIDs = []string{"EQ001", "EQ001"}

	_, err := svc.CreateRental(context.Background(), 1, req)
	var validation *domain.ValidationError
	require.True(t, errors.As(err, &validation))
	assert.Equal(t, "equipment_ids", validation.Field)
}

func TestCreateRental_UnavailableEquipment(t *testing.T) {
	repo := new(mockRentalRepository)
	svc := NewRentalService(repo)

	repo.On("CreateBatch", mock.Anything, mock.Anything).Return(nil, &domain.EquipmentUnavailableError{
		EquipmentID: "EQ002",
		Status:      domain.EquipmentStatusRented,
	})

	_, err := svc.CreateRental(context.Background(), 1, validRentalRequest())
	var unavailable *domain.EquipmentUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, "EQ002", unavailable.EquipmentID)
}

func TestExtendEndDate_BeforeStart(t *testing.T) {
	repo := new(mockRentalRepository)
	svc := NewRentalService(repo)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.On("GetByID", mock.Anything, int32(1), "RENT001").Return(&domain.Rental{
		RentalID:  "RENT001",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 5),
		Status:    domain.RentalStatusActive,
	}, nil)

	err := svc.ExtendEndDate(context.Background(), 1, "RENT001", start.AddDate(0, 0, -2))
	var dateRange *domain.InvalidDateRangeError
	assert.True(t, errors.As(err, &dateRange))
	repo.AssertNotCalled(t, "UpdateEndDate")
}

func TestUpdatePaymentStatus_UnknownStatus(t *testing.T) {
	repo := new(mockRentalRepository)
	svc := NewRentalService(repo)

	err := svc.UpdatePaymentStatus(context.Background(), 1, "RENT001", domain.PaymentStatus("CHEQUE"))
	var validation *domain.ValidationError
	assert.True(t, errors.As(err, &validation))
	repo.AssertNotCalled(t, "UpdatePaymentStatus")
}

func TestCompleteRental_AlreadyCompleted(t *testing.T) {
	repo := new(mockRentalRepository)
	svc := NewRentalService(repo)

	repo.On("Complete", mock.Anything, int32(1), "RENT001").Return(nil, &domain.ConflictError{
		Resource: "rental",
		Detail:   "rental RENT001 is already completed",
	})

	_, err := svc.CompleteRental(context.Background(), 1, "RENT001")
	var conflict *domain.ConflictError
	assert.True(t, errors.As(err, &conflict))
}

func TestListRentals_OverdueProjection(t *testing.T) {
	repo := new(mockRentalRepository)
	svc := NewRentalService(repo)

	yesterday := time.Now().AddDate(0, 0, -1)
	tomorrow := time.Now().AddDate(0, 0, 1)
	repo.On("ListByAccount", mock.Anything, int32(1), "").Return([]domain.Rental{
		{RentalID: "RENT001", Status: domain.RentalStatusActive, EndDate: yesterday},
		{RentalID: "RENT002", Status: domain.RentalStatusActive, EndDate: tomorrow},
		{RentalID: "RENT003", Status: domain.RentalStatusCompleted, EndDate: yesterday},
	}, nil)

	views, err := svc.ListRentals(context.Background(), 1, "")
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.True(t, views[0].Overdue)
	assert.False(t, views[1].Overdue)
	assert.False(t, views[2].Overdue)
}
