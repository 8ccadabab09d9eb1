package service

import (
	"context"
	"time"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/logger"
	"concrental-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type rentalService struct {
	repo     repository.RentalRepository
	validate *validator.Validate
}

func NewRentalService(repo repository.RentalRepository) RentalService {
	return &rentalService{
		repo:     repo,
		validate: validator.New(),
	}
}

// CreateRental books every requested unit or none. Input validation and the
// even value split happen here; availability checking, contiguous ID
// allocation and the inserts run inside the repository's transaction.
func (s *rentalService) CreateRental(ctx context.Context, accountID int32, req CreateRentalRequest) ([]domain.Rental, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &domain.ValidationError{Field: "rental", Reason: err.Error()}
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, &domain.InvalidDateRangeError{
			StartDate: req.StartDate.Format("2006-01-02"),
			EndDate:   req.EndDate.Format("2006-01-02"),
		}
	}
	if !req.TotalValue.IsPositive() {
		return nil, &domain.ValidationError{Field: "total_value", Reason: "must be greater than zero"}
	}
	if req.FreightCost.Valid && req.FreightCost.Decimal.IsNegative() {
		return nil, &domain.ValidationError{Field: "freight_cost", Reason: "must not be negative"}
	}
	if hasDuplicates(req.EquipmentIDs) {
		return nil, &domain.ValidationError{Field: "equipment_ids", Reason: "contains the same unit twice"}
	}

	units := decimal.NewFromInt(int64(len(req.EquipmentIDs)))
	batch := &domain.RentalBatch{
		AccountID:    accountID,
		CustomerID:   req.CustomerID,
		EquipmentIDs: req.EquipmentIDs,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ValorPerUnit: req.TotalValue.DivRound(units, 2),
		FreightCost:  req.FreightCost,
	}

	rentals, err := s.repo.CreateBatch(ctx, batch)
	if err != nil {
		return nil, err
	}
	logger.Info("rental booking created",
		"account_id", accountID,
		"customer_id", req.CustomerID,
		"units", len(rentals),
		"first_rental_id", rentals[0].RentalID)
	return rentals, nil
}

func (s *rentalService) GetRental(ctx context.Context, accountID int32, rentalID string) (*RentalView, error) {
	rt, err := s.repo.GetByID(ctx, accountID, rentalID)
	if err != nil {
		return nil, err
	}
	return &RentalView{Rental: *rt, Overdue: rt.IsOverdue(time.Now())}, nil
}

func (s *rentalService) CompleteRental(ctx context.Context, accountID int32, rentalID string) (*domain.Rental, error) {
	rt, err := s.repo.Complete(ctx, accountID, rentalID)
	if err != nil {
		return nil, err
	}
	logger.Info("rental completed", "account_id", accountID, "rental_id", rentalID, "equipment_id", rt.EquipmentID)
	return rt, nil
}

func (s *rentalService) UpdatePaymentStatus(ctx context.Context, accountID int32, rentalID string, status domain.PaymentStatus) error {
	if !status.Valid() {
		return &domain.ValidationError{Field: "payment_status", Reason: "unknown payment status"}
	}
	return s.repo.UpdatePaymentStatus(ctx, accountID, rentalID, status)
}

// ExtendEndDate moves the return date of an active rental. Status changes
// are rejected on this path; completion goes through CompleteRental.
func (s *rentalService) ExtendEndDate(ctx context.Context, accountID int32, rentalID string, endDate time.Time) error {
	rt, err := s.repo.GetByID(ctx, accountID, rentalID)
	if err != nil {
		return err
	}
	if endDate.Before(rt.StartDate) {
		return &domain.InvalidDateRangeError{
			StartDate: rt.StartDate.Format("2006-01-02"),
			EndDate:   endDate.Format("2006-01-02"),
		}
	}
	return s.repo.UpdateEndDate(ctx, accountID, rentalID, endDate)
}

func (s *rentalService) AttachSignedContract(ctx context.Context, accountID int32, rentalID, url string) error {
	return s.repo.SetSignedContractPath(ctx, accountID, rentalID, url)
}

func (s *rentalService) ListRentals(ctx context.Context, accountID int32, customerID string) ([]RentalView, error) {
	rentals, err := s.repo.ListByAccount(ctx, accountID, customerID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	views := make([]RentalView, 0, len(rentals))
	for _, rt := range rentals {
		views = append(views, RentalView{Rental: rt, Overdue: rt.IsOverdue(now)})
	}
	return views, nil
}

func hasDuplicates(ids []string) bool {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
