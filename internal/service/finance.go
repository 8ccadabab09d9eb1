package service

import (
	"context"
	"time"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/repository"
)

type financeService struct {
	rentals repository.RentalRepository
	now     func() time.Time
}

func NewFinanceService(rentals repository.RentalRepository) FinanceService {
	return &financeService{rentals: rentals, now: time.Now}
}

// Summary recomputes the received/receivable split from the current rental
// set. Only valor is summed; the freight share is repeated on every row of a
// multi-unit booking and would be counted once per unit.
func (s *financeService) Summary(ctx context.Context, accountID int32) (*domain.FinanceSummary, error) {
	rentals, err := s.rentals.ListByAccount(ctx, accountID, "")
	if err != nil {
		return nil, err
	}

	now := s.now()
	var sum domain.FinanceSummary
	for _, rt := range rentals {
		value := rt.Valor
		sameYear := rt.EndDate.Year() == now.Year()
		sameMonth := sameYear && rt.EndDate.Month() == now.Month()

		if rt.PaymentStatus == domain.PaymentStatusOpen {
			sum.ReceivableTotal = sum.ReceivableTotal.Add(value)
			if sameYear {
				sum.ReceivableYear = sum.ReceivableYear.Add(value)
			}
			if sameMonth {
				sum.ReceivableMonth = sum.ReceivableMonth.Add(value)
			}
		} else {
			sum.ReceivedTotal = sum.ReceivedTotal.Add(value)
			if sameYear {
				sum.ReceivedYear = sum.ReceivedYear.Add(value)
			}
			if sameMonth {
				sum.ReceivedMonth = sum.ReceivedMonth.Add(value)
			}
		}
	}
	return &sum, nil
}
