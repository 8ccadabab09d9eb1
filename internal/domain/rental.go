package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusCompleted RentalStatus = "COMPLETED"
)

type PaymentStatus string

const (
	PaymentStatusOpen         PaymentStatus = "OPEN"
	PaymentStatusCard         PaymentStatus = "CARD"
	PaymentStatusCash         PaymentStatus = "CASH"
	PaymentStatusInstallments PaymentStatus = "INSTALLMENTS"
	PaymentStatusPix          PaymentStatus = "PIX"
)

type Rental struct {
	RentalID      string        `json:"rental_id"`
	AccountID     int32         `json:"account_id"`
	CustomerID    string        `json:"customer_id"`
	EquipmentID   string        `json:"equipment_id"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	Status        RentalStatus  `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	// Valor is the per-unit rental value; a multi-unit booking splits its
	// total evenly across the rows it creates.
	Valor              decimal.Decimal     `json:"valor"`
	FreightCost        decimal.NullDecimal `json:"freight_cost,omitempty"`
	SignedContractPath *string             `json:"signed_contract_path,omitempty"`
	CreatedOn          time.Time           `json:"created_on"`
	UpdatedOn          time.Time           `json:"updated_on"`
}

// IsOverdue reports whether the rental is past due. Overdue is a read-time
// projection derived from the canonical Status field, never stored.
func (r *Rental) IsOverdue(now time.Time) bool {
	if r.Status != RentalStatusActive {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return r.EndDate.Before(today)
}

// RentalBatch describes a multi-unit booking: one rental row per equipment
// unit, all sharing customer, dates, per-unit value and freight cost.
type RentalBatch struct {
	AccountID    int32
	CustomerID   string
	EquipmentIDs []string
	StartDate    time.Time
	EndDate      time.Time
	ValorPerUnit decimal.Decimal
	FreightCost  decimal.NullDecimal
}

func (s RentalStatus) Valid() bool {
	return s == RentalStatusActive || s == RentalStatusCompleted
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusOpen, PaymentStatusCard, PaymentStatusCash, PaymentStatusInstallments, PaymentStatusPix:
		return true
	}
	return false
}
