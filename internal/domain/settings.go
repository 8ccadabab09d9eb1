package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FreightProfile holds the per-operator fuel figures used by freight
// estimation.
type FreightProfile struct {
	AccountID                 int32           `json:"account_id"`
	FuelConsumptionKmPerLiter decimal.Decimal `json:"fuel_consumption_km_per_liter"`
	FuelCostPerLiter          decimal.Decimal `json:"fuel_cost_per_liter"`
	UpdatedOn                 time.Time       `json:"updated_on"`
}

// DefaultFreightProfile returns the figures a fresh account starts with.
func DefaultFreightProfile(accountID int32) *FreightProfile {
	return &FreightProfile{
		AccountID:                 accountID,
		FuelConsumptionKmPerLiter: decimal.NewFromInt(10),
		FuelCostPerLiter:          decimal.RequireFromString("5.50"),
	}
}

// OriginAddress is a fixed, geocoded departure point for freight runs.
type OriginAddress struct {
	ID        int32     `json:"id"`
	AccountID int32     `json:"account_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedOn time.Time `json:"created_on"`
}

// UserAccount is the operator owning a partition of the data. Email is
// optional and only used for overdue reminder mail.
type UserAccount struct {
	ID           int32     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        *string   `json:"email,omitempty"`
	CreatedOn    time.Time `json:"created_on"`
}
