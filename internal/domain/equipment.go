package domain

import "time"

// Identifier prefixes for the human-readable sequential IDs. Each sequence
// is scoped to one operator account.
const (
	EquipmentIDPrefix = "EQ"
	CustomerIDPrefix  = "CUST"
	RentalIDPrefix    = "RENT"
	// SeqIDWidth is the zero-padding width; sequences keep growing past it.
	SeqIDWidth = 3
)

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "AVAILABLE"
	EquipmentStatusRented      EquipmentStatus = "RENTED"
	EquipmentStatusMaintenance EquipmentStatus = "MAINTENANCE"
)

// PurchaseStatus records whether the unit itself has been paid off, separate
// from any rental payment.
type PurchaseStatus string

const (
	PurchaseStatusPaid   PurchaseStatus = "PAID"
	PurchaseStatusUnpaid PurchaseStatus = "UNPAID"
)

type Equipment struct {
	EquipmentID     string          `json:"equipment_id"`
	AccountID       int32           `json:"account_id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	SerialNumber    string          `json:"serial_number"`
	AcquisitionDate time.Time       `json:"acquisition_date"`
	Status          EquipmentStatus `json:"status"`
	PurchaseStatus  PurchaseStatus  `json:"purchase_status"`
	TimesRented     int             `json:"times_rented"`
	CreatedOn       time.Time       `json:"created_on"`
	UpdatedOn       time.Time       `json:"updated_on"`
}

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentStatusAvailable, EquipmentStatusRented, EquipmentStatusMaintenance:
		return true
	}
	return false
}

func (s PurchaseStatus) Valid() bool {
	return s == PurchaseStatusPaid || s == PurchaseStatusUnpaid
}
