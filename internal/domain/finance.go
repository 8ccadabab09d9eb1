package domain

import "github.com/shopspring/decimal"

// FinanceSummary partitions rental values into cash received (payment status
// anything but OPEN) and receivable (still OPEN), bucketed by the rental's
// end date. It is recomputed from the current rental set on every call.
type FinanceSummary struct {
	ReceivedMonth   decimal.Decimal `json:"received_month"`
	ReceivedYear    decimal.Decimal `json:"received_year"`
	ReceivedTotal   decimal.Decimal `json:"received_total"`
	ReceivableMonth decimal.Decimal `json:"receivable_month"`
	ReceivableYear  decimal.Decimal `json:"receivable_year"`
	ReceivableTotal decimal.Decimal `json:"receivable_total"`
}
