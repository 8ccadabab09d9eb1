package pdf

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContract(t *testing.T) {
	g := NewGenerator("ConcRental")

	doc, err := g.RenderContract(ContractData{
		CustomerName:    "Maria Souza",
		CustomerPhone:   "+55 41 99999-0000",
		CustomerAddress: "Rua das Flores 123",
		EquipmentName:   "Betoneira 400L",
		SerialNumber:    "BT-400-017",
		StartDate:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Valor:           decimal.RequireFromString("350.00"),
		PaymentStatus:   "OPEN",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, doc)
	assert.Equal(t, "%PDF", string(doc[:4]))
}
