// Package pdf renders rental contracts as PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// ContractData is the flattened view of one rental plus its customer and
// equipment, everything the contract template needs.
type ContractData struct {
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	EquipmentName   string
	SerialNumber    string
	StartDate       time.Time
	EndDate         time.Time
	Valor           decimal.Decimal
	PaymentStatus   string
}

// Generator renders contracts under a configurable company name.
type Generator struct {
	companyName string
}

func NewGenerator(companyName string) *Generator {
	return &Generator{companyName: companyName}
}

// RenderContract produces the contract PDF for one rental.
func (g *Generator) RenderContract(data ContractData) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetHeaderFunc(func() {
		doc.SetFont("Arial", "B", 12)
		doc.CellFormat(0, 10, tr(g.companyName+" - Contrato de Locação de Equipamentos"), "", 1, "C", false, 0, "")
		doc.Ln(10)
	})
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Arial", "I", 8)
		doc.CellFormat(0, 10, tr(fmt.Sprintf("Página %d", doc.PageNo())), "", 1, "C", false, 0, "")
	})

	doc.AddPage()
	width, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	effective := width - left - right

	doc.SetFont("Arial", "B", 16)
	doc.CellFormat(0, 10, tr("CONTRATO DE LOCAÇÃO DE BENS MÓVEIS"), "", 1, "C", false, 0, "")
	doc.Ln(10)

	g.clause(doc, "PARTES CONTRATANTES")
	doc.MultiCell(effective, 5, tr(fmt.Sprintf("LOCADORA: %s, doravante denominada simplesmente LOCADORA.", g.companyName)), "", "L", false)
	doc.MultiCell(effective, 5, tr(fmt.Sprintf(
		"LOCATÁRIO(A): %s, portador(a) do telefone %s, residente no endereço %s, doravante denominado(a) simplesmente LOCATÁRIO(A).",
		data.CustomerName, data.CustomerPhone, data.CustomerAddress)), "", "L", false)
	doc.Ln(10)

	g.clause(doc, "CLÁUSULA PRIMEIRA - DO OBJETO DA LOCAÇÃO")
	doc.MultiCell(effective, 5, tr("O presente contrato tem como objeto a locação do(s) seguinte(s) equipamento(s):"), "", "L", false)
	doc.SetFont("Arial", "B", 12)
	doc.CellFormat(0, 10, tr(fmt.Sprintf("- Equipamento: %s (S/N: %s)", data.EquipmentName, data.SerialNumber)), "", 1, "L", false, 0, "")
	doc.SetFont("Arial", "", 12)
	doc.Ln(10)

	g.clause(doc, "CLÁUSULA SEGUNDA - DO PRAZO")
	doc.MultiCell(effective, 5, tr(fmt.Sprintf(
		"A locação do equipamento terá início em %s e término em %s.",
		data.StartDate.Format("02/01/2006"), data.EndDate.Format("02/01/2006"))), "", "L", false)
	doc.Ln(10)

	g.clause(doc, "CLÁUSULA TERCEIRA - DO VALOR E FORMA DE PAGAMENTO")
	doc.MultiCell(effective, 5, tr(fmt.Sprintf(
		"O valor total da locação é de R$ %s. O status atual do pagamento é: %s.",
		data.Valor.StringFixed(2), data.PaymentStatus)), "", "L", false)
	doc.Ln(20)

	doc.CellFormat(0, 10, "__________________________________________________", "", 1, "C", false, 0, "")
	doc.CellFormat(0, 5, "LOCADORA", "", 1, "C", false, 0, "")
	doc.Ln(20)
	doc.CellFormat(0, 10, "__________________________________________________", "", 1, "C", false, 0, "")
	doc.CellFormat(0, 5, tr(data.CustomerName), "", 1, "C", false, 0, "")
	doc.CellFormat(0, 5, tr("LOCATÁRIO(A)"), "", 1, "C", false, 0, "")
	doc.Ln(10)

	doc.SetFont("Arial", "I", 10)
	doc.CellFormat(0, 10, tr(fmt.Sprintf("Gerado em %s", time.Now().Format("02/01/2006"))), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render contract: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) clause(doc *gofpdf.Fpdf, title string) {
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetFont("Arial", "B", 12)
	doc.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	doc.SetFont("Arial", "", 12)
}
