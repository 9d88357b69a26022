package payroll

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/jung-kurt/gofpdf"
)

var monthNames = map[time.Month]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

// SheetPDF renders the month's payroll as a printable sheet: one block per
// employee plus the team cash total. Per-employee cash payments are shown
// clamped to zero, matching the payroll view.
func SheetPDF(lines []Line, year int, month time.Month) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, tr("Folha de Pagamento"))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Mês de referência: %s de %d", monthNames[month], year)))
	pdf.Ln(12)

	for _, line := range lines {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, tr(fmt.Sprintf("%s — %s / %s", line.Name, line.Role, line.Site)))
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Salário bruto: R$ %.2f    Salário líquido: R$ %.2f", line.GrossSalary, line.NetSalary)))
		pdf.Ln(5)
		pdf.Cell(0, 6, tr(fmt.Sprintf("FGTS (%.1f%%): R$ %.2f    INSS (%.1f%%): R$ %.2f    Vale: R$ %.2f",
			line.FGTSPercent, line.FGTSValue, line.INSSPercent, line.INSSValue, line.Advance)))
		pdf.Ln(5)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Produção do mês: R$ %.2f    Pagamento extra: R$ %.2f    Total geral: R$ %.2f",
			line.MonthlyProduction, math.Max(0, line.CashPayment), line.TotalToReceiveInCash)))
		pdf.Ln(9)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Total a sacar em dinheiro: R$ %.2f", TotalCashToWithdraw(lines))))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("payroll.SheetPDF: %w", err)
	}
	return buf.Bytes(), nil
}
