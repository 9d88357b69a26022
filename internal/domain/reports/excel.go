package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"construlog/internal/domain/employee"
	"construlog/internal/domain/production"
)

var workbookHeaders = []string{
	"Data", "Funcionário", "Serviço", "Obra", "Pavimento",
	"Quantidade", "Unidade", "Valor Unitário", "Valor Total", "Observações",
}

// BuildWorkbook renders the production history as a spreadsheet, one row per
// entry in insertion order, with resolved employee names.
func BuildWorkbook(entries []production.Entry, employees []employee.Employee) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Produção"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("reports.BuildWorkbook: style: %w", err)
	}

	for i, name := range workbookHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(workbookHeaders), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	for rowIdx, entry := range entries {
		row := rowIdx + 2
		name := UnknownWorker
		if worker, ok := employee.Resolve(employees, entry.EmployeeID); ok {
			name = worker.Name
		}
		values := []any{
			entry.Date, name, entry.ServiceType, entry.Site, entry.Pavimento,
			entry.Quantity, string(entry.Unit), entry.UnitPrice, entry.TotalValue, entry.Observations,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("reports.BuildWorkbook: %w", err)
	}
	return buf.Bytes(), nil
}
