package reports

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"construlog/internal/domain/employee"
	"construlog/internal/domain/production"
)

func TestBuildWorkbook(t *testing.T) {
	employees := []employee.Employee{{ID: "e1", Name: "Carlos Silva"}}
	entries := []production.Entry{
		{ID: "p1", Date: "2026-08-15", EmployeeID: "e1", ServiceType: "Reboco", Site: "Torre A", Pavimento: "2º Andar", Quantity: 10, UnitPrice: 7, TotalValue: 70},
		{ID: "p2", Date: "2026-08-16", EmployeeID: "ghost", ServiceType: "Verga", Site: "Torre A", Pavimento: "Térreo", Quantity: 2, UnitPrice: 20, TotalValue: 40},
	}

	data, err := BuildWorkbook(entries, employees)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Produção", "B2")
	require.NoError(t, err)
	require.Equal(t, "Carlos Silva", name)

	unknown, err := f.GetCellValue("Produção", "B3")
	require.NoError(t, err)
	require.Equal(t, UnknownWorker, unknown)

	header, err := f.GetCellValue("Produção", "A1")
	require.NoError(t, err)
	require.Equal(t, "Data", header)
}
