// Package output renders stored revenue records to spreadsheet files.
package output

import (
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/xuri/excelize/v2"

	"github.com/danuwp/leaserev/internal/importer"
	"github.com/danuwp/leaserev/internal/store"
)

// exportHeaders is the column order of the exported sheet, matching
// the table layout users see in listings.
var exportHeaders = []string{
	"No", "Unique ID", "ID Customer", "Customer Name", "Tenant Name",
	"Mall Name", "Ship Address", "BAST Date", "Period Start", "Period End",
	"Period", "Month", "Price Per Month", "Status Payment", "Rev LMI", "Rev Mall",
}

// ExcelWriter renders records to an .xlsx workbook.
type ExcelWriter struct{}

// Write saves records to path as a single-sheet workbook. Dates render
// as ISO strings and NULL columns as empty cells.
func (w *ExcelWriter) Write(path string, records []store.StoredRecord) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, rec := range records {
		row := i + 2
		values := []string{
			strconv.FormatInt(rec.No, 10),
			rec.UniqueID.String,
			rec.IDCustomer.String,
			rec.CustomerName.String,
			rec.TenantName.String,
			rec.MallName.String,
			rec.ShipAddress.String,
			importer.FormatDate(rec.BastDate),
			importer.FormatDate(rec.PeriodStart),
			importer.FormatDate(rec.PeriodEnd),
			strconv.FormatInt(rec.Period, 10),
			rec.Month.String,
			strconv.FormatInt(rec.PricePerMonth, 10),
			rec.StatusPayment,
			nullableAmount(rec.RevLMI),
			strconv.FormatInt(rec.RevMall, 10),
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel export %s: %w", path, err)
	}

	return nil
}

func nullableAmount(n pgtype.Int8) string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatInt(n.Int64, 10)
}
