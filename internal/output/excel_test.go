package output

import (
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/xuri/excelize/v2"

	"github.com/danuwp/leaserev/internal/importer"
	"github.com/danuwp/leaserev/internal/store"
)

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func TestExcelWriterWrite(t *testing.T) {
	records := []store.StoredRecord{
		{
			No: 2,
			RevenueRecord: importer.RevenueRecord{
				UniqueID:      text("U-2"),
				CustomerName:  text("PT Sejahtera"),
				BastDate:      importer.CoerceDate("2024-03-15"),
				Period:        202403,
				PricePerMonth: 2000000,
				StatusPayment: importer.StatusPaid,
				RevLMI:        pgtype.Int8{Int64: 500, Valid: true},
			},
		},
		{
			No: 1,
			RevenueRecord: importer.RevenueRecord{
				UniqueID:      text("U-1"),
				CustomerName:  text("PT Maju"),
				StatusPayment: importer.StatusUnpaid,
			},
		},
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	w := &ExcelWriter{}
	if err := w.Write(path, records); err != nil {
		t.Fatal(err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	sheet := file.GetSheetName(0)
	rows, err := file.GetRows(sheet)
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 records", len(rows))
	}
	if rows[0][0] != "No" || rows[0][1] != "Unique ID" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][1] != "U-2" || rows[1][3] != "PT Sejahtera" {
		t.Errorf("first record row = %v", rows[1])
	}
	if rows[1][7] != "2024-03-15" {
		t.Errorf("BAST date cell = %q, want ISO", rows[1][7])
	}
	if rows[1][13] != importer.StatusPaid {
		t.Errorf("status cell = %q", rows[1][13])
	}
	if rows[1][14] != "500" {
		t.Errorf("rev_lmi cell = %q, want 500", rows[1][14])
	}

	// NULL date and NULL rev_lmi render as empty cells. GetRows trims
	// trailing empties, so just check nothing non-empty leaked in.
	if len(rows[2]) > 7 && rows[2][7] != "" {
		t.Errorf("NULL date cell = %q, want empty", rows[2][7])
	}
}

func TestExcelWriterEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	w := &ExcelWriter{}
	if err := w.Write(path, nil); err != nil {
		t.Fatal(err)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("empty export should still carry the header row, got %d rows", len(rows))
	}
}
