package importer

import "testing"

func TestManualEntryRecord(t *testing.T) {
	entry := ManualEntry{
		UniqueID:      "U-1",
		IDCustomer:    "C001",
		CustomerName:  "PT Maju",
		BastDate:      "15/03/2024",
		PricePerMonth: "Rp 1.250.000",
		StatusPayment: "paid",
		RevLMI:        "",
	}

	rec, err := entry.Record()
	if err != nil {
		t.Fatal(err)
	}

	if rec.UniqueID.String != "U-1" {
		t.Errorf("UniqueID = %q", rec.UniqueID.String)
	}
	if FormatDate(rec.BastDate) != "2024-03-15" {
		t.Errorf("BastDate = %s", FormatDate(rec.BastDate))
	}
	if rec.PricePerMonth != 1250000 {
		t.Errorf("PricePerMonth = %d", rec.PricePerMonth)
	}
	if rec.StatusPayment != StatusPaid {
		t.Errorf("StatusPayment = %q", rec.StatusPayment)
	}
	if rec.RevLMI.Valid {
		t.Error("empty RevLMI should be NULL")
	}
}

func TestManualEntryRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		entry ManualEntry
	}{
		{name: "missing unique id", entry: ManualEntry{IDCustomer: "C001", CustomerName: "PT Maju"}},
		{name: "missing id customer", entry: ManualEntry{UniqueID: "U-1", CustomerName: "PT Maju"}},
		{name: "missing customer name", entry: ManualEntry{UniqueID: "U-1", IDCustomer: "C001"}},
		{name: "all missing", entry: ManualEntry{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.entry.Record(); err == nil {
				t.Error("validation should reject incomplete entry")
			}
		})
	}
}
