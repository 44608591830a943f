package importer

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Target field names recognized by the mapping engine. These match the
// revenue table columns that bulk import is allowed to populate.
const (
	FieldUniqueID      = "unique_id"
	FieldIDCustomer    = "id_customer"
	FieldCustomerName  = "customer_name"
	FieldTenantName    = "tenant_name"
	FieldMallName      = "mall_name"
	FieldShipAddress   = "ship_address"
	FieldBastDate      = "bast_date"
	FieldPeriodStart   = "period_start"
	FieldPeriodEnd     = "period_end"
	FieldPeriod        = "period"
	FieldMonth         = "month"
	FieldPricePerMonth = "price_per_month"
	FieldStatusPayment = "status_payment"
	FieldRevLMI        = "rev_lmi"
	FieldRevMall       = "rev_mall"
)

// Payment status is a closed two-value enum; nothing else may reach storage.
const (
	StatusPaid   = "Paid"
	StatusUnpaid = "Unpaid"
)

// TargetFields returns the recognized target field names in storage
// column order. Used by the header-discovery probe to drive mapping UIs.
func TargetFields() []string {
	return []string{
		FieldUniqueID,
		FieldIDCustomer,
		FieldCustomerName,
		FieldTenantName,
		FieldMallName,
		FieldShipAddress,
		FieldBastDate,
		FieldPeriodStart,
		FieldPeriodEnd,
		FieldPeriod,
		FieldMonth,
		FieldPricePerMonth,
		FieldStatusPayment,
		FieldRevLMI,
		FieldRevMall,
	}
}

// RevenueRecord is one leased-unit billing row, fully typed and ready
// for the upsert writer. Nullable columns use pgtype values with
// Valid=false for NULL.
type RevenueRecord struct {
	UniqueID      pgtype.Text
	IDCustomer    pgtype.Text
	CustomerName  pgtype.Text
	TenantName    pgtype.Text
	MallName      pgtype.Text
	ShipAddress   pgtype.Text
	BastDate      pgtype.Date
	PeriodStart   pgtype.Date
	PeriodEnd     pgtype.Date
	Period        int64
	Month         pgtype.Text
	PricePerMonth int64
	StatusPayment string
	RevLMI        pgtype.Int8
	RevMall       int64
}

// HasIdentity reports whether the record carries at least one of the
// three identifying fields. Records without identity are dropped at
// mapping time and filtered again by the upsert writer.
func (r RevenueRecord) HasIdentity() bool {
	return r.CustomerName.Valid || r.UniqueID.Valid || r.IDCustomer.Valid
}

// RowError describes a single row that failed at the storage boundary.
type RowError struct {
	RowIndex int           // 1-based position within the written batch
	Error    string        // storage error message
	Record   RevenueRecord // the record that failed
}

// ImportResult summarizes one upsert run. ErrorDetails is populated
// only when ErrorCount > 0; it never causes the batch to fail.
type ImportResult struct {
	ImportID      string
	InsertedCount int
	UpdatedCount  int
	ErrorCount    int
	ErrorDetails  []RowError
	TotalRows     int
}
