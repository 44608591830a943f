package importer

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ManualEntry is a single record entered by hand rather than imported.
// Unlike bulk import, manual entry demands all three identifying
// fields up front; the remaining fields go through the same coercers
// as the file pipeline so both paths store identical shapes.
type ManualEntry struct {
	UniqueID      string `validate:"required"`
	IDCustomer    string `validate:"required"`
	CustomerName  string `validate:"required"`
	TenantName    string
	MallName      string
	ShipAddress   string
	BastDate      string
	PeriodStart   string
	PeriodEnd     string
	Period        string
	Month         string
	PricePerMonth string
	StatusPayment string
	RevLMI        string
	RevMall       string
}

// Record validates the entry and coerces it into a RevenueRecord.
func (e ManualEntry) Record() (RevenueRecord, error) {
	if err := validate.Struct(e); err != nil {
		return RevenueRecord{}, fmt.Errorf("invalid entry: %w", err)
	}

	return RevenueRecord{
		UniqueID:      CleanText(e.UniqueID),
		IDCustomer:    CleanText(e.IDCustomer),
		CustomerName:  CleanText(e.CustomerName),
		TenantName:    CleanText(e.TenantName),
		MallName:      CleanText(e.MallName),
		ShipAddress:   CleanText(e.ShipAddress),
		BastDate:      CoerceDate(e.BastDate),
		PeriodStart:   CoerceDate(e.PeriodStart),
		PeriodEnd:     CoerceDate(e.PeriodEnd),
		Period:        CoercePeriod(e.Period),
		Month:         CoerceMonth(e.Month),
		PricePerMonth: CoerceAmount(e.PricePerMonth),
		StatusPayment: CoercePaymentStatus(e.StatusPayment),
		RevLMI:        CoerceNullableAmount(e.RevLMI),
		RevMall:       CoerceAmount(e.RevMall),
	}, nil
}
