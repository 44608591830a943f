package importer

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/danuwp/leaserev/internal/parser"
)

var (
	// ErrUnknownField is returned when a mapping names a target field
	// that is not a recognized revenue column.
	ErrUnknownField = errors.New("unknown target field")

	// ErrEmptyMapping is returned when a mapping binds no columns at all.
	ErrEmptyMapping = errors.New("mapping binds no target fields")
)

// ColumnMapping associates source-file headers (as they appear in the
// file) with target field names. An empty target means "ignore this
// column". Created per upload session and consumed once.
type ColumnMapping map[string]string

// Validate rejects unknown target fields at the boundary rather than
// letting arbitrary column names reach the upsert statement. Duplicate
// targets are rejected too: two source columns writing one field would
// make the import order-dependent.
func (m ColumnMapping) Validate() error {
	recognized := make(map[string]bool, len(TargetFields()))
	for _, f := range TargetFields() {
		recognized[f] = true
	}

	seen := make(map[string]string)
	bound := 0
	for src, target := range m {
		if strings.TrimSpace(target) == "" {
			continue
		}
		if !recognized[target] {
			return fmt.Errorf("%w: %q (source column %q)", ErrUnknownField, target, src)
		}
		if prev, dup := seen[target]; dup {
			return fmt.Errorf("target field %q mapped from both %q and %q", target, prev, src)
		}
		seen[target] = src
		bound++
	}
	if bound == 0 {
		return ErrEmptyMapping
	}
	return nil
}

type mappingPair struct {
	source     string
	normalized string
	target     string
}

// Mapper applies a validated ColumnMapping to raw rows, producing
// typed RevenueRecords. Matching is tolerant of header drift via
// NormalizeHeader; when several raw columns normalize to the same
// string, the first one in the row's header order wins.
type Mapper struct {
	pairs []mappingPair
	log   *slog.Logger

	// CoercionWarnings counts cells that carried data but coerced to
	// NULL (unparseable dates and the like). The loss itself is policy;
	// the count keeps it observable.
	CoercionWarnings int
}

// NewMapper validates the mapping and prepares normalized match keys.
func NewMapper(m ColumnMapping) (*Mapper, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	pairs := make([]mappingPair, 0, len(m))
	for src, target := range m {
		if strings.TrimSpace(target) == "" {
			continue
		}
		pairs = append(pairs, mappingPair{
			source:     src,
			normalized: NormalizeHeader(src),
			target:     target,
		})
	}
	// Map iteration order is random; a fixed order keeps runs reproducible.
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].source < pairs[j].source })

	return &Mapper{pairs: pairs, log: slog.Default()}, nil
}

// MapRow maps one raw row into a RevenueRecord. Unmapped target fields
// stay NULL. Returns ok=false when the row has no identifying fields
// and must be dropped.
func (mp *Mapper) MapRow(row parser.Row) (RevenueRecord, bool) {
	rec := RevenueRecord{StatusPayment: StatusUnpaid}

	for _, pair := range mp.pairs {
		raw, found := firstMatch(row, pair.normalized)
		if !found {
			continue
		}
		mp.assign(&rec, pair.target, raw)
	}

	if !rec.UniqueID.Valid {
		if id, ok := SyntheticID(rec.IDCustomer.String, rec.ShipAddress.String, rec.RevLMI.Int64); ok {
			rec.UniqueID = pgtypeText(id)
		}
	}

	return rec, rec.HasIdentity()
}

// firstMatch returns the value of the first row column whose
// normalized header equals key.
func firstMatch(row parser.Row, key string) (string, bool) {
	for i, h := range row.Headers {
		if NormalizeHeader(h) == key {
			return row.Values[i], true
		}
	}
	return "", false
}

func (mp *Mapper) assign(rec *RevenueRecord, field, raw string) {
	switch field {
	case FieldUniqueID:
		rec.UniqueID = CleanText(raw)
	case FieldIDCustomer:
		rec.IDCustomer = CleanText(raw)
	case FieldCustomerName:
		rec.CustomerName = CleanText(raw)
	case FieldTenantName:
		rec.TenantName = CleanText(raw)
	case FieldMallName:
		rec.MallName = CleanText(raw)
	case FieldShipAddress:
		rec.ShipAddress = CleanText(raw)
	case FieldBastDate:
		rec.BastDate = mp.coerceDate(field, raw)
	case FieldPeriodStart:
		rec.PeriodStart = mp.coerceDate(field, raw)
	case FieldPeriodEnd:
		rec.PeriodEnd = mp.coerceDate(field, raw)
	case FieldPeriod:
		rec.Period = CoercePeriod(raw)
	case FieldMonth:
		rec.Month = CoerceMonth(raw)
	case FieldPricePerMonth:
		rec.PricePerMonth = CoerceAmount(raw)
	case FieldStatusPayment:
		rec.StatusPayment = CoercePaymentStatus(raw)
	case FieldRevLMI:
		rec.RevLMI = CoerceNullableAmount(raw)
	case FieldRevMall:
		rec.RevMall = CoerceAmount(raw)
	}
}

// coerceDate wraps CoerceDate with loss accounting: silent data loss
// is the policy for bad dates, but it has to stay observable.
func (mp *Mapper) coerceDate(field, raw string) pgtype.Date {
	d := CoerceDate(raw)
	if !d.Valid && strings.TrimSpace(raw) != "" {
		mp.CoercionWarnings++
		mp.log.Warn("unparseable date dropped", "field", field, "value", raw)
	}
	return d
}

func pgtypeText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}
