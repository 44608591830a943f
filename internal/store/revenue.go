package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/danuwp/leaserev/internal/importer"
)

// selectColumns is the read column list, surrogate key first.
const selectColumns = `no, unique_id, id_customer, customer_name, tenant_name, mall_name,
	ship_address, bast_date, period_start, period_end, period, month,
	price_per_month, status_payment, rev_lmi, rev_mall`

// StoredRecord is a persisted revenue row: the surrogate key plus the
// full record.
type StoredRecord struct {
	No int64
	importer.RevenueRecord
}

func scanRecord(row pgx.Row) (StoredRecord, error) {
	var r StoredRecord
	err := row.Scan(
		&r.No, &r.UniqueID, &r.IDCustomer, &r.CustomerName, &r.TenantName,
		&r.MallName, &r.ShipAddress, &r.BastDate, &r.PeriodStart,
		&r.PeriodEnd, &r.Period, &r.Month, &r.PricePerMonth,
		&r.StatusPayment, &r.RevLMI, &r.RevMall,
	)
	return r, err
}

// Insert adds one record and returns its surrogate key.
func (s *Store) Insert(ctx context.Context, rec importer.RevenueRecord) (int64, error) {
	const sql = `
		INSERT INTO revenue (
			unique_id, id_customer, customer_name, tenant_name, mall_name,
			ship_address, bast_date, period_start, period_end, period,
			month, price_per_month, status_payment, rev_lmi, rev_mall
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING no`

	var no int64
	err := s.pool.QueryRow(ctx, sql,
		rec.UniqueID, rec.IDCustomer, rec.CustomerName, rec.TenantName,
		rec.MallName, rec.ShipAddress, rec.BastDate, rec.PeriodStart,
		rec.PeriodEnd, rec.Period, rec.Month, rec.PricePerMonth,
		rec.StatusPayment, rec.RevLMI, rec.RevMall,
	).Scan(&no)
	if err != nil {
		return 0, fmt.Errorf("insert revenue record: %w", err)
	}
	return no, nil
}

// GetByID fetches one row by surrogate key.
func (s *Store) GetByID(ctx context.Context, no int64) (*StoredRecord, error) {
	sql := fmt.Sprintf("SELECT %s FROM revenue WHERE no = $1", selectColumns)
	rec, err := scanRecord(s.pool.QueryRow(ctx, sql, no))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get revenue record %d: %w", no, err)
	}
	return &rec, nil
}

// Filter narrows a listing. All set fields combine with AND; name and
// status fields match as case-insensitive substrings, mirroring how
// the dashboard filters behave. Search matches any identifying column.
type Filter struct {
	IDCustomer    string
	CustomerName  string
	TenantName    string
	MallName      string
	Period        string
	StatusPayment string
	Search        string
}

func (f Filter) build() (string, []any) {
	var clauses []string
	var args []any

	like := func(column, value string) {
		args = append(args, "%"+value+"%")
		clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", column, len(args)))
	}

	if f.IDCustomer != "" {
		like("id_customer", f.IDCustomer)
	}
	if f.CustomerName != "" {
		like("customer_name", f.CustomerName)
	}
	if f.TenantName != "" {
		like("tenant_name", f.TenantName)
	}
	if f.MallName != "" {
		like("mall_name", f.MallName)
	}
	if f.Period != "" {
		like("period::text", f.Period)
	}
	if f.StatusPayment != "" {
		like("status_payment", f.StatusPayment)
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			`(unique_id ILIKE $%[1]d OR id_customer ILIKE $%[1]d OR customer_name ILIKE $%[1]d
			OR tenant_name ILIKE $%[1]d OR mall_name ILIKE $%[1]d OR period::text ILIKE $%[1]d)`, n))
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// List returns rows matching the filter, ordered by surrogate key.
func (s *Store) List(ctx context.Context, f Filter) ([]StoredRecord, error) {
	where, args := f.build()
	sql := fmt.Sprintf("SELECT %s FROM revenue%s ORDER BY no ASC", selectColumns, where)

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list revenue records: %w", err)
	}
	defer rows.Close()

	var records []StoredRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan revenue record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list revenue records: %w", err)
	}
	return records, nil
}

// Update overwrites every column of an existing row. Callers that want
// to preserve old values fetch first and merge.
func (s *Store) Update(ctx context.Context, no int64, rec importer.RevenueRecord) error {
	const sql = `
		UPDATE revenue SET
			unique_id = $1, id_customer = $2, customer_name = $3,
			tenant_name = $4, mall_name = $5, ship_address = $6,
			bast_date = $7, period_start = $8, period_end = $9,
			period = $10, month = $11, price_per_month = $12,
			status_payment = $13, rev_lmi = $14, rev_mall = $15
		WHERE no = $16`

	tag, err := s.pool.Exec(ctx, sql,
		rec.UniqueID, rec.IDCustomer, rec.CustomerName, rec.TenantName,
		rec.MallName, rec.ShipAddress, rec.BastDate, rec.PeriodStart,
		rec.PeriodEnd, rec.Period, rec.Month, rec.PricePerMonth,
		rec.StatusPayment, rec.RevLMI, rec.RevMall, no,
	)
	if err != nil {
		return fmt.Errorf("update revenue record %d: %w", no, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one row by surrogate key.
func (s *Store) Delete(ctx context.Context, no int64) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM revenue WHERE no = $1", no)
	if err != nil {
		return fmt.Errorf("delete revenue record %d: %w", no, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// BulkDelete removes a set of rows and reports how many were deleted.
func (s *Store) BulkDelete(ctx context.Context, nos []int64) (int64, error) {
	if len(nos) == 0 {
		return 0, nil
	}
	tag, err := s.pool.Exec(ctx, "DELETE FROM revenue WHERE no = ANY($1)", nos)
	if err != nil {
		return 0, fmt.Errorf("bulk delete revenue records: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Stats summarizes the table for the dashboard cards.
type Stats struct {
	Total        int64
	Paid         int64
	Unpaid       int64
	TotalRevenue int64
}

// Stats computes the record counts and revenue sum in one query.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	const sql = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status_payment = 'Paid'),
			COUNT(*) FILTER (WHERE status_payment = 'Unpaid'),
			COALESCE(SUM(price_per_month), 0)
		FROM revenue`

	var st Stats
	if err := s.pool.QueryRow(ctx, sql).Scan(&st.Total, &st.Paid, &st.Unpaid, &st.TotalRevenue); err != nil {
		return nil, fmt.Errorf("revenue stats: %w", err)
	}
	return &st, nil
}

// ExportAll returns every row, newest first, for spreadsheet export.
func (s *Store) ExportAll(ctx context.Context) ([]StoredRecord, error) {
	sql := fmt.Sprintf("SELECT %s FROM revenue ORDER BY no DESC", selectColumns)

	rows, err := s.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("export revenue records: %w", err)
	}
	defer rows.Close()

	var records []StoredRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan revenue record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("export revenue records: %w", err)
	}
	return records, nil
}
