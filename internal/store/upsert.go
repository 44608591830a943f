package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danuwp/leaserev/internal/importer"
)

// upsertSQL writes the fixed, explicit column list bulk import is
// allowed to touch. Deliberately not derived from the user mapping:
// the mapping is validated against it upstream, and the SQL never
// changes shape.
const upsertSQL = `
	INSERT INTO revenue (
		unique_id, id_customer, customer_name, tenant_name, mall_name,
		ship_address, bast_date, period_start, period_end, period,
		month, price_per_month, status_payment, rev_lmi, rev_mall
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	ON CONFLICT (unique_id) DO UPDATE SET
		id_customer     = EXCLUDED.id_customer,
		customer_name   = EXCLUDED.customer_name,
		tenant_name     = EXCLUDED.tenant_name,
		mall_name       = EXCLUDED.mall_name,
		ship_address    = EXCLUDED.ship_address,
		bast_date       = EXCLUDED.bast_date,
		period_start    = EXCLUDED.period_start,
		period_end      = EXCLUDED.period_end,
		period          = EXCLUDED.period,
		month           = EXCLUDED.month,
		price_per_month = EXCLUDED.price_per_month,
		status_payment  = EXCLUDED.status_payment,
		rev_lmi         = EXCLUDED.rev_lmi,
		rev_mall        = EXCLUDED.rev_mall
	RETURNING (xmax = 0) AS inserted`

// UpsertBatch writes a mapped batch inside a single transaction.
//
// Each row gets its own savepoint: a constraint violation rolls back
// that row alone, lands in ErrorDetails, and the batch continues. Only
// failures outside the per-row guard (connection loss, commit failure,
// cancellation) roll back the whole batch.
//
// Rows with a NULL unique_id never conflict, so they always insert;
// duplicate keys merge via the ON CONFLICT update. xmax = 0 on the
// returned row distinguishes a fresh insert from an overwrite.
func (s *Store) UpsertBatch(ctx context.Context, records []importer.RevenueRecord) (*importer.ImportResult, error) {
	// Defensive re-check of the mapping-time drop rule.
	valid := records[:0:0]
	for _, rec := range records {
		if rec.HasIdentity() {
			valid = append(valid, rec)
		}
	}

	result := &importer.ImportResult{TotalRows: len(valid)}
	if len(valid) == 0 {
		return result, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, rec := range valid {
		// Cooperative cancellation between rows. Nothing commits on
		// this path: the deferred rollback discards prior rows too.
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("import cancelled at row %d: %w", i+1, err)
		}

		savepoint := fmt.Sprintf("row_%d", i)
		if _, err := tx.Exec(ctx, "SAVEPOINT "+savepoint); err != nil {
			return nil, fmt.Errorf("create savepoint: %w", err)
		}

		var inserted bool
		err := tx.QueryRow(ctx, upsertSQL,
			rec.UniqueID, rec.IDCustomer, rec.CustomerName, rec.TenantName,
			rec.MallName, rec.ShipAddress, rec.BastDate, rec.PeriodStart,
			rec.PeriodEnd, rec.Period, rec.Month, rec.PricePerMonth,
			rec.StatusPayment, rec.RevLMI, rec.RevMall,
		).Scan(&inserted)
		if err != nil {
			if _, rbErr := tx.Exec(ctx, "ROLLBACK TO SAVEPOINT "+savepoint); rbErr != nil {
				return nil, fmt.Errorf("rollback savepoint after row %d: %w", i+1, rbErr)
			}
			result.ErrorCount++
			result.ErrorDetails = append(result.ErrorDetails, importer.RowError{
				RowIndex: i + 1,
				Error:    err.Error(),
				Record:   rec,
			})
			slog.Warn("row upsert failed", "row", i+1, "error", err)
			continue
		}
		if _, err := tx.Exec(ctx, "RELEASE SAVEPOINT "+savepoint); err != nil {
			return nil, fmt.Errorf("release savepoint: %w", err)
		}

		if inserted {
			result.InsertedCount++
		} else {
			result.UpdatedCount++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}

	return result, nil
}
