package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/danuwp/leaserev/internal/importer"
)

// Mirrors the migration. The upsert contract under test depends on the
// unique_id UNIQUE constraint and the status_payment CHECK.
const testRevenueDDL = `
	CREATE TABLE revenue (
		no              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		unique_id       TEXT UNIQUE,
		id_customer     TEXT,
		customer_name   TEXT,
		tenant_name     TEXT,
		mall_name       TEXT,
		ship_address    TEXT,
		bast_date       DATE,
		period_start    DATE,
		period_end      DATE,
		period          INTEGER NOT NULL DEFAULT 0,
		month           VARCHAR(50),
		price_per_month BIGINT NOT NULL DEFAULT 0,
		status_payment  TEXT NOT NULL DEFAULT 'Unpaid'
		                CHECK (status_payment IN ('Paid', 'Unpaid')),
		rev_lmi         BIGINT,
		rev_mall        BIGINT NOT NULL DEFAULT 0
	)`

// newTestStore connects to TEST_DATABASE_URL and builds the revenue
// table in a throwaway schema so parallel packages cannot collide.
// Skipped when the variable is unset.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		t.Fatalf("parse TEST_DATABASE_URL: %v", err)
	}

	schema := fmt.Sprintf("upsert_test_%d", time.Now().UnixNano())
	cfg.ConnConfig.RuntimeParams["search_path"] = schema

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if _, err := pool.Exec(ctx, "CREATE SCHEMA "+schema); err != nil {
		pool.Close()
		t.Fatalf("create schema: %v", err)
	}
	t.Cleanup(func() {
		pool.Exec(ctx, "DROP SCHEMA "+schema+" CASCADE")
		pool.Close()
	})

	if _, err := pool.Exec(ctx, testRevenueDDL); err != nil {
		t.Fatalf("create table: %v", err)
	}

	return New(pool)
}

func keyedRecord(uniqueID, customer string) importer.RevenueRecord {
	return importer.RevenueRecord{
		UniqueID:      pgtype.Text{String: uniqueID, Valid: uniqueID != ""},
		CustomerName:  pgtype.Text{String: customer, Valid: customer != ""},
		StatusPayment: importer.StatusUnpaid,
	}
}

func countRows(t *testing.T, s *Store) int64 {
	t.Helper()
	var n int64
	if err := s.pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM revenue").Scan(&n); err != nil {
		t.Fatal(err)
	}
	return n
}

// Re-importing the same batch must merge on unique_id: every row the
// first run inserted, the second run classifies as an update.
func TestUpsertBatchReimportClassifiesUpdates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	batch := []importer.RevenueRecord{
		keyedRecord("U-1", "PT Maju"),
		keyedRecord("U-2", "PT Sejahtera"),
		keyedRecord("U-3", "PT Abadi"),
	}

	first, err := s.UpsertBatch(ctx, batch)
	if err != nil {
		t.Fatal(err)
	}
	if first.InsertedCount != 3 || first.UpdatedCount != 0 || first.ErrorCount != 0 {
		t.Fatalf("first run = %+v, want 3 inserted", first)
	}

	second, err := s.UpsertBatch(ctx, batch)
	if err != nil {
		t.Fatal(err)
	}
	if second.InsertedCount != 0 || second.ErrorCount != 0 {
		t.Fatalf("second run = %+v, want 0 inserted", second)
	}
	if second.UpdatedCount != first.InsertedCount {
		t.Errorf("second run updated %d, want %d (first run's inserts)",
			second.UpdatedCount, first.InsertedCount)
	}

	if n := countRows(t, s); n != 3 {
		t.Errorf("table holds %d rows after re-import, want 3", n)
	}
}

// A conflicting row must update the stored values, not just be counted.
func TestUpsertBatchOverwritesOnConflict(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := keyedRecord("U-1", "PT Maju")
	rec.PricePerMonth = 1000000
	if _, err := s.UpsertBatch(ctx, []importer.RevenueRecord{rec}); err != nil {
		t.Fatal(err)
	}

	rec.PricePerMonth = 2500000
	rec.StatusPayment = importer.StatusPaid
	if _, err := s.UpsertBatch(ctx, []importer.RevenueRecord{rec}); err != nil {
		t.Fatal(err)
	}

	var price int64
	var status string
	err := s.pool.QueryRow(ctx,
		"SELECT price_per_month, status_payment FROM revenue WHERE unique_id = 'U-1'",
	).Scan(&price, &status)
	if err != nil {
		t.Fatal(err)
	}
	if price != 2500000 || status != importer.StatusPaid {
		t.Errorf("stored row = %d/%s, want updated values", price, status)
	}
}

// One bad row in five: its savepoint rolls back, the other four
// commit, and the result reports exactly that row.
func TestUpsertBatchPartialFailure(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	bad := keyedRecord("U-3", "PT Gagal")
	bad.StatusPayment = "Overdue" // violates the status CHECK

	batch := []importer.RevenueRecord{
		keyedRecord("U-1", "PT Satu"),
		keyedRecord("U-2", "PT Dua"),
		bad,
		keyedRecord("U-4", "PT Empat"),
		keyedRecord("U-5", "PT Lima"),
	}

	result, err := s.UpsertBatch(ctx, batch)
	if err != nil {
		t.Fatal(err)
	}

	if result.InsertedCount != 4 {
		t.Errorf("InsertedCount = %d, want 4", result.InsertedCount)
	}
	if result.ErrorCount != 1 || len(result.ErrorDetails) != 1 {
		t.Fatalf("ErrorCount = %d, ErrorDetails = %d, want exactly 1",
			result.ErrorCount, len(result.ErrorDetails))
	}
	if result.ErrorDetails[0].RowIndex != 3 {
		t.Errorf("failed RowIndex = %d, want 3", result.ErrorDetails[0].RowIndex)
	}
	if result.ErrorDetails[0].Record.UniqueID.String != "U-3" {
		t.Errorf("failed record = %+v, want U-3", result.ErrorDetails[0].Record)
	}
	if result.TotalRows != 5 {
		t.Errorf("TotalRows = %d, want 5", result.TotalRows)
	}

	if n := countRows(t, s); n != 4 {
		t.Errorf("table holds %d rows, want the 4 good ones committed", n)
	}
}

// Rows without a unique_id never hit the conflict target, so repeated
// imports insert fresh rows every time.
func TestUpsertBatchNullKeyAlwaysInserts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	batch := []importer.RevenueRecord{
		keyedRecord("", "PT Tanpa Kunci"),
		keyedRecord("", "PT Tanpa Kunci"),
	}

	for run := 1; run <= 2; run++ {
		result, err := s.UpsertBatch(ctx, batch)
		if err != nil {
			t.Fatal(err)
		}
		if result.InsertedCount != 2 || result.UpdatedCount != 0 {
			t.Fatalf("run %d = %+v, want 2 inserted", run, result)
		}
	}

	if n := countRows(t, s); n != 4 {
		t.Errorf("table holds %d rows, want 4 (NULL keys never merge)", n)
	}
}

// Cancellation rolls back the whole batch, including rows already
// upserted before the cancel.
func TestUpsertBatchCancelled(t *testing.T) {
	s := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.UpsertBatch(ctx, []importer.RevenueRecord{keyedRecord("U-1", "PT Maju")})
	if err == nil {
		t.Fatal("cancelled batch should fail")
	}

	if n := countRows(t, s); n != 0 {
		t.Errorf("table holds %d rows after cancelled batch, want 0", n)
	}
}

// The identity filter runs before any database work, so a batch with
// nothing importable succeeds without a connection.
func TestUpsertBatchFiltersUnidentifiedRows(t *testing.T) {
	s := &Store{}

	result, err := s.UpsertBatch(context.Background(), []importer.RevenueRecord{
		{StatusPayment: importer.StatusUnpaid},
		{StatusPayment: importer.StatusUnpaid},
	})
	if err != nil {
		t.Fatal(err)
	}
	if result.TotalRows != 0 || result.InsertedCount != 0 || result.ErrorCount != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}
