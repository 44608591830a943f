package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danuwp/leaserev/internal/parser"
)

// ErrNoData is returned when a file parses cleanly but yields no
// importable rows after mapping and the drop rule.
var ErrNoData = errors.New("no importable rows in file")

// BatchWriter persists a mapped batch. Implemented by the store's
// upsert writer; an interface here keeps the pipeline testable without
// a database.
type BatchWriter interface {
	UpsertBatch(ctx context.Context, records []RevenueRecord) (*ImportResult, error)
}

// Service ties the pipeline together: parse, map, write.
//
// Concurrency contract: two imports that may generate colliding
// synthetic keys are not safe against the same table at the same time.
// The caller serializes import jobs; the service does not lock.
type Service struct {
	writer BatchWriter
	opts   parser.Options
}

// NewService builds an import service over the given writer.
func NewService(w BatchWriter, opts parser.Options) *Service {
	return &Service{writer: w, opts: opts}
}

// ProbeResult is the header-discovery answer for the mapping UI: the
// headers found in the file plus the target fields they may bind to.
type ProbeResult struct {
	SourceHeaders []string
	TargetFields  []string
}

// Probe inspects a file without mutating anything. It runs before the
// mapping/write pipeline so a human can declare the column mapping.
func (s *Service) Probe(path string) (*ProbeResult, error) {
	headers, err := parser.DetectHeaders(path, s.opts)
	if err != nil {
		return nil, err
	}
	return &ProbeResult{SourceHeaders: headers, TargetFields: TargetFields()}, nil
}

// Run executes one import: stream the file, map each row, upsert the
// batch. Row order is preserved end to end. A parse failure is fatal
// and writes nothing; per-row storage failures are collected in the
// result and never abort the batch.
//
// The caller deletes the uploaded file afterwards; Run only reads it.
func (s *Service) Run(ctx context.Context, path string, mapping ColumnMapping) (*ImportResult, error) {
	importID := uuid.New().String()
	log := slog.Default().With("import_id", importID, "file", path)
	start := time.Now()

	mapper, err := NewMapper(mapping)
	if err != nil {
		return nil, err
	}

	src, err := parser.Open(path, s.opts)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	var records []RevenueRecord
	read := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("import cancelled: %w", err)
		}

		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		read++

		if rec, ok := mapper.MapRow(row); ok {
			records = append(records, rec)
		}
	}

	if len(records) == 0 {
		return nil, ErrNoData
	}

	result, err := s.writer.UpsertBatch(ctx, records)
	if err != nil {
		return nil, err
	}
	result.ImportID = importID

	log.Info("import finished",
		"rows_read", read,
		"rows_mapped", len(records),
		"inserted", result.InsertedCount,
		"updated", result.UpdatedCount,
		"errors", result.ErrorCount,
		"coercion_warnings", mapper.CoercionWarnings,
		"duration", time.Since(start),
	)

	return result, nil
}
