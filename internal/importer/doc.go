// Package importer implements the revenue file-import pipeline: header
// normalization, user column mapping, per-cell type coercion, synthetic
// key generation, and orchestration of the batch upsert.
//
// The pipeline is storage- and transport-agnostic. It reads rows from a
// parser.Source, maps them into typed RevenueRecords, and hands the
// batch to a BatchWriter. Callers own file lifecycle: the importer only
// reads the path it is given.
package importer
