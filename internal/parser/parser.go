// Package parser provides format-agnostic row sources for the import
// pipeline. Each adapter turns a file into an ordered sequence of rows
// of named cells, so the mapping engine never cares whether the upload
// was delimited text or a spreadsheet.
package parser

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for extensions other than
	// .csv, .xlsx, .xls.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyFile is returned when a file has no header row.
	ErrEmptyFile = errors.New("file has no header row")
)

// DefaultDelimiter is the field separator the business data uses.
const DefaultDelimiter = ';'

// Options tunes adapter behavior. The zero value is usable.
type Options struct {
	// Delimiter for delimited-text files. 0 means DefaultDelimiter.
	Delimiter rune
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return DefaultDelimiter
	}
	return o.Delimiter
}

// Row is one data row: raw cell values aligned with the source's
// header order. Values shorter than Headers are padded with ""; extra
// trailing cells are dropped. Header order is preserved so that
// normalized-header ties resolve deterministically to the first match.
type Row struct {
	Headers []string
	Values  []string
}

// Source is a forward-only, single-pass reader of data rows. Next
// returns io.EOF after the last row. Sources are not safe for
// concurrent use and cannot be restarted.
type Source interface {
	Headers() []string
	Next() (Row, error)
	Close() error
}

// Open selects an adapter by file extension.
func Open(path string, opts Options) (Source, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return openCSV(path, opts.delimiter())
	case ".xlsx", ".xls":
		return openWorkbook(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// DetectHeaders is the read-only probe behind the mapping UI: it
// returns the source headers from the first row without touching any
// data rows.
func DetectHeaders(path string, opts Options) ([]string, error) {
	src, err := Open(path, opts)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return src.Headers(), nil
}

// makeRow pads or trims values to the header count.
func makeRow(headers, values []string) Row {
	if len(values) < len(headers) {
		padded := make([]string, len(headers))
		copy(padded, values)
		values = padded
	} else if len(values) > len(headers) {
		values = values[:len(headers)]
	}
	return Row{Headers: headers, Values: values}
}

// isBlankRow reports whether every cell is empty after trimming.
func isBlankRow(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
