package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// csvSource streams a delimited-text file row by row. Memory stays
// proportional to one row regardless of file size.
type csvSource struct {
	f       *os.File
	r       *csv.Reader
	headers []string
}

func openCSV(path string, delimiter rune) (*csvSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}

	r := csv.NewReader(wrapImportReader(f))
	r.Comma = delimiter
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		f.Close()
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = strings.TrimSpace(h)
	}

	return &csvSource{f: f, r: r, headers: headers}, nil
}

func (s *csvSource) Headers() []string { return s.headers }

func (s *csvSource) Next() (Row, error) {
	for {
		record, err := s.r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Row{}, io.EOF
			}
			return Row{}, fmt.Errorf("read csv row: %w", err)
		}
		if isBlankRow(record) {
			continue
		}
		return makeRow(s.headers, record), nil
	}
}

func (s *csvSource) Close() error { return s.f.Close() }
