package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// rawCells asks excelize for unformatted values so date cells arrive
// as their serial-day numbers and the coercer applies one consistent
// epoch rule instead of trusting workbook display formats.
var rawCells = excelize.Options{RawCellValue: true}

// xlsxSource reads the first sheet of a workbook. Row 0 is the header
// row; fully blank rows are skipped. Header extraction and row
// iteration share one header slice, so the mapping probe and the full
// parse always agree on order and count.
type xlsxSource struct {
	file    *excelize.File
	rows    *excelize.Rows
	headers []string
}

func openWorkbook(path string) (*xlsxSource, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	sheet := file.GetSheetName(0)
	if sheet == "" {
		file.Close()
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := file.Rows(sheet)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	if !rows.Next() {
		rows.Close()
		file.Close()
		return nil, ErrEmptyFile
	}
	header, err := rows.Columns(rawCells)
	if err != nil {
		rows.Close()
		file.Close()
		return nil, fmt.Errorf("read header row: %w", err)
	}

	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = strings.TrimSpace(h)
	}

	return &xlsxSource{file: file, rows: rows, headers: headers}, nil
}

func (s *xlsxSource) Headers() []string { return s.headers }

func (s *xlsxSource) Next() (Row, error) {
	for s.rows.Next() {
		cells, err := s.rows.Columns(rawCells)
		if err != nil {
			return Row{}, fmt.Errorf("read row: %w", err)
		}
		if isBlankRow(cells) {
			continue
		}
		return makeRow(s.headers, cells), nil
	}
	if err := s.rows.Error(); err != nil {
		return Row{}, fmt.Errorf("iterate rows: %w", err)
	}
	return Row{}, io.EOF
}

func (s *xlsxSource) Close() error {
	s.rows.Close()
	return s.file.Close()
}
