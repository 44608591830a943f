package importer

// coerce.go converts raw cell values into typed database values.
//
// The policy throughout is lossy recovery, not rejection: an
// unparseable date degrades to NULL, non-numeric currency text is
// salvaged digit by digit, and unknown payment statuses fall back to
// Unpaid. A coercion failure is never fatal to a row; the mapping
// engine logs the loss and moves on.

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Spreadsheet day 0. Serial N maps to epoch + N days, in UTC to avoid
// timezone skew shifting the date by one.
var spreadsheetEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Serial values outside this range are treated as plain numbers, not
// dates. 40000..50000 covers roughly 2009 to 2036.
const (
	serialDateMin = 40000
	serialDateMax = 50000
)

var (
	isoDateLayout = "2006-01-02"

	// D/M/YYYY and D-M-YYYY, one or two digit day and month.
	dmyLayouts = []string{"2/1/2006", "2-1-2006"}

	// Last-resort layouts for anything else that still looks like a date.
	genericDateLayouts = []string{
		time.RFC3339,
		"2006/01/02",
		"2 Jan 2006",
		"Jan 2, 2006",
	}

	nonDigitRe = regexp.MustCompile(`[^0-9]`)
)

// CleanText trims a raw cell and converts empty-after-trim to NULL.
func CleanText(raw string) pgtype.Text {
	s := strings.TrimSpace(raw)
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

// CoerceDate converts a raw cell into a date. Accepts ISO YYYY-MM-DD,
// D/M/YYYY (rewritten), spreadsheet serial-day numbers in the
// plausible range, and a handful of generic layouts. Anything else is
// NULL; never an error.
func CoerceDate(raw string) pgtype.Date {
	s := strings.TrimSpace(raw)
	if s == "" {
		return pgtype.Date{}
	}

	if t, err := time.Parse(isoDateLayout, s); err == nil {
		return pgtype.Date{Time: t, Valid: true}
	}

	for _, layout := range dmyLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return pgtype.Date{Time: t, Valid: true}
		}
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		if n > serialDateMin && n < serialDateMax {
			t := spreadsheetEpoch.AddDate(0, 0, int(n))
			return pgtype.Date{Time: t, Valid: true}
		}
		return pgtype.Date{}
	}

	for _, layout := range genericDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return pgtype.Date{Time: t, Valid: true}
		}
	}

	return pgtype.Date{}
}

// FormatDate renders a coerced date back to ISO YYYY-MM-DD, or ""
// for NULL.
func FormatDate(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format(isoDateLayout)
}

// CoerceAmount salvages an integer amount from a currency cell by
// stripping every non-digit rune ("Rp 1.250.000" -> 1250000). Empty
// result defaults to 0. The unit (major vs minor) is a deployment
// concern, not a coercion concern.
func CoerceAmount(raw string) int64 {
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// CoerceNullableAmount is CoerceAmount for columns where absence and
// zero are distinct: an empty cell is NULL, anything else salvages.
func CoerceNullableAmount(raw string) pgtype.Int8 {
	if strings.TrimSpace(raw) == "" {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: CoerceAmount(raw), Valid: true}
}

// CoercePaymentStatus maps a raw cell onto the closed {Paid, Unpaid}
// enum. paid/yes/1/true (any case) mean Paid; everything else,
// including absent, means Unpaid.
func CoercePaymentStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "paid", "yes", "1", "true":
		return StatusPaid
	}
	return StatusUnpaid
}

// CoerceMonth trims the free-text month label and truncates it to the
// 50-character column limit.
func CoerceMonth(raw string) pgtype.Text {
	s := strings.TrimSpace(raw)
	if s == "" {
		return pgtype.Text{}
	}
	if r := []rune(s); len(r) > 50 {
		s = string(r[:50])
	}
	return pgtype.Text{String: s, Valid: true}
}

// CoercePeriod salvages the numeric period code, 0 when absent. The
// source data carried month names, numeric codes, and full dates in
// this column; the canonical representation here is the integer code.
func CoercePeriod(raw string) int64 {
	return CoerceAmount(raw)
}
