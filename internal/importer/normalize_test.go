package importer

import "testing"

func TestNormalizeHeader(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
	}{
		{
			name:  "already canonical",
			input: "id_customer",
			want:  "id_customer",
		},
		{
			name:  "spaces and case",
			input: "Price Per Month",
			want:  "price_per_month",
		},
		{
			name:  "leading BOM",
			input: "\uFEFFUnique ID",
			want:  "unique_id",
		},
		{
			name:  "carriage return from CRLF header row",
			input: "Customer Name\r",
			want:  "customer_name",
		},
		{
			name:  "non-breaking spaces",
			input: "Ship\u00A0Address",
			want:  "ship_address",
		},
		{
			name:  "parentheses and periods dropped",
			input: "Rev. (LMI)",
			want:  "rev_lmi",
		},
		{
			name:  "whitespace runs collapse to one underscore",
			input: "  Mall   Name  ",
			want:  "mall_name",
		},
		{
			name:  "tabs count as whitespace",
			input: "Period\tStart",
			want:  "period_start",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only decoration",
			input: " (.) ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeHeader(tt.input); got != tt.want {
				t.Errorf("NormalizeHeader(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Headers that differ only in decoration must land on the same key,
// otherwise the mapping engine cannot match user-declared headers
// against what the file actually carries.
func TestNormalizeHeaderEquivalence(t *testing.T) {
	groups := [][]string{
		{"price_per_month", "Price Per Month", " price.per.month ", "PRICE  PER  MONTH\r"},
		{"unique_id", "\uFEFFUnique ID", "Unique ID"},
		{"rev_lmi", "Rev (LMI)", "rev. lmi"},
	}

	for _, group := range groups {
		want := NormalizeHeader(group[0])
		for _, h := range group[1:] {
			if got := NormalizeHeader(h); got != want {
				t.Errorf("NormalizeHeader(%q) = %q, want %q (same as %q)", h, got, want, group[0])
			}
		}
	}
}
