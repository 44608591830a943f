package importer

import "testing"

func TestSyntheticID(t *testing.T) {
	tests := []struct {
		name        string
		idCustomer  string
		shipAddress string
		revLmi      int64
		want        string
		wantOK      bool
	}{
		{
			name:        "all parts present",
			idCustomer:  "C001",
			shipAddress: "Jl. Sudirman 1",
			revLmi:      5000000,
			want:        "C001|Jl. Sudirman 1|5000000",
			wantOK:      true,
		},
		{
			name:        "missing customer id",
			shipAddress: "Jl. Sudirman 1",
			revLmi:      5000000,
			wantOK:      false,
		},
		{
			name:       "missing address",
			idCustomer: "C001",
			revLmi:     5000000,
			wantOK:     false,
		},
		{
			name:        "zero rev_lmi counts as absent",
			idCustomer:  "C001",
			shipAddress: "Jl. Sudirman 1",
			revLmi:      0,
			wantOK:      false,
		},
		{
			name:        "whitespace-only parts count as absent",
			idCustomer:  "  ",
			shipAddress: "Jl. Sudirman 1",
			revLmi:      5000000,
			wantOK:      false,
		},
		{
			name:        "parts are trimmed before joining",
			idCustomer:  " C001 ",
			shipAddress: " Jl. Sudirman 1 ",
			revLmi:      42,
			want:        "C001|Jl. Sudirman 1|42",
			wantOK:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SyntheticID(tt.idCustomer, tt.shipAddress, tt.revLmi)
			if ok != tt.wantOK {
				t.Fatalf("SyntheticID ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("SyntheticID = %q, want %q", got, tt.want)
			}
		})
	}
}

// The delimiter exists to keep adjacent parts from running together:
// ("AB", "C") and ("A", "BC") must produce distinct keys.
func TestSyntheticIDNoConcatenationCollision(t *testing.T) {
	a, _ := SyntheticID("AB", "C addr", 1)
	b, _ := SyntheticID("A", "BC addr", 1)
	if a == b {
		t.Errorf("distinct inputs collided: %q", a)
	}
}

func TestSyntheticIDDeterministic(t *testing.T) {
	first, _ := SyntheticID("C001", "Jl. Sudirman 1", 5000000)
	for i := 0; i < 10; i++ {
		again, _ := SyntheticID("C001", "Jl. Sudirman 1", 5000000)
		if again != first {
			t.Fatalf("SyntheticID not deterministic: %q vs %q", first, again)
		}
	}
}
