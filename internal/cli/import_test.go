package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveMappingInline(t *testing.T) {
	mapping, err := resolveMapping([]string{
		"Unique ID=unique_id",
		" Customer Name = customer_name ",
	}, "")
	if err != nil {
		t.Fatal(err)
	}

	if mapping["Unique ID"] != "unique_id" {
		t.Errorf("mapping = %v", mapping)
	}
	if mapping["Customer Name"] != "customer_name" {
		t.Errorf("pair values should be trimmed: %v", mapping)
	}
}

func TestResolveMappingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.json")
	content := `{"Unique ID": "unique_id", "Harga": "price_per_month"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	mapping, err := resolveMapping(nil, path)
	if err != nil {
		t.Fatal(err)
	}
	if mapping["Harga"] != "price_per_month" {
		t.Errorf("mapping = %v", mapping)
	}
}

func TestResolveMappingInlineOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.json")
	if err := os.WriteFile(path, []byte(`{"Status": "month"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	mapping, err := resolveMapping([]string{"Status=status_payment"}, path)
	if err != nil {
		t.Fatal(err)
	}
	if mapping["Status"] != "status_payment" {
		t.Errorf("inline flag should win: %v", mapping)
	}
}

func TestResolveMappingErrors(t *testing.T) {
	if _, err := resolveMapping([]string{"no-equals-sign"}, ""); err == nil {
		t.Error("malformed pair should be rejected")
	}
	if _, err := resolveMapping(nil, ""); err == nil {
		t.Error("empty mapping should be rejected")
	}
	if _, err := resolveMapping(nil, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing map file should be rejected")
	}
}
