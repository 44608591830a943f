package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danuwp/leaserev/internal/importer"
	"github.com/danuwp/leaserev/internal/parser"
)

var (
	importFile     string
	importMappings []string
	importMapFile  string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a CSV or Excel revenue sheet",
	Long: `Read a billing sheet, map its columns onto revenue fields, and upsert
the rows into the database in one transaction.

The column mapping is declared per run, either with repeated -m flags
("Source Header=target_field") or a JSON map file. Source headers are
matched tolerantly: BOM, case, punctuation, and whitespace differences
between the declared header and the file are ignored.

Rows keyed by an existing unique_id are updated in place; rows without
a unique_id get a synthetic one from id_customer, ship_address, and
rev_lmi when all three are present. Rows with none of customer_name,
unique_id, or id_customer are dropped. A row that fails at the database
is reported and skipped without aborting the batch.`,
	Example: `
  # Semicolon-delimited CSV with inline mapping
  leaserev import -f january.csv -m "Unique ID=unique_id" -m "Customer=customer_name" -m "Harga=price_per_month"

  # Excel workbook with a mapping file
  leaserev import -f january.xlsx --map-file mapping.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mapping, err := resolveMapping(importMappings, importMapFile)
		if err != nil {
			return err
		}

		st, cfg, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Import.Timeout)
		defer cancel()

		svc := importer.NewService(st, parser.Options{Delimiter: cfg.Import.Delimiter()})
		result, err := svc.Run(ctx, importFile, mapping)
		if err != nil {
			return err
		}

		fmt.Printf("Import %s completed. Rows: %d, Inserted: %d, Updated: %d, Failed: %d\n",
			result.ImportID, result.TotalRows, result.InsertedCount, result.UpdatedCount, result.ErrorCount)
		for _, re := range result.ErrorDetails {
			fmt.Printf("  row %d: %s\n", re.RowIndex, re.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Input file (.csv, .xlsx, .xls)")
	importCmd.Flags().StringArrayVarP(&importMappings, "map", "m", nil, `Column mapping "Source Header=target_field" (repeatable)`)
	importCmd.Flags().StringVar(&importMapFile, "map-file", "", "JSON file mapping source headers to target fields")

	_ = importCmd.MarkFlagRequired("file")
}

// resolveMapping merges --map-file and -m flags into one mapping;
// inline flags win on conflict.
func resolveMapping(inline []string, mapFile string) (importer.ColumnMapping, error) {
	mapping := importer.ColumnMapping{}

	if mapFile != "" {
		data, err := os.ReadFile(mapFile)
		if err != nil {
			return nil, fmt.Errorf("read mapping file: %w", err)
		}
		if err := json.Unmarshal(data, &mapping); err != nil {
			return nil, fmt.Errorf("parse mapping file %s: %w", mapFile, err)
		}
	}

	for _, pair := range inline {
		src, target, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid mapping %q (expected \"Source Header=target_field\")", pair)
		}
		mapping[strings.TrimSpace(src)] = strings.TrimSpace(target)
	}

	if len(mapping) == 0 {
		return nil, fmt.Errorf("no column mapping given (use -m or --map-file)")
	}
	return mapping, nil
}
