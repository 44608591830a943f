package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danuwp/leaserev/internal/importer"
	"github.com/danuwp/leaserev/internal/parser"
)

var headersFile string

var headersCmd = &cobra.Command{
	Use:   "headers",
	Short: "Show a file's column headers and the available target fields",
	Long: `Inspect an import file without writing anything: print the headers
found in its first row alongside the target fields a mapping may bind
them to. Use the output to build the -m flags or map file for import.`,
	Example: `  leaserev headers -f january.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := importer.NewService(nil, probeOptions())
		probe, err := svc.Probe(headersFile)
		if err != nil {
			return err
		}

		fmt.Println("Source headers:")
		for _, h := range probe.SourceHeaders {
			fmt.Printf("  %s\n", h)
		}
		fmt.Println("Target fields:")
		for _, f := range probe.TargetFields {
			fmt.Printf("  %s\n", f)
		}
		return nil
	},
}

// probeOptions takes the delimiter from config when one loads. Probing
// needs no database, so a config failure only means the default
// delimiter, but it is logged so an ignored IMPORT_CSV_DELIMITER can
// be traced.
func probeOptions() parser.Options {
	cfg, err := loadConfig()
	if err != nil {
		slog.Debug("config unavailable, probing with default delimiter", "error", err)
		return parser.Options{}
	}
	return parser.Options{Delimiter: cfg.Import.Delimiter()}
}

func init() {
	rootCmd.AddCommand(headersCmd)

	headersCmd.Flags().StringVarP(&headersFile, "file", "f", "", "Input file (.csv, .xlsx, .xls)")
	_ = headersCmd.MarkFlagRequired("file")
}
