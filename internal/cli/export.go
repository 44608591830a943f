package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danuwp/leaserev/internal/output"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all revenue records to an Excel workbook",
	Long: `Write every stored record, newest first, to a single-sheet .xlsx
workbook. Dates render as ISO strings and NULL columns as empty cells.`,
	Example: `  leaserev export -o revenue.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.ExportAll(cmd.Context())
		if err != nil {
			return err
		}

		writer := &output.ExcelWriter{}
		if err := writer.Write(exportOutput, records); err != nil {
			return err
		}

		fmt.Printf("Exported %d record(s) to %s\n", len(records), exportOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "./revenue.xlsx", "Output workbook path")
}
