package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <no> [no...]",
	Short: "Delete revenue records by number",
	Long: `Delete one or more records by their numbers. With several numbers
the delete runs as one bulk statement and reports how many rows
actually existed.`,
	Example: `
  leaserev delete 42
  leaserev delete 42 43 44`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nos := make([]int64, 0, len(args))
		for _, arg := range args {
			no, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid record number %q", arg)
			}
			nos = append(nos, no)
		}

		st, _, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		if len(nos) == 1 {
			if err := st.Delete(cmd.Context(), nos[0]); err != nil {
				return err
			}
			fmt.Printf("Record %d deleted\n", nos[0])
			return nil
		}

		deleted, err := st.BulkDelete(cmd.Context(), nos)
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d of %d record(s)\n", deleted, len(nos))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
