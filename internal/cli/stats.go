package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show record counts and total revenue",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.Stats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Total records: %d\n", stats.Total)
		fmt.Printf("Paid:          %d\n", stats.Paid)
		fmt.Printf("Unpaid:        %d\n", stats.Unpaid)
		fmt.Printf("Total revenue: %d %s/month\n", stats.TotalRevenue, cfg.Currency.Code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
