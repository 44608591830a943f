package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/danuwp/leaserev/internal/importer"
	"github.com/danuwp/leaserev/internal/store"
)

var listFilter store.Filter

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List revenue records",
	Long: `List stored records, optionally filtered. Name and status filters
match case-insensitive substrings and combine with AND; --search
matches any identifying column and needs at least two characters.`,
	Example: `
  leaserev list
  leaserev list --mall "Central Park" --status unpaid
  leaserev list --search sudirman`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if s := listFilter.Search; s != "" && len([]rune(s)) < 2 {
			return fmt.Errorf("--search needs at least 2 characters")
		}

		st, _, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		records, err := st.List(cmd.Context(), listFilter)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No records found.")
			return nil
		}

		printRecords(records)
		fmt.Printf("%d record(s)\n", len(records))
		return nil
	},
}

func printRecords(records []store.StoredRecord) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NO\tUNIQUE ID\tCUSTOMER\tTENANT\tMALL\tPERIOD\tMONTH\tPRICE/MONTH\tSTATUS")
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%d\t%s\n",
			r.No, r.UniqueID.String, r.CustomerName.String, r.TenantName.String,
			r.MallName.String, r.Period, r.Month.String, r.PricePerMonth, r.StatusPayment)
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(listCmd)

	f := listCmd.Flags()
	f.StringVar(&listFilter.IDCustomer, "id-customer", "", "Filter by customer identifier")
	f.StringVar(&listFilter.CustomerName, "customer", "", "Filter by customer name")
	f.StringVar(&listFilter.TenantName, "tenant", "", "Filter by tenant name")
	f.StringVar(&listFilter.MallName, "mall", "", "Filter by mall name")
	f.StringVar(&listFilter.Period, "period", "", "Filter by period code")
	f.StringVar(&listFilter.StatusPayment, "status", "", "Filter by payment status ("+importer.StatusPaid+"/"+importer.StatusUnpaid+")")
	f.StringVar(&listFilter.Search, "search", "", "Search across identifying columns (min 2 characters)")
}
