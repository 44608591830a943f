package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danuwp/leaserev/internal/importer"
)

var addEntry importer.ManualEntry

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one revenue record by hand",
	Long: `Insert a single record without a file. Unlike bulk import, manual
entry requires unique-id, id-customer, and customer-name; the remaining
fields accept the same loose formats the importer does (dates in ISO or
D/M/YYYY, amounts with currency noise).`,
	Example: `  leaserev add --unique-id C001|Jl. Sudirman 1|5000000 --id-customer C001 \
      --customer-name "PT Maju" --price-per-month "Rp 12.500.000" --status paid`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := addEntry.Record()
		if err != nil {
			return err
		}

		st, _, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		no, err := st.Insert(cmd.Context(), rec)
		if err != nil {
			return err
		}

		fmt.Printf("Record added with no %d\n", no)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	f := addCmd.Flags()
	f.StringVar(&addEntry.UniqueID, "unique-id", "", "Unique record key (required)")
	f.StringVar(&addEntry.IDCustomer, "id-customer", "", "Customer identifier (required)")
	f.StringVar(&addEntry.CustomerName, "customer-name", "", "Customer name (required)")
	f.StringVar(&addEntry.TenantName, "tenant-name", "", "Tenant name")
	f.StringVar(&addEntry.MallName, "mall-name", "", "Mall name")
	f.StringVar(&addEntry.ShipAddress, "ship-address", "", "Unit shipping address")
	f.StringVar(&addEntry.BastDate, "bast-date", "", "Handover (BAST) date")
	f.StringVar(&addEntry.PeriodStart, "period-start", "", "Lease period start date")
	f.StringVar(&addEntry.PeriodEnd, "period-end", "", "Lease period end date")
	f.StringVar(&addEntry.Period, "period", "", "Numeric period code")
	f.StringVar(&addEntry.Month, "month", "", "Billing month label")
	f.StringVar(&addEntry.PricePerMonth, "price-per-month", "", "Monthly price")
	f.StringVar(&addEntry.StatusPayment, "status", "", "Payment status (paid/unpaid)")
	f.StringVar(&addEntry.RevLMI, "rev-lmi", "", "LMI revenue share")
	f.StringVar(&addEntry.RevMall, "rev-mall", "", "Mall revenue share")

	_ = addCmd.MarkFlagRequired("unique-id")
	_ = addCmd.MarkFlagRequired("id-customer")
	_ = addCmd.MarkFlagRequired("customer-name")
}
