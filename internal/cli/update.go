package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danuwp/leaserev/internal/importer"
)

var updateEntry importer.ManualEntry

var updateCmd = &cobra.Command{
	Use:   "update <no>",
	Short: "Update fields of an existing record",
	Long: `Overwrite the given fields of a stored record. Flags that are not
set keep their current values; values go through the same coercion as
import, so dates and amounts accept the same loose formats.`,
	Example: `  leaserev update 42 --status paid --price-per-month 13000000`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		no, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid record number %q", args[0])
		}

		st, _, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.Close()

		current, err := st.GetByID(cmd.Context(), no)
		if err != nil {
			return err
		}

		// Fetch-and-merge: only flags the user set overwrite the stored
		// values, through the same coercers the importer uses.
		rec := current.RevenueRecord
		set := func(flag string, apply func()) {
			if cmd.Flags().Changed(flag) {
				apply()
			}
		}

		set("unique-id", func() { rec.UniqueID = importer.CleanText(updateEntry.UniqueID) })
		set("id-customer", func() { rec.IDCustomer = importer.CleanText(updateEntry.IDCustomer) })
		set("customer-name", func() { rec.CustomerName = importer.CleanText(updateEntry.CustomerName) })
		set("tenant-name", func() { rec.TenantName = importer.CleanText(updateEntry.TenantName) })
		set("mall-name", func() { rec.MallName = importer.CleanText(updateEntry.MallName) })
		set("ship-address", func() { rec.ShipAddress = importer.CleanText(updateEntry.ShipAddress) })
		set("bast-date", func() { rec.BastDate = importer.CoerceDate(updateEntry.BastDate) })
		set("period-start", func() { rec.PeriodStart = importer.CoerceDate(updateEntry.PeriodStart) })
		set("period-end", func() { rec.PeriodEnd = importer.CoerceDate(updateEntry.PeriodEnd) })
		set("period", func() { rec.Period = importer.CoercePeriod(updateEntry.Period) })
		set("month", func() { rec.Month = importer.CoerceMonth(updateEntry.Month) })
		set("price-per-month", func() { rec.PricePerMonth = importer.CoerceAmount(updateEntry.PricePerMonth) })
		set("status", func() { rec.StatusPayment = importer.CoercePaymentStatus(updateEntry.StatusPayment) })
		set("rev-lmi", func() { rec.RevLMI = importer.CoerceNullableAmount(updateEntry.RevLMI) })
		set("rev-mall", func() { rec.RevMall = importer.CoerceAmount(updateEntry.RevMall) })

		if !rec.HasIdentity() {
			return fmt.Errorf("record would lose all identifying fields")
		}

		if err := st.Update(cmd.Context(), no, rec); err != nil {
			return err
		}

		fmt.Printf("Record %d updated\n", no)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	f := updateCmd.Flags()
	f.StringVar(&updateEntry.UniqueID, "unique-id", "", "Unique record key")
	f.StringVar(&updateEntry.IDCustomer, "id-customer", "", "Customer identifier")
	f.StringVar(&updateEntry.CustomerName, "customer-name", "", "Customer name")
	f.StringVar(&updateEntry.TenantName, "tenant-name", "", "Tenant name")
	f.StringVar(&updateEntry.MallName, "mall-name", "", "Mall name")
	f.StringVar(&updateEntry.ShipAddress, "ship-address", "", "Unit shipping address")
	f.StringVar(&updateEntry.BastDate, "bast-date", "", "Handover (BAST) date")
	f.StringVar(&updateEntry.PeriodStart, "period-start", "", "Lease period start date")
	f.StringVar(&updateEntry.PeriodEnd, "period-end", "", "Lease period end date")
	f.StringVar(&updateEntry.Period, "period", "", "Numeric period code")
	f.StringVar(&updateEntry.Month, "month", "", "Billing month label")
	f.StringVar(&updateEntry.PricePerMonth, "price-per-month", "", "Monthly price")
	f.StringVar(&updateEntry.StatusPayment, "status", "", "Payment status (paid/unpaid)")
	f.StringVar(&updateEntry.RevLMI, "rev-lmi", "", "LMI revenue share")
	f.StringVar(&updateEntry.RevMall, "rev-mall", "", "Mall revenue share")
}
