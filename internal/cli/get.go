package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danuwp/leaserev/internal/importer"
	"github.com/danuwp/leaserev/internal/store"
)

var getCmd = &cobra.Command{
	Use:   "get <no>",
	Short: "Show one revenue record",
	Args:  cobra.ExactArgs(1),
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

		rec, err := st.GetByID(cmd.Context(), no)
		if err != nil {
			return err
		}

		printRecord(rec)
		return nil
	},
}

func printRecord(r *store.StoredRecord) {
	fmt.Printf("No:              %d\n", r.No)
	fmt.Printf("Unique ID:       %s\n", r.UniqueID.String)
	fmt.Printf("ID Customer:     %s\n", r.IDCustomer.String)
	fmt.Printf("Customer Name:   %s\n", r.CustomerName.String)
	fmt.Printf("Tenant Name:     %s\n", r.TenantName.String)
	fmt.Printf("Mall Name:       %s\n", r.MallName.String)
	fmt.Printf("Ship Address:    %s\n", r.ShipAddress.String)
	fmt.Printf("BAST Date:       %s\n", importer.FormatDate(r.BastDate))
	fmt.Printf("Period Start:    %s\n", importer.FormatDate(r.PeriodStart))
	fmt.Printf("Period End:      %s\n", importer.FormatDate(r.PeriodEnd))
	fmt.Printf("Period:          %d\n", r.Period)
	fmt.Printf("Month:           %s\n", r.Month.String)
	fmt.Printf("Price Per Month: %d\n", r.PricePerMonth)
	fmt.Printf("Status Payment:  %s\n", r.StatusPayment)
	if r.RevLMI.Valid {
		fmt.Printf("Rev LMI:         %d\n", r.RevLMI.Int64)
	} else {
		fmt.Printf("Rev LMI:         -\n")
	}
	fmt.Printf("Rev Mall:        %d\n", r.RevMall)
}

func init() {
	rootCmd.AddCommand(getCmd)
}
