package main

import (
	"encoding/json"
	"fmt"
	types "rsutax/api-types"
	"rsutax/internal/domain"
	"rsutax/internal/service"
	"rsutax/internal/util"

	"github.com/spf13/cobra"
)

func newComputeCommand(opts *rootOptions) *cobra.Command {
	var (
		quantity  int64
		grantDate string
		vestValue float64
		sellDate  string
		sellValue float64
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the taxes owed on one grant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			granted, err := util.ParseDate(grantDate)
			if err != nil {
				return err
			}
			sold, err := util.ParseDate(sellDate)
			if err != nil {
				return err
			}

			grant := domain.Grant{
				Quantity:      quantity,
				GrantDate:     granted,
				VestUnitValue: domain.EUR(vestValue),
				SellDate:      sold,
				SellUnitValue: domain.EUR(sellValue),
			}

			report, err := service.NewTaxService(opts.rates, opts.logger).
				ComputeTaxReport(cmd.Context(), grant, domain.MarginalRate(opts.tmi))
			if err != nil {
				opts.logger.Errorf("%s: can't compute taxes", err)
				return err
			}

			bytes, err := json.MarshalIndent(types.NewTaxReportResponse(*report), "", "    ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bytes))
			return nil
		},
	}

	cmd.Flags().Int64VarP(&quantity, "quantity", "n", 0, "number of RSUs")
	cmd.Flags().StringVar(&grantDate, "grant-date", "", "grant date, YYYY-MM-DD")
	cmd.Flags().Float64Var(&vestValue, "vest-value", 0, "value of one unit at vesting")
	cmd.Flags().StringVar(&sellDate, "sell-date", "", "sell date, YYYY-MM-DD")
	cmd.Flags().Float64Var(&sellValue, "sell-value", 0, "value of one unit at sale")
	for _, f := range []string{"quantity", "grant-date", "vest-value", "sell-date", "sell-value"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}
