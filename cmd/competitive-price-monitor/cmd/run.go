package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func runCommand() *cobra.Command {
	var (
		asins     []string
		skus      []string
		threshold float64
		notify    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one monitoring cycle and exit",
		Long: "Compares our prices and ranks against mapped competitors once, using the\n" +
			"configured product selection unless --asin or --sku is given.",
		Example: `  competitive-price-monitor run
  competitive-price-monitor run --sku SKU-1 --threshold 5 --notify`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			runCfg := a.runConfig()
			if len(asins) > 0 || len(skus) > 0 {
				runCfg.Selection.ASINs = asins
				runCfg.Selection.SellerSKUs = skus
			}
			if cmd.Flags().Changed("threshold") {
				runCfg.ThresholdPercent = decimal.NewFromFloat(threshold)
			}

			res, err := a.engine.RunMonitoringCycle(cmd.Context(), runCfg)
			if err != nil {
				return fmt.Errorf("monitoring cycle: %w", err)
			}

			if notify {
				sent, err := a.engine.DispatchNotifications(cmd.Context())
				if err != nil {
					return fmt.Errorf("dispatching notifications: %w", err)
				}
				a.log.Info("notifications dispatched", "sent", sent)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().StringSliceVar(&asins, "asin", nil, "restrict the run to these ASINs")
	cmd.Flags().StringSliceVar(&skus, "sku", nil, "restrict the run to these seller SKUs")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "minimum percentage regression that alerts")
	cmd.Flags().BoolVar(&notify, "notify", false, "dispatch pending notifications after the run")

	return cmd
}

func init() {
	rootCmd.AddCommand(runCommand())
}
