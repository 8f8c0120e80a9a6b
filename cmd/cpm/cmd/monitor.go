package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/competitive-price-monitor/internal/api/client"
)

func monitorCmd() *cobra.Command {
	monitorRoot := &cobra.Command{
		Use:   "monitor",
		Short: "Trigger monitoring runs and view monitoring status",
	}

	monitorRoot.AddCommand(
		monitorRunCmd(),
		monitorCleanupCmd(),
		monitorInitCmd(),
		monitorStatsCmd(),
		monitorOverviewCmd(),
	)

	return monitorRoot
}

func monitorRunCmd() *cobra.Command {
	var (
		req       apiclient.RunRequest
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one monitoring cycle on the server",
		Example: `  cpm monitor run
  cpm monitor run --sku SKU-1 --sku SKU-2 --threshold 5
  CPM_TOKEN=secret cpm monitor run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("threshold") {
				req.ThresholdPercent = &threshold
			}
			res, err := newClient().RunMonitoring(cmd.Context(), req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			fmt.Printf("Processed %d (%d failed): %d price alerts, %d rank alerts in %s.\n",
				res.Processed, res.Failed, res.PriceAlertsCreated, res.RankAlertsCreated, res.Duration)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&req.ASINs, "asin", nil, "restrict the run to these ASINs")
	cmd.Flags().StringSliceVar(&req.SellerSKUs, "sku", nil, "restrict the run to these seller SKUs")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "minimum percentage regression that alerts")

	return cmd
}

func monitorCleanupCmd() *cobra.Command {
	var alertDays, historyDays int

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Run the retention sweep on the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().Cleanup(cmd.Context(), alertDays, historyDays)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			if err := printCleanupTable(res); err != nil {
				return err
			}
			if !res.Success {
				return fmt.Errorf("cleanup finished with errors")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&alertDays, "alert-days", 0, "dismissed alert age in days (0 uses the server policy)")
	cmd.Flags().IntVar(&historyDays, "history-days", 0, "snapshot age in days (0 uses the server policy)")

	return cmd
}

func monitorInitCmd() *cobra.Command {
	var asins []string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Record baseline snapshots",
		Long: "Records a baseline snapshot for each given ASIN from its latest price\n" +
			"observation. Without --asin every ASIN lacking a snapshot is initialized.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().InitializeMonitoring(cmd.Context(), asins)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			fmt.Printf("Initialized %d products (%d failed).\n", res.Initialized, res.Failed)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&asins, "asin", nil, "ASINs to initialize")

	return cmd
}

func monitorStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show monitoring statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := newClient().MonitoringStats(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stats)
			}
			return printMonitoringStats(stats)
		},
	}
}

func monitorOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show the competitive overview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			overview, err := newClient().CompetitiveOverview(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(overview)
			}
			return printOverview(overview)
		},
	}
}
