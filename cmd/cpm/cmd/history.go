package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/competitive-price-monitor/internal/export"
	domain "github.com/donaldgifford/competitive-price-monitor/pkg/types"
)

type historyFetcher func(ctx context.Context, asin string, days, limit int) ([]domain.Snapshot, error)

func historyCmd() *cobra.Command {
	historyRoot := &cobra.Command{
		Use:   "history",
		Short: "Inspect and export price and rank history",
	}

	historyRoot.AddCommand(
		historyShowCmd("prices", "Show price history for an ASIN"),
		historyShowCmd("ranks", "Show rank history for an ASIN"),
		historyExportCmd(),
	)

	return historyRoot
}

func fetcherFor(kind string) historyFetcher {
	c := newClient()
	if kind == "ranks" {
		return c.RankHistory
	}
	return c.PriceHistory
}

func historyShowCmd(kind, short string) *cobra.Command {
	var days, limit int

	cmd := &cobra.Command{
		Use:     kind + " <asin>",
		Short:   short,
		Args:    cobra.ExactArgs(1),
		Example: "  cpm history " + kind + " B0EXAMPLE1 --days 7",
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := fetcherFor(kind)(cmd.Context(), args[0], days, limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(points)
			}
			if len(points) == 0 {
				fmt.Printf("No %s history for %s.\n", kind[:len(kind)-1], args[0])
				return nil
			}
			return printHistoryTable(points)
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "window in days")
	cmd.Flags().IntVar(&limit, "limit", 100, "number of points")

	return cmd
}

func historyExportCmd() *cobra.Command {
	var (
		ranks bool
		days  int
		opts  export.Options
	)

	cmd := &cobra.Command{
		Use:   "export <asin>",
		Short: "Export history as CSV and/or a PNG chart",
		Args:  cobra.ExactArgs(1),
		Example: `  cpm history export B0EXAMPLE1 --csv prices.csv
  cpm history export B0EXAMPLE1 --ranks --png ranks.png --max-points 200`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, title := "prices", "Price history "+args[0]
			if ranks {
				kind, title = "ranks", "Rank history "+args[0]
			}

			points, err := fetcherFor(kind)(cmd.Context(), args[0], days, 1000)
			if err != nil {
				return err
			}
			if err := export.Export(opts, title, points); err != nil {
				return err
			}

			fmt.Printf("Exported %d points for %s.\n", len(points), args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&ranks, "ranks", false, "export rank history instead of prices")
	cmd.Flags().IntVar(&days, "days", 30, "window in days")
	cmd.Flags().StringVar(&opts.CSVPath, "csv", "", "CSV output path")
	cmd.Flags().StringVar(&opts.PNGPath, "png", "", "PNG chart output path")
	cmd.Flags().IntVar(&opts.MaxPoints, "max-points", 0, "downsample to at most this many points")

	return cmd
}
