package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func alertsCmd() *cobra.Command {
	alertsRoot := &cobra.Command{
		Use:   "alerts",
		Short: "Review and triage alerts",
	}

	alertsRoot.AddCommand(
		alertsListCmd(),
		alertsReadCmd(),
		alertsDismissCmd(),
		alertsStatsCmd(),
		alertsRankingCmd(),
	)

	return alertsRoot
}

func alertsListCmd() *cobra.Command {
	var (
		filter string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts, newest first",
		Example: `  cpm alerts list
  cpm alerts list --filter unread --limit 20
  cpm alerts list --filter rank_alerts --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := newClient().ListAlerts(cmd.Context(), filter, limit, offset)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(page)
			}
			fmt.Printf("%d total, %d unread, %d high priority, %d rank, %d price\n\n",
				page.Counts.Total, page.Counts.Unread, page.Counts.HighPriority,
				page.Counts.RankAlerts, page.Counts.PriceAlerts)
			if len(page.Alerts) == 0 {
				fmt.Println("No alerts found.")
				return nil
			}
			return printAlertsTable(page.Alerts)
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "all", "all, unread, high_priority, rank_alerts or price_alerts")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")

	return cmd
}

func alertsReadCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "read [id]",
		Short: "Mark an alert, or every alert, as read",
		Args:  cobra.MaximumNArgs(1),
		Example: `  cpm alerts read 7c9e6679-7425-40de-944b-e07fc1f90ae7
  cpm alerts read --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			switch {
			case all:
				res, err := c.MarkAllAlertsRead(cmd.Context())
				if err != nil {
					return err
				}
				return printResult(res)
			case len(args) == 1:
				res, err := c.MarkAlertRead(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printResult(res)
			default:
				return fmt.Errorf("an alert id or --all is required")
			}
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "mark every unread alert as read")

	return cmd
}

func alertsDismissCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss <id>...",
		Short: "Dismiss one or more alerts",
		Args:  cobra.MinimumNArgs(1),
		Example: `  cpm alerts dismiss 7c9e6679-7425-40de-944b-e07fc1f90ae7
  cpm alerts dismiss <id> <id> <id>`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			if len(args) == 1 {
				res, err := c.DismissAlert(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printResult(res)
			}
			res, err := c.DismissAlerts(cmd.Context(), args)
			if err != nil {
				return err
			}
			return printResult(res)
		},
	}
}

func alertsStatsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show alert statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := newClient().AlertStatistics(cmd.Context(), days)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stats)
			}
			return printAlertStatistics(stats)
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "window in days")

	return cmd
}

func alertsRankingCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "ranking-issues",
		Short: "List unresolved rank alerts, worst first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			alerts, err := newClient().RankingIssues(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(alerts)
			}
			if len(alerts) == 0 {
				fmt.Println("No ranking issues.")
				return nil
			}
			return printAlertsTable(alerts)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of results")

	return cmd
}
