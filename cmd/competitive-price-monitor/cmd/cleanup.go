package cmd

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
)

func cleanupCommand() *cobra.Command {
	var alertDays, historyDays int

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Run the retention sweep once and exit",
		Long: "Deletes aged observations, dismissed alerts, snapshots, comparison history\n" +
			"and finished job runs. Zero day values use the configured retention policy.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			res := a.engine.Cleanup(cmd.Context(), alertDays, historyDays)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}
			if res.Failed() {
				return errors.New("cleanup finished with errors")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&alertDays, "alert-days", 0, "dismissed alert age in days")
	cmd.Flags().IntVar(&historyDays, "history-days", 0, "snapshot age in days")

	return cmd
}

func init() {
	rootCmd.AddCommand(cleanupCommand())
}
