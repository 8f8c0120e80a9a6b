package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func jobsCmd() *cobra.Command {
	jobsRoot := &cobra.Command{
		Use:   "jobs",
		Short: "Inspect scheduled jobs",
		Long: "Inspect the scheduled monitoring, cleanup and notify jobs: when each\n" +
			"last ran, how it finished and when it runs next.",
	}

	jobsRoot.AddCommand(
		jobsListCmd(),
		jobsHistoryCmd(),
	)

	return jobsRoot
}

func jobsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the last and next run of each job",
		Example: `  cpm jobs list
  cpm jobs list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, err := newClient().ListJobs(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(jobs)
			}
			if len(jobs) == 0 {
				_, err := fmt.Fprintln(stdout, "No jobs have run and the scheduler is disabled.")
				return err
			}
			return printJobSummaries(jobs)
		},
	}
}

func jobsHistoryCmd() *cobra.Command {
	var (
		limit  int
		status string
	)

	cmd := &cobra.Command{
		Use:       "history <monitoring|cleanup|notify>",
		Short:     "Show run history for a job",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"monitoring", "cleanup", "notify"},
		Example: `  cpm jobs history monitoring
  cpm jobs history cleanup --status failed --limit 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := newClient().GetJobHistory(cmd.Context(), args[0], status, limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				_, err := fmt.Fprintf(stdout, "No runs found for job %q.\n", args[0])
				return err
			}
			return printJobRunsTable(runs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs")
	cmd.Flags().StringVar(&status, "status", "", "only runs with this status (running, succeeded, failed, crashed)")

	return cmd
}
