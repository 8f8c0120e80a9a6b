package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/competitive-price-monitor/internal/api/client"
)

func mappingsCmd() *cobra.Command {
	mappingsRoot := &cobra.Command{
		Use:   "mappings",
		Short: "Manage competitor mappings",
	}

	mappingsRoot.AddCommand(
		mappingsListCmd(),
		mappingsSaveCmd(),
	)

	return mappingsRoot
}

func mappingsListCmd() *cobra.Command {
	var sku, asin string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active mappings for a seller SKU or ASIN",
		Example: `  cpm mappings list --sku SKU-1
  cpm mappings list --asin B0EXAMPLE1`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if sku == "" && asin == "" {
				return fmt.Errorf("--sku or --asin is required")
			}
			mappings, err := newClient().ListMappings(cmd.Context(), sku, asin)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(mappings)
			}
			if len(mappings) == 0 {
				fmt.Println("No mappings found.")
				return nil
			}
			return printMappingsTable(mappings)
		},
	}
	cmd.Flags().StringVar(&sku, "sku", "", "our seller SKU")
	cmd.Flags().StringVar(&asin, "asin", "", "our ASIN")

	return cmd
}

func mappingsSaveCmd() *cobra.Command {
	var (
		req      apiclient.MappingRequest
		inactive bool
	)

	cmd := &cobra.Command{
		Use:   "save <seller_sku> <competitor_asin>",
		Short: "Create or update a competitor mapping",
		Args:  cobra.ExactArgs(2),
		Example: `  cpm mappings save SKU-1 B0COMP0001 --priority 1 --reason "same capacity"
  cpm mappings save SKU-1 B0COMP0001 --inactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.OurSellerSKU = args[0]
			req.CompetitorASIN = args[1]
			active := !inactive
			req.IsActive = &active

			m, err := newClient().SaveMapping(cmd.Context(), req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(m)
			}
			fmt.Printf("Saved mapping %s: %s -> %s (priority %d, active %v).\n",
				m.ID, m.OurSellerSKU, m.CompetitorASIN, m.Priority, m.IsActive)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.OurASIN, "our-asin", "", "our ASIN for the SKU")
	cmd.Flags().IntVar(&req.Priority, "priority", 2, "1 (highest) to 3")
	cmd.Flags().StringVar(&req.Reason, "reason", "", "why this competitor is mapped")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "save the mapping as inactive")

	return cmd
}
