// Package main generates CLI reference documentation for the cpm and
// competitive-price-monitor command trees.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	server "github.com/donaldgifford/competitive-price-monitor/cmd/competitive-price-monitor/cmd"
	cpm "github.com/donaldgifford/competitive-price-monitor/cmd/cpm/cmd"
)

func main() {
	output := flag.String("output", "docs/cli", "output directory for generated markdown")
	flag.Parse()

	trees := map[string]*cobra.Command{
		"cpm":    cpm.Root(),
		"server": server.Root(),
	}

	for dir, root := range trees {
		if err := generate(root, filepath.Join(*output, dir)); err != nil {
			log.Fatalf("generating %s docs: %v", dir, err)
		}
	}

	fmt.Printf("CLI docs generated in %s/\n", *output)
}

func generate(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	root.DisableAutoGenTag = true
	return doc.GenMarkdownTree(root, dir)
}
