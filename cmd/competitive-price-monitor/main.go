// Package main is the entry point for the competitive-price-monitor server.
package main

import (
	"os"

	"github.com/donaldgifford/competitive-price-monitor/cmd/competitive-price-monitor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
