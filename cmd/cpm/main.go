// Package main is the entry point for the cpm CLI client.
package main

import (
	"github.com/donaldgifford/competitive-price-monitor/cmd/cpm/cmd"
)

func main() {
	cmd.Execute()
}
