// Package main provides the ordercfg CLI application.
// ordercfg validates, inspects and generates input files for lipid
// order-parameter analysis.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
