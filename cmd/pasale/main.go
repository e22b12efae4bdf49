// Package main is the entry point for the pasale CLI.
package main

import (
	"os"

	"github.com/SscSPs/pasale_ledger/cmd/pasale/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
