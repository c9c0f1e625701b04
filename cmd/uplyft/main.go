// Package main is the entry point for the uplyft CLI.
package main

import (
	"os"

	"github.com/jmylchreest/uplyft/cmd/uplyft/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
