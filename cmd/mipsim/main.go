// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command mipsim runs instruction files on a simulated MIPS-like CPU with a
// write-through data cache.
package main

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mipsim",
	Short: "Simulate a small MIPS-like CPU with a data cache.",
	Long: `mipsim executes an instruction file against a memory image, ` +
		`tracing every instruction, cache access and register update.`,
	SilenceUsage: true,
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
