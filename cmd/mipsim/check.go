package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/mipsim/cpu"
	"github.com/ezrec/mipsim/emulator"
)

var checkCmd = &cobra.Command{
	Use:   "check [instruction file...]",
	Short: "Decode instruction files without executing them.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		for _, name := range args {
			var prog *cpu.Program
			prog, err = check(name)
			if err != nil {
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), f("%v: %v instructions", name, prog.Len()))
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// check loads and decodes an instruction file.
func check(name string) (prog *cpu.Program, err error) {
	inf, err := os.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	defer func() {
		if err != nil {
			err = &fileError{Name: name, Err: err}
		}
	}()

	ld := &cpu.Loader{}
	for key, value := range emulator.NewEmulator().Defines() {
		ld.Predefine(key, value)
	}

	prog, err = ld.Parse(inf)
	if err != nil {
		return
	}

	err = prog.Check()

	return
}
