package main

import (
	"io"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/mipsim/emulator"
	"github.com/ezrec/mipsim/trace"
	"github.com/ezrec/mipsim/translate"
)

var f = translate.From

type runOptions struct {
	instructions string
	memory       string
	verbose      bool
	baseOffset   bool
	traceDB      string
	dumpMemory   string
	dump         bool
}

var runOpts runOptions

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load a memory image and an instruction file, and execute it.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return simulate(cmd.OutOrStdout(), runOpts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	flags := runCmd.Flags()
	flags.StringVarP(&runOpts.instructions, "instructions", "i", "instructions.txt", "instruction file")
	flags.StringVarP(&runOpts.memory, "memory", "m", "memory_init.txt", "memory image file")
	flags.BoolVarP(&runOpts.verbose, "verbose", "v", false, "verbose logging")
	flags.BoolVar(&runOpts.baseOffset, "base-offset", false, "add the base register to LW/SW offsets")
	flags.StringVar(&runOpts.traceDB, "trace-db", "", "also record the trace into this SQLite file")
	flags.StringVar(&runOpts.dumpMemory, "dump-memory", "", "write the final memory image to this file")
	flags.BoolVar(&runOpts.dump, "dump", false, "pretty-print the final emulator state")
}

// loadFile opens name and hands it to load.
func loadFile(name string, load func(name string, input io.Reader) error) (err error) {
	inf, err := os.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	err = load(name, inf)
	if err != nil {
		err = &fileError{Name: name, Err: err}
	}

	return
}

// simulate performs a complete run, writing the trace to out.
func simulate(out io.Writer, opts runOptions) (err error) {
	emu := emulator.NewEmulator()
	emu.Verbose = opts.verbose
	emu.BaseOffset = opts.baseOffset

	tracer := trace.Tracer(trace.NewLogTracer(log.New(out, "", 0)))
	if len(opts.traceDB) != 0 {
		var db *trace.DBTracer
		db, err = trace.NewDBTracer(opts.traceDB)
		if err != nil {
			return
		}
		defer db.Close()

		if opts.verbose {
			log.Printf("mipsim: trace run %v in %v", db.RunID(), opts.traceDB)
		}
		tracer = trace.Multi(tracer, db)
	}
	emu.SetTracer(tracer)

	err = loadFile(opts.memory, emu.LoadImage)
	if err != nil {
		return
	}

	err = loadFile(opts.instructions, emu.Load)
	if err != nil {
		return
	}

	err = emu.Run()
	if err != nil {
		err = &fileError{Name: opts.instructions, Err: err}
		return
	}

	if len(opts.dumpMemory) != 0 {
		var ouf *os.File
		ouf, err = os.Create(opts.dumpMemory)
		if err != nil {
			return
		}
		defer ouf.Close()

		err = emu.Memory.Marshal(ouf)
		if err != nil {
			return
		}
	}

	if opts.dump {
		printer := pp.New()
		printer.SetOutput(out)
		printer.SetColoringEnabled(false)
		printer.Println(emu.State())
	}

	return
}

// fileError names the input file an error was found in.
type fileError struct {
	Name string
	Err  error
}

func (err *fileError) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *fileError) Unwrap() error {
	return err.Err
}
