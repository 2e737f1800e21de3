package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/chadbramwell/write-a-c-compiler-sub000/interp"
)

// runCmd interprets a source file end to end and surfaces its result as
// a process exit status rather than a printed value.
type runCmd struct{}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "interpret a source file and exit with its result" }
func (*runCmd) Usage() string {
	return `run <file.c>:
  Lex, parse, resolve, and interpret file.c, exiting with its result.
`
}
func (*runCmd) SetFlags(f *flag.FlagSet) {}

func (*runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "run: no source file given")
		return subcommands.ExitUsageError
	}
	path := args[0]

	prog, err := frontend(path)
	if err != nil {
		printFailure(os.Stderr, err)
		return subcommands.ExitFailure
	}

	result, err := interp.Run(prog)
	if err != nil {
		printFailure(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintln(os.Stderr, result)
	return subcommands.ExitStatus(result)
}
