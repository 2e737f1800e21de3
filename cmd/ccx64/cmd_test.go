package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/chadbramwell/write-a-c-compiler-sub000/harness"
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/cache"
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/timer"
)

// testCmd drives the harness package over a directory tree of `.c`
// files, the successor to the original test.cpp driver: for every case
// it cross-checks the interpreter, the compiled-and-run executable, and
// any known expected exit code, caching newly-observed results so a
// repeat run of the same tree skips straight to comparison.
type testCmd struct {
	assembler string
	cachePath string
	workDir   string
}

func (*testCmd) Name() string     { return "test" }
func (*testCmd) Synopsis() string { return "run the interpret/compile cross-check over a directory of .c files" }
func (*testCmd) Usage() string {
	return `test <dir> [-cc clang] [-cache path]:
  Interpret and compile every .c file under dir, asserting both backends
  and any known expected exit code all agree.
`
}

func (c *testCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.assembler, "cc", "clang", "assembler/linker invoked as `<cc> <file.s> -o <file.exe>`")
	f.StringVar(&c.cachePath, "cache", ".ccx64-cache", "path to the persisted test-result cache")
	f.StringVar(&c.workDir, "workdir", "", "scratch directory for assembled executables (default: OS temp dir)")
}

func (c *testCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "test: no directory given")
		return subcommands.ExitUsageError
	}
	root := args[0]

	cch, err := cache.Load(c.cachePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "test: loading cache: %v\n", err)
		return subcommands.ExitFailure
	}

	collector := &harness.Collector{Root: root}
	cases, err := collector.Collect(cch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "test: collecting cases: %v\n", err)
		return subcommands.ExitFailure
	}

	runner := &harness.Runner{Assembler: c.assembler, Cache: cch, WorkDir: c.workDir}

	var sw timer.Stopwatch
	sw.Start()

	passed, failed := 0, 0
	for _, cs := range cases {
		res, err := runner.Run(cs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", filepath.Base(cs.Path), err)
			failed++
			continue
		}
		if res.Passed {
			passed++
			continue
		}
		fmt.Fprintf(os.Stderr, "FAIL %s: %s\n", filepath.Base(cs.Path), res.Mismatch)
		failed++
	}

	elapsed := sw.Stop()
	fmt.Fprintf(os.Stdout, "%d passed, %d failed (%d cases, %.1fms)\n", passed, failed, len(cases), float64(elapsed.Microseconds())/1000)

	if err := cch.Save(c.cachePath); err != nil {
		fmt.Fprintf(os.Stderr, "test: saving cache: %v\n", err)
		return subcommands.ExitFailure
	}

	if failed > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
