package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/pkg/errors"

	"github.com/chadbramwell/write-a-c-compiler-sub000/codegen"
)

type compileCmd struct {
	out string
}

func (*compileCmd) Name() string     { return "compile" }
func (*compileCmd) Synopsis() string { return "compile a source file to x86-64 AT&T assembly" }
func (*compileCmd) Usage() string {
	return `compile <file.c> [-o out.s]:
  Lex, parse, resolve, and generate assembly for file.c.
`
}

func (c *compileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "output assembly path (default: <file> with its extension replaced by .s)")
}

func (c *compileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "compile: no source file given")
		return subcommands.ExitUsageError
	}
	path := args[0]

	prog, err := frontend(path)
	if err != nil {
		printFailure(os.Stderr, err)
		return subcommands.ExitFailure
	}

	asm, err := codegen.Gen(prog)
	if err != nil {
		printFailure(os.Stderr, errors.Wrap(err, "codegen"))
		return subcommands.ExitFailure
	}

	out := c.out
	if out == "" {
		out = withExt(path, ".s")
	}
	if err := os.WriteFile(out, []byte(asm), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "compile: writing %s: %v\n", out, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// withExt replaces path's extension (everything from the last '.' on,
// if one exists after the last path separator) with ext.
func withExt(path, ext string) string {
	base := path
	if i := strings.LastIndexByte(base, '.'); i >= 0 && i > strings.LastIndexAny(base, "/\\") {
		base = base[:i]
	}
	return base + ext
}
