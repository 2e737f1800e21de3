package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"github.com/chadbramwell/write-a-c-compiler-sub000/ast"
	"github.com/chadbramwell/write-a-c-compiler-sub000/interp"
	"github.com/chadbramwell/write-a-c-compiler-sub000/lexer"
	"github.com/chadbramwell/write-a-c-compiler-sub000/parser"
	"github.com/chadbramwell/write-a-c-compiler-sub000/resolve"
	"github.com/chadbramwell/write-a-c-compiler-sub000/token"
)

// replCmd is a line-at-a-time interpreter session: every accepted chunk
// of source is appended to a running buffer of top-level declarations,
// which is reparsed, re-resolved and, whenever it defines 'main', rerun
// from scratch. Recompiling everything on every line is a deliberate
// simplicity-over-speed tradeoff: a REPL session never accumulates
// enough source for it to matter.
type replCmd struct{}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start an interactive read-eval-print loop" }
func (*replCmd) Usage() string {
	return `repl:
  Type top-level declarations one at a time; defining or redefining
  'main' runs the accumulated program and prints its exit code.
`
}
func (*replCmd) SetFlags(f *flag.FlagSet) {}

func (*replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New(">>> ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "repl: %v\n", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()

	var source strings.Builder
	var pending strings.Builder

	for {
		if pending.Len() == 0 {
			rl.SetPrompt(">>> ")
		} else {
			rl.SetPrompt("... ")
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			pending.Reset()
			continue
		}
		if err == io.EOF {
			return subcommands.ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "repl: %v\n", err)
			return subcommands.ExitFailure
		}

		if pending.Len() > 0 {
			pending.WriteString("\n")
		}
		pending.WriteString(line)

		toks, lexErr := lexer.New(pending.String()).Scan()
		if lexErr != nil {
			fmt.Fprintln(os.Stderr, lexErr)
			pending.Reset()
			continue
		}
		if !bracesBalanced(toks) {
			continue
		}

		candidate := source.String() + pending.String() + "\n"
		pending.Reset()

		toks, err = lexer.New(candidate).Scan()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		prog, err := parser.Parse(toks)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if err := resolve.Resolve(prog); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}

		source.Reset()
		source.WriteString(candidate)

		if hasMain(prog) {
			result, err := interp.Run(prog)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			fmt.Fprintf(os.Stdout, "=> %d\n", result)
		}
	}
}

func bracesBalanced(toks []token.Token) bool {
	depth := 0
	for _, t := range toks {
		switch t.Kind {
		case token.Kind('{'):
			depth++
		case token.Kind('}'):
			depth--
		}
	}
	return depth <= 0
}

func hasMain(prog *ast.Program) bool {
	for _, d := range prog.Decls {
		if fd, ok := d.(*ast.FuncDef); ok && fd.Name.String() == "main" {
			return true
		}
	}
	return false
}
