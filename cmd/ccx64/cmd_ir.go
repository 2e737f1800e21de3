package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/chadbramwell/write-a-c-compiler-sub000/ir"
	"github.com/chadbramwell/write-a-c-compiler-sub000/lexer"
	"github.com/chadbramwell/write-a-c-compiler-sub000/token"
)

// irCmd builds the token-driven IR directly off the first function
// body's tokens, bypassing the AST entirely, and prints both the IR
// listing and its prototype lowering to assembly.
type irCmd struct{}

func (*irCmd) Name() string     { return "ir" }
func (*irCmd) Synopsis() string { return "dump the token-level IR and its assembly lowering" }
func (*irCmd) Usage() string {
	return `ir <file.c>:
  Lex file.c and build IR directly from its first function body's tokens.
`
}
func (*irCmd) SetFlags(f *flag.FlagSet) {}

func (*irCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "ir: no source file given")
		return subcommands.ExitUsageError
	}
	path := args[0]

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ir: reading %s: %v\n", path, err)
		return subcommands.ExitFailure
	}

	toks, err := lexer.New(string(src)).Scan()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	body, err := firstFunctionBody(toks)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	instrs, err := ir.Build(body)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Fprint(os.Stdout, ir.Dump(instrs))
	fmt.Fprintln(os.Stdout, "---")
	fmt.Fprint(os.Stdout, ir.Lower(instrs))
	return subcommands.ExitSuccess
}

// firstFunctionBody returns the tokens strictly between the first '{'
// and its matching '}', the shape ir.Build expects.
func firstFunctionBody(toks []token.Token) ([]token.Token, error) {
	start := -1
	depth := 0
	for i, tok := range toks {
		if tok.Kind == token.Kind('{') {
			if depth == 0 {
				start = i + 1
			}
			depth++
		}
		if tok.Kind == token.Kind('}') {
			depth--
			if depth == 0 {
				return toks[start:i], nil
			}
		}
	}
	return nil, fmt.Errorf("ir: no function body found")
}
