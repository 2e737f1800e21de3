package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/chadbramwell/write-a-c-compiler-sub000/ast"
	"github.com/chadbramwell/write-a-c-compiler-sub000/lexer"
	"github.com/chadbramwell/write-a-c-compiler-sub000/parser"
	"github.com/chadbramwell/write-a-c-compiler-sub000/resolve"
)

// frontend runs every stage compile and run share: read the file, lex,
// parse, and resolve it into a program ready for codegen or
// interpretation. The ir command skips this entirely — it builds
// straight off the token stream and never reaches the AST.
func frontend(path string) (*ast.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	toks, err := lexer.New(string(src)).Scan()
	if err != nil {
		return nil, errors.Wrap(err, "lexing")
	}

	prog, err := parser.Parse(toks)
	if err != nil {
		return nil, errors.Wrap(err, "parsing")
	}

	if err := resolve.Resolve(prog); err != nil {
		return nil, errors.Wrap(err, "resolving")
	}

	return prog, nil
}

// printFailure unwraps a pkg/errors chain down to its root cause (one
// of the package-local *XError types) so the user sees the position-
// tagged message, not an opaque wrapper.
func printFailure(w *os.File, err error) {
	fmt.Fprintln(w, errors.Cause(err))
}
