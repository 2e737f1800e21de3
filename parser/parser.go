// Package parser implements a pure recursive-descent parser over a
// token.Token stream, producing an *ast.Program.
//
// Every grammar ambiguity here resolves with a bounded lookahead (what
// follows the parameter list, what the next token is before a for-loop's
// init clause), so no production ever needs to backtrack. Once a
// ParseError is raised it is sticky: callers propagate it rather than try
// another alternative.
package parser

import (
	"fmt"

	"github.com/chadbramwell/write-a-c-compiler-sub000/ast"
	"github.com/chadbramwell/write-a-c-compiler-sub000/token"
)

// Parser parses a fixed token slice via a mutable cursor position.
type Parser struct {
	toks []token.Token
	pos  int
}

// New creates a Parser over toks. toks must be terminated by an EOF token.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

func (p *Parser) peek() token.Token { return p.toks[p.pos] }

func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[i]
}

func (p *Parser) at(k token.Kind) bool { return p.peek().Kind == k }

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

// match advances and returns true if the current token has kind k.
func (p *Parser) match(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) errorf(pos token.Pos, format string, args ...any) error {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// expect consumes the current token if it has kind k, else raises a sticky
// ParseError naming what was expected.
func (p *Parser) expect(k token.Kind, what string) (token.Token, error) {
	if !p.at(k) {
		return token.Token{}, p.errorf(p.peek().Pos, "expected %s, got %s", what, p.peek().Kind)
	}
	return p.advance(), nil
}

// Parse parses the entire token stream into an *ast.Program. It halts and
// returns immediately at the first ParseError.
func Parse(toks []token.Token) (*ast.Program, error) {
	p := New(toks)
	var decls []ast.TopDecl
	for !p.at(token.EOF) {
		d, err := p.topLevelDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	return &ast.Program{Decls: decls}, nil
}

// topLevelDecl parses a function declaration, function definition, or
// global variable declaration. The three share a prefix ("int"|"void"
// identifier) and are disambiguated by what follows it:
// absence of '(' means a variable; presence of ';' after ')' means a
// prototype; presence of '{' means a definition.
func (p *Parser) topLevelDecl() (ast.TopDecl, error) {
	startPos := p.peek().Pos

	var returnsInt bool
	switch {
	case p.match(token.KwInt):
		returnsInt = true
	case p.match(token.KwVoid):
		returnsInt = false
	default:
		return nil, p.errorf(startPos, "expected 'int' or 'void' at top level, got %s", p.peek().Kind)
	}

	nameTok, err := p.expect(token.Ident, "an identifier")
	if err != nil {
		return nil, err
	}

	if !p.at(token.Kind('(')) {
		return p.globalVarDecl(nameTok, returnsInt, startPos)
	}
	return p.funcDeclOrDef(nameTok, returnsInt, startPos)
}

func (p *Parser) globalVarDecl(nameTok token.Token, returnsInt bool, startPos token.Pos) (ast.TopDecl, error) {
	if !returnsInt {
		return nil, p.errorf(startPos, "'void' is not a valid type for a variable")
	}
	var init ast.Expr
	if p.match(token.Kind('=')) {
		var err error
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Kind(';'), "';'"); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: nameTok.Name, Init: init, IsGlobal: true, NodePos: startPos}, nil
}

func (p *Parser) funcDeclOrDef(nameTok token.Token, returnsInt bool, startPos token.Pos) (ast.TopDecl, error) {
	if _, err := p.expect(token.Kind('('), "'('"); err != nil {
		return nil, err
	}
	params, err := p.paramList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Kind(')'), "')'"); err != nil {
		return nil, err
	}

	switch {
	case p.match(token.Kind(';')):
		return &ast.FuncDecl{Name: nameTok.Name, Params: params, NodePos: startPos}, nil
	case p.at(token.Kind('{')):
		body, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.FuncDef{
			Name: nameTok.Name, ReturnsInt: returnsInt,
			Params: params, Body: body.Items, NodePos: startPos,
		}, nil
	default:
		return nil, p.errorf(p.peek().Pos, "expected ';' or '{' after parameter list, got %s", p.peek().Kind)
	}
}

// paramList parses a (possibly empty) comma-separated "int id" list. Arity
// is not checked here — that is the resolver's job, which reports it as a
// SemanticError rather than a grammar-level ParseError.
func (p *Parser) paramList() ([]*ast.VarDecl, error) {
	if p.at(token.Kind(')')) {
		return nil, nil
	}
	var params []*ast.VarDecl
	for {
		pos := p.peek().Pos
		if _, err := p.expect(token.KwInt, "'int'"); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(token.Ident, "a parameter name")
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.VarDecl{Name: nameTok.Name, IsParam: true, NodePos: pos})
		if !p.match(token.Kind(',')) {
			break
		}
	}
	return params, nil
}
