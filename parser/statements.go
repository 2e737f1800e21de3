package parser

import (
	"github.com/chadbramwell/write-a-c-compiler-sub000/ast"
	"github.com/chadbramwell/write-a-c-compiler-sub000/token"
)

// block parses `{ blockItem* }`. A block item is either a declaration or a
// statement; both satisfy ast.Stmt.
func (p *Parser) block() (*ast.Block, error) {
	lbrace, err := p.expect(token.Kind('{'), "'{'")
	if err != nil {
		return nil, err
	}
	var items []ast.Stmt
	for !p.at(token.Kind('}')) && !p.at(token.EOF) {
		item, err := p.blockItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if _, err := p.expect(token.Kind('}'), "'}'"); err != nil {
		return nil, err
	}
	return &ast.Block{Items: items, NodePos: lbrace.Pos}, nil
}

func (p *Parser) blockItem() (ast.Stmt, error) {
	if p.at(token.KwInt) {
		return p.localVarDecl()
	}
	return p.statement()
}

func (p *Parser) localVarDecl() (ast.Stmt, error) {
	kw, err := p.expect(token.KwInt, "'int'")
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Ident, "a variable name")
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.match(token.Kind('=')) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Kind(';'), "';'"); err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: nameTok.Name, Init: init, NodePos: kw.Pos}, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.at(token.Kind('{')):
		return p.block()
	case p.at(token.KwReturn):
		return p.returnStmt()
	case p.at(token.KwIf):
		return p.ifStmt()
	case p.at(token.KwFor):
		return p.forStmt()
	case p.at(token.KwWhile):
		return p.whileStmt()
	case p.at(token.KwDo):
		return p.doWhileStmt()
	case p.at(token.KwBreak):
		pos := p.advance().Pos
		_, err := p.expect(token.Kind(';'), "';' after 'break'")
		return &ast.Break{NodePos: pos}, err
	case p.at(token.KwContinue):
		pos := p.advance().Pos
		_, err := p.expect(token.Kind(';'), "';' after 'continue'")
		return &ast.Continue{NodePos: pos}, err
	case p.at(token.Kind(';')):
		pos := p.advance().Pos
		return &ast.Empty{NodePos: pos}, nil
	default:
		return p.exprStmt()
	}
}

func (p *Parser) returnStmt() (ast.Stmt, error) {
	kw, err := p.expect(token.KwReturn, "'return'")
	if err != nil {
		return nil, err
	}
	var value ast.Expr
	if !p.at(token.Kind(';')) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Kind(';'), "';' after return value"); err != nil {
		return nil, err
	}
	return &ast.Return{Value: value, NodePos: kw.Pos}, nil
}

func (p *Parser) ifStmt() (ast.Stmt, error) {
	kw, err := p.expect(token.KwIf, "'if'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Kind('('), "'(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Kind(')'), "')' after if condition"); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseStmt ast.Stmt
	if p.match(token.KwElse) {
		elseStmt, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Cond: cond, Then: then, Else: elseStmt, NodePos: kw.Pos}, nil
}

// forStmt parses `for (init; cond; post) body`, where init is a declaration,
// an expression statement, or empty. The init clause picks its form from
// the next token alone (`;` for empty, `int` for a declaration, anything
// else for an expression statement); there is no backtracking.
func (p *Parser) forStmt() (ast.Stmt, error) {
	kw, err := p.expect(token.KwFor, "'for'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Kind('('), "'(' after 'for'"); err != nil {
		return nil, err
	}

	init, err := p.forInitClause()
	if err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.at(token.Kind(';')) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Kind(';'), "';' after for condition"); err != nil {
		return nil, err
	}

	var post ast.Expr
	if !p.at(token.Kind(')')) {
		post, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Kind(')'), "')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.For{Init: init, Cond: cond, Post: post, Body: body, NodePos: kw.Pos}, nil
}

func (p *Parser) forInitClause() (ast.Stmt, error) {
	if p.at(token.Kind(';')) {
		p.advance()
		return nil, nil
	}
	if p.at(token.KwInt) {
		return p.localVarDecl() // consumes the trailing ';' itself
	}
	return p.exprStmt() // consumes the trailing ';' itself
}

func (p *Parser) whileStmt() (ast.Stmt, error) {
	kw, err := p.expect(token.KwWhile, "'while'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Kind('('), "'(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Kind(')'), "')' after while condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Cond: cond, Body: body, NodePos: kw.Pos}, nil
}

func (p *Parser) doWhileStmt() (ast.Stmt, error) {
	kw, err := p.expect(token.KwDo, "'do'")
	if err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.KwWhile, "'while' after do-body"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Kind('('), "'(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Kind(')'), "')' after do-while condition"); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Kind(';'), "';' after do-while"); err != nil {
		return nil, err
	}
	return &ast.DoWhile{Cond: cond, Body: body, NodePos: kw.Pos}, nil
}

func (p *Parser) exprStmt() (ast.Stmt, error) {
	pos := p.peek().Pos
	x, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Kind(';'), "';' after expression"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: x, NodePos: pos}, nil
}
