package parser

import (
	"github.com/chadbramwell/write-a-c-compiler-sub000/ast"
	"github.com/chadbramwell/write-a-c-compiler-sub000/token"
)

// expression is the grammar's entry point, parsing the full precedence
// ladder down from assignment:
//
//	assignment -> ternary -> logical_or -> logical_and -> equality ->
//	relational -> additive -> multiplicative -> unary
//
// Assignment and ternary are right-associative; everything below them is
// left-associative, built by the standard "parse one operand, then loop
// consuming same-precedence operators" shape.
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment parses `ident = assignment` or falls through to ternary. The
// only l-value in this subset is a bare identifier: a left side that is
// anything else is returned as a lower-precedence expression when no `=`
// follows, and is a ParseError when one does.
func (p *Parser) assignment() (ast.Expr, error) {
	left, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if !p.at(token.Kind('=')) {
		return left, nil
	}
	ident, ok := left.(*ast.Ident)
	if !ok {
		return nil, p.errorf(p.peek().Pos, "left side of '=' must be a variable")
	}
	eq := p.advance()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Name: ident.Name, Value: value, NodePos: eq.Pos}, nil
}

// ternary parses `logical_or ['?' expression ':' ternary]`. The then-branch
// is a full expression (assignment included) because it is bracketed by '?'
// and ':'; the else-branch recurses into ternary for right-associativity.
func (p *Parser) ternary() (ast.Expr, error) {
	cond, err := p.logicalOr()
	if err != nil {
		return nil, err
	}
	if !p.at(token.Kind('?')) {
		return cond, nil
	}
	q := p.advance()
	then, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Kind(':'), "':' in conditional expression"); err != nil {
		return nil, err
	}
	elseExpr, err := p.ternary()
	if err != nil {
		return nil, err
	}
	return &ast.Ternary{Cond: cond, Then: then, Else: elseExpr, NodePos: q.Pos}, nil
}

func (p *Parser) logicalOr() (ast.Expr, error) {
	left, err := p.logicalAnd()
	if err != nil {
		return nil, err
	}
	for p.at(token.LOR) {
		op := p.advance()
		right, err := p.logicalAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op.Kind, Left: left, Right: right, NodePos: op.Pos}
	}
	return left, nil
}

func (p *Parser) logicalAnd() (ast.Expr, error) {
	left, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.at(token.LAND) {
		op := p.advance()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op.Kind, Left: left, Right: right, NodePos: op.Pos}
	}
	return left, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	left, err := p.relational()
	if err != nil {
		return nil, err
	}
	for p.at(token.EQ) || p.at(token.NE) {
		op := p.advance()
		right, err := p.relational()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op.Kind, Left: left, Right: right, NodePos: op.Pos}
	}
	return left, nil
}

func (p *Parser) relational() (ast.Expr, error) {
	left, err := p.additive()
	if err != nil {
		return nil, err
	}
	for p.at(token.Kind('<')) || p.at(token.Kind('>')) || p.at(token.LE) || p.at(token.GE) {
		op := p.advance()
		right, err := p.additive()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op.Kind, Left: left, Right: right, NodePos: op.Pos}
	}
	return left, nil
}

func (p *Parser) additive() (ast.Expr, error) {
	left, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for p.at(token.Kind('+')) || p.at(token.Kind('-')) {
		op := p.advance()
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op.Kind, Left: left, Right: right, NodePos: op.Pos}
	}
	return left, nil
}

func (p *Parser) multiplicative() (ast.Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.at(token.Kind('*')) || p.at(token.Kind('/')) || p.at(token.Kind('%')) {
		op := p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: op.Kind, Left: left, Right: right, NodePos: op.Pos}
	}
	return left, nil
}

// unary parses a prefix `-`, `~`, or `!` applied to another unary, or falls
// through to a factor. When the operand folds to a constant, the operator
// is applied immediately and a single Num is returned instead of a Unary
// node wrapping one — the grammar's default unary-constant-fold behavior.
func (p *Parser) unary() (ast.Expr, error) {
	switch {
	case p.at(token.Kind('-')), p.at(token.Kind('~')), p.at(token.Kind('!')):
		op := p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		if n, ok := operand.(*ast.Num); ok {
			return &ast.Num{Value: foldUnary(op.Kind, n.Value), NodePos: op.Pos}, nil
		}
		return &ast.Unary{Op: op.Kind, Operand: operand, NodePos: op.Pos}, nil
	default:
		return p.factor()
	}
}

func foldUnary(op token.Kind, v int64) int64 {
	switch op {
	case token.Kind('-'):
		return -v
	case token.Kind('~'):
		return ^v
	case token.Kind('!'):
		if v == 0 {
			return 1
		}
		return 0
	default:
		return v
	}
}

// factor parses the grammar's primary expressions: parenthesized
// expressions, function calls, variable usages, and integer constants.
func (p *Parser) factor() (ast.Expr, error) {
	switch {
	case p.at(token.Kind('(')):
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Kind(')'), "')'"); err != nil {
			return nil, err
		}
		return inner, nil

	case p.at(token.Constant):
		t := p.advance()
		return &ast.Num{Value: t.Num, NodePos: t.Pos}, nil

	case p.at(token.Ident):
		t := p.advance()
		if p.at(token.Kind('(')) {
			return p.callArgs(t)
		}
		return &ast.Ident{Name: t.Name, NodePos: t.Pos}, nil

	default:
		return nil, p.errorf(p.peek().Pos, "expected an expression, got %s", p.peek().Kind)
	}
}

// callArgs parses the `(args...)` suffix of a call whose callee name token
// has already been consumed.
func (p *Parser) callArgs(name token.Token) (ast.Expr, error) {
	if _, err := p.expect(token.Kind('('), "'('"); err != nil {
		return nil, err
	}
	var args []ast.Expr
	if !p.at(token.Kind(')')) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.Kind(',')) {
				break
			}
		}
	}
	if _, err := p.expect(token.Kind(')'), "')' after call arguments"); err != nil {
		return nil, err
	}
	return &ast.Call{Callee: name.Name, Args: args, NodePos: name.Pos}, nil
}
