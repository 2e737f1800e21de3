package simplify

import "github.com/chadbramwell/write-a-c-compiler-sub000/ast"

func (s *simplifier) VisitNum(n *ast.Num) any { return n }

func (s *simplifier) VisitUnary(u *ast.Unary) any {
	u.Operand = s.expr(u.Operand)
	if u.Op == '-' {
		if n, ok := u.Operand.(*ast.Num); ok {
			s.reductions++
			return &ast.Num{Value: -n.Value, NodePos: u.NodePos}
		}
	}
	return u
}

func (s *simplifier) VisitBinary(b *ast.Binary) any {
	b.Left = s.expr(b.Left)
	b.Right = s.expr(b.Right)
	if b.Op == '+' {
		left, lok := b.Left.(*ast.Num)
		right, rok := b.Right.(*ast.Num)
		if lok && rok {
			s.reductions++
			return &ast.Num{Value: left.Value + right.Value, NodePos: b.NodePos}
		}
	}
	return b
}

func (s *simplifier) VisitTernary(t *ast.Ternary) any {
	t.Cond = s.expr(t.Cond)
	t.Then = s.expr(t.Then)
	t.Else = s.expr(t.Else)
	return t
}

func (s *simplifier) VisitIdent(i *ast.Ident) any { return i }

func (s *simplifier) VisitAssign(a *ast.Assign) any {
	a.Value = s.expr(a.Value)
	return a
}

func (s *simplifier) VisitCall(c *ast.Call) any {
	for i, arg := range c.Args {
		c.Args[i] = s.expr(arg)
	}
	return c
}
