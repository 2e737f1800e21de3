package codegen

import "github.com/chadbramwell/write-a-c-compiler-sub000/ast"

// slotCounter implements ast.StmtVisitor and ast.ExprVisitor purely to
// drive buildFrame's walk; it emits nothing and returns nothing useful,
// it just calls assign at every declaration and every binary operator.
type slotCounter struct {
	assign func(node any)
}

func (c *slotCounter) VisitVarDecl(d *ast.VarDecl) any {
	c.assign(d)
	if d.Init != nil {
		d.Init.Accept(c)
	}
	return nil
}

func (c *slotCounter) VisitExprStmt(s *ast.ExprStmt) any {
	s.X.Accept(c)
	return nil
}

func (c *slotCounter) VisitReturn(s *ast.Return) any {
	if s.Value != nil {
		s.Value.Accept(c)
	}
	return nil
}

func (c *slotCounter) VisitIf(s *ast.If) any {
	s.Cond.Accept(c)
	s.Then.Accept(c)
	if s.Else != nil {
		s.Else.Accept(c)
	}
	return nil
}

func (c *slotCounter) VisitFor(s *ast.For) any {
	if s.Init != nil {
		s.Init.Accept(c)
	}
	if s.Cond != nil {
		s.Cond.Accept(c)
	}
	if s.Post != nil {
		s.Post.Accept(c)
	}
	s.Body.Accept(c)
	return nil
}

func (c *slotCounter) VisitWhile(s *ast.While) any {
	s.Cond.Accept(c)
	s.Body.Accept(c)
	return nil
}

func (c *slotCounter) VisitDoWhile(s *ast.DoWhile) any {
	s.Body.Accept(c)
	s.Cond.Accept(c)
	return nil
}

func (c *slotCounter) VisitBreak(*ast.Break) any       { return nil }
func (c *slotCounter) VisitContinue(*ast.Continue) any { return nil }
func (c *slotCounter) VisitEmpty(*ast.Empty) any       { return nil }

func (c *slotCounter) VisitBlock(b *ast.Block) any {
	for _, item := range b.Items {
		item.Accept(c)
	}
	return nil
}

func (c *slotCounter) VisitNum(*ast.Num) any { return nil }

func (c *slotCounter) VisitUnary(u *ast.Unary) any {
	u.Operand.Accept(c)
	return nil
}

// VisitBinary recurses into both operands before assigning the node's own
// slot; the order doesn't matter for correctness (any node gets a unique
// offset either way), only that every *ast.Binary in the tree gets one.
func (c *slotCounter) VisitBinary(b *ast.Binary) any {
	b.Left.Accept(c)
	b.Right.Accept(c)
	c.assign(b)
	return nil
}

func (c *slotCounter) VisitTernary(t *ast.Ternary) any {
	t.Cond.Accept(c)
	t.Then.Accept(c)
	t.Else.Accept(c)
	return nil
}

func (c *slotCounter) VisitIdent(*ast.Ident) any { return nil }

func (c *slotCounter) VisitAssign(a *ast.Assign) any {
	a.Value.Accept(c)
	return nil
}

func (c *slotCounter) VisitCall(call *ast.Call) any {
	for _, arg := range call.Args {
		arg.Accept(c)
	}
	return nil
}
