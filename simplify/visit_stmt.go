package simplify

import "github.com/chadbramwell/write-a-c-compiler-sub000/ast"

func (s *simplifier) VisitVarDecl(d *ast.VarDecl) any {
	d.Init = s.expr(d.Init)
	return d
}

func (s *simplifier) VisitExprStmt(e *ast.ExprStmt) any {
	e.X = s.expr(e.X)
	return e
}

func (s *simplifier) VisitReturn(r *ast.Return) any {
	r.Value = s.expr(r.Value)
	return r
}

func (s *simplifier) VisitIf(i *ast.If) any {
	i.Cond = s.expr(i.Cond)
	i.Then = s.stmt(i.Then)
	i.Else = s.stmt(i.Else)
	return i
}

func (s *simplifier) VisitFor(f *ast.For) any {
	f.Init = s.stmt(f.Init)
	f.Cond = s.expr(f.Cond)
	f.Post = s.expr(f.Post)
	f.Body = s.stmt(f.Body)
	return f
}

func (s *simplifier) VisitWhile(w *ast.While) any {
	w.Cond = s.expr(w.Cond)
	w.Body = s.stmt(w.Body)
	return w
}

func (s *simplifier) VisitDoWhile(d *ast.DoWhile) any {
	d.Body = s.stmt(d.Body)
	d.Cond = s.expr(d.Cond)
	return d
}

func (s *simplifier) VisitBreak(b *ast.Break) any    { return b }
func (s *simplifier) VisitContinue(c *ast.Continue) any { return c }
func (s *simplifier) VisitEmpty(e *ast.Empty) any    { return e }

func (s *simplifier) VisitBlock(b *ast.Block) any {
	for i, item := range b.Items {
		b.Items[i] = s.stmt(item)
	}
	return b
}
