package resolve

import "github.com/chadbramwell/write-a-c-compiler-sub000/ast"

// VisitVarDecl resolves the initializer, if any, before declaring the
// name — so `int x = x;` fails to resolve the right-hand x, matching C's
// usual "not yet in scope during its own initializer" rule.
func (r *Resolver) VisitVarDecl(d *ast.VarDecl) any {
	r.expr(d.Init)
	if r.err != nil {
		return nil
	}
	r.scopes.declare(d.Name, d)
	return nil
}

func (r *Resolver) VisitExprStmt(s *ast.ExprStmt) any {
	r.expr(s.X)
	return nil
}

func (r *Resolver) VisitReturn(s *ast.Return) any {
	r.expr(s.Value)
	return nil
}

func (r *Resolver) VisitIf(s *ast.If) any {
	r.expr(s.Cond)
	r.stmt(s.Then)
	if s.Else != nil {
		r.stmt(s.Else)
	}
	return nil
}

// VisitFor pushes a single scope covering both the init clause and the
// body, so an induction variable declared in a for-init is not visible
// after the loop ends.
func (r *Resolver) VisitFor(s *ast.For) any {
	r.scopes.push()
	defer r.scopes.pop()
	if s.Init != nil {
		r.stmt(s.Init)
	}
	r.expr(s.Cond)
	r.expr(s.Post)
	r.stmt(s.Body)
	return nil
}

func (r *Resolver) VisitWhile(s *ast.While) any {
	r.expr(s.Cond)
	r.stmt(s.Body)
	return nil
}

func (r *Resolver) VisitDoWhile(s *ast.DoWhile) any {
	r.stmt(s.Body)
	r.expr(s.Cond)
	return nil
}

func (r *Resolver) VisitBreak(*ast.Break) any       { return nil }
func (r *Resolver) VisitContinue(*ast.Continue) any { return nil }
func (r *Resolver) VisitEmpty(*ast.Empty) any       { return nil }

func (r *Resolver) VisitBlock(b *ast.Block) any {
	r.scopes.push()
	defer r.scopes.pop()
	for _, item := range b.Items {
		r.stmt(item)
		if r.err != nil {
			return nil
		}
	}
	return nil
}
