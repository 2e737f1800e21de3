package resolve

import "github.com/chadbramwell/write-a-c-compiler-sub000/ast"

func (r *Resolver) VisitNum(*ast.Num) any { return nil }

func (r *Resolver) VisitUnary(u *ast.Unary) any {
	r.expr(u.Operand)
	return nil
}

func (r *Resolver) VisitBinary(b *ast.Binary) any {
	r.expr(b.Left)
	r.expr(b.Right)
	return nil
}

func (r *Resolver) VisitTernary(t *ast.Ternary) any {
	r.expr(t.Cond)
	r.expr(t.Then)
	r.expr(t.Else)
	return nil
}

func (r *Resolver) VisitIdent(id *ast.Ident) any {
	id.Decl = r.name(id.Name, id.Pos())
	return nil
}

func (r *Resolver) VisitAssign(a *ast.Assign) any {
	r.expr(a.Value)
	if r.err != nil {
		return nil
	}
	a.Decl = r.name(a.Name, a.Pos())
	return nil
}

// VisitCall resolves each argument. The callee name itself is not bound to
// a declaration here — function lookup happens by name at interp/codegen
// time, mirroring how those two passes already treat call targets.
func (r *Resolver) VisitCall(c *ast.Call) any {
	for _, arg := range c.Args {
		r.expr(arg)
		if r.err != nil {
			return nil
		}
	}
	return nil
}
