// Package simplify implements a constant-folding AST rewrite: an in-place
// pass that replaces `-num` and `num + num` with their folded value,
// iterated to a fixed point. Children are folded before their parent, so
// a fold at one level is seen by the level above it in the same pass.
//
// Grounded on simplify.cpp's two folding rules (unop '-' over a literal,
// binop '+' over two literals); unlike that file this pass rewrites the
// tree's child fields in place rather than building a copy. The parser
// already folds a unary operator applied directly to a literal (see
// parser.unary), so in practice this pass's only remaining job is folding
// sums of two literals — including ones that only become two literals
// after an inner sum has been folded.
package simplify

import "github.com/chadbramwell/write-a-c-compiler-sub000/ast"

// Simplify folds prog's function bodies in place, running full passes
// until one makes zero reductions.
func Simplify(prog *ast.Program) {
	for {
		s := &simplifier{}
		for _, d := range prog.Decls {
			fd, ok := d.(*ast.FuncDef)
			if !ok {
				continue
			}
			for i, stmt := range fd.Body {
				fd.Body[i] = s.stmt(stmt)
			}
		}
		if s.reductions == 0 {
			return
		}
	}
}

type simplifier struct {
	reductions int
}

func (s *simplifier) expr(e ast.Expr) ast.Expr {
	if e == nil {
		return nil
	}
	return e.Accept(s).(ast.Expr)
}

func (s *simplifier) stmt(st ast.Stmt) ast.Stmt {
	if st == nil {
		return nil
	}
	return st.Accept(s).(ast.Stmt)
}
