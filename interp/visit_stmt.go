package interp

import "github.com/chadbramwell/write-a-c-compiler-sub000/ast"

func (it *Interp) VisitVarDecl(d *ast.VarDecl) any {
	var value int64
	if d.Init != nil {
		value = it.eval(d.Init)
	}
	it.env.declare(d, value)
	return nil
}

func (it *Interp) VisitExprStmt(s *ast.ExprStmt) any {
	it.eval(s.X)
	return nil
}

func (it *Interp) VisitReturn(s *ast.Return) any {
	if s.Value != nil {
		it.returnValue = it.eval(s.Value)
	} else {
		it.returnValue = 0
	}
	it.returnPending = true
	return nil
}

func (it *Interp) VisitIf(s *ast.If) any {
	if it.eval(s.Cond) != 0 {
		it.exec(s.Then)
	} else if s.Else != nil {
		it.exec(s.Else)
	}
	return nil
}

// VisitFor uses one frame covering the init clause and every iteration of
// the body, so an induction variable keeps the same binding across
// iterations instead of being redeclared.
func (it *Interp) VisitFor(s *ast.For) any {
	it.env.push()
	defer it.env.pop()

	if s.Init != nil {
		it.exec(s.Init)
	}
	for s.Cond == nil || it.eval(s.Cond) != 0 {
		it.exec(s.Body)
		if it.returnPending {
			return nil
		}
		if it.breakPending {
			it.breakPending = false
			return nil
		}
		it.continuePending = false
		if s.Post != nil {
			it.eval(s.Post)
		}
	}
	return nil
}

func (it *Interp) VisitWhile(s *ast.While) any {
	for it.eval(s.Cond) != 0 {
		it.exec(s.Body)
		if it.returnPending {
			return nil
		}
		if it.breakPending {
			it.breakPending = false
			return nil
		}
		it.continuePending = false
	}
	return nil
}

func (it *Interp) VisitDoWhile(s *ast.DoWhile) any {
	for {
		it.exec(s.Body)
		if it.returnPending {
			return nil
		}
		if it.breakPending {
			it.breakPending = false
			return nil
		}
		it.continuePending = false
		if it.eval(s.Cond) == 0 {
			return nil
		}
	}
}

func (it *Interp) VisitBreak(*ast.Break) any {
	it.breakPending = true
	return nil
}

func (it *Interp) VisitContinue(*ast.Continue) any {
	it.continuePending = true
	return nil
}

func (it *Interp) VisitEmpty(*ast.Empty) any { return nil }

func (it *Interp) VisitBlock(b *ast.Block) any {
	it.env.push()
	defer it.env.pop()
	for _, item := range b.Items {
		it.exec(item)
		if it.returnPending || it.breakPending || it.continuePending {
			break
		}
	}
	return nil
}
