package codegen

import (
	"fmt"

	"github.com/chadbramwell/write-a-c-compiler-sub000/ast"
)

func (g *Codegen) VisitVarDecl(d *ast.VarDecl) any {
	if d.Init != nil {
		d.Init.Accept(g)
		fmt.Fprintf(&g.out, "  mov %%rax, %s\n", g.varLocation(d))
	}
	return nil
}

func (g *Codegen) VisitExprStmt(s *ast.ExprStmt) any {
	s.X.Accept(g)
	return nil
}

// VisitReturn evaluates the result into %rax, if any, then pops the
// function's own stack frame and returns right here rather than jumping
// to a shared epilogue — a return nested inside an if or loop emits its
// own complete `add $N, %rsp; ret` at the point it appears.
func (g *Codegen) VisitReturn(s *ast.Return) any {
	if s.Value != nil {
		s.Value.Accept(g)
	}
	g.emitEpilogue()
	return nil
}

func (g *Codegen) VisitIf(s *ast.If) any {
	if s.Else == nil {
		endLabel := g.newLabel("fi")
		s.Cond.Accept(g)
		fmt.Fprintf(&g.out, "  cmp $0, %%rax\n")
		fmt.Fprintf(&g.out, "  je %s\n", endLabel)
		s.Then.Accept(g)
		fmt.Fprintf(&g.out, "%s:\n", endLabel)
		return nil
	}

	elseLabel := g.newLabel("else")
	endLabel := g.newLabel("fi")
	s.Cond.Accept(g)
	fmt.Fprintf(&g.out, "  cmp $0, %%rax\n")
	fmt.Fprintf(&g.out, "  je %s\n", elseLabel)
	s.Then.Accept(g)
	fmt.Fprintf(&g.out, "  jmp %s\n", endLabel)
	fmt.Fprintf(&g.out, "%s:\n", elseLabel)
	s.Else.Accept(g)
	fmt.Fprintf(&g.out, "%s:\n", endLabel)
	return nil
}

// VisitFor lays down three labels — cond, update, end — and registers
// update as the continue target so a continue anywhere in the body rolls
// straight into the post-expression instead of re-checking the condition
// first.
func (g *Codegen) VisitFor(s *ast.For) any {
	updateLabel := g.newLabel("for_update")
	condLabel := g.newLabel("for_cond")
	endLabel := g.newLabel("for_end")
	g.loops = append(g.loops, loopLabels{end: endLabel, cont: updateLabel})
	defer func() { g.loops = g.loops[:len(g.loops)-1] }()

	if s.Init != nil {
		s.Init.Accept(g)
	}
	fmt.Fprintf(&g.out, "%s:\n", condLabel)
	if s.Cond != nil {
		s.Cond.Accept(g)
		fmt.Fprintf(&g.out, "  cmp $0, %%rax\n")
		fmt.Fprintf(&g.out, "  je %s\n", endLabel)
	}
	s.Body.Accept(g)
	fmt.Fprintf(&g.out, "%s:\n", updateLabel)
	if s.Post != nil {
		s.Post.Accept(g)
	}
	fmt.Fprintf(&g.out, "  jmp %s\n", condLabel)
	fmt.Fprintf(&g.out, "%s:\n", endLabel)
	return nil
}

// VisitWhile's single label doubles as both the condition check and the
// continue target, since a while loop has no separate update clause.
func (g *Codegen) VisitWhile(s *ast.While) any {
	condLabel := g.newLabel("while")
	endLabel := g.newLabel("while_end")
	g.loops = append(g.loops, loopLabels{end: endLabel, cont: condLabel})
	defer func() { g.loops = g.loops[:len(g.loops)-1] }()

	fmt.Fprintf(&g.out, "%s:\n", condLabel)
	s.Cond.Accept(g)
	fmt.Fprintf(&g.out, "  cmp $0, %%rax\n")
	fmt.Fprintf(&g.out, "  je %s\n", endLabel)
	s.Body.Accept(g)
	fmt.Fprintf(&g.out, "  jmp %s\n", condLabel)
	fmt.Fprintf(&g.out, "%s:\n", endLabel)
	return nil
}

// VisitDoWhile's continue target is the condition check, which sits after
// the body rather than before it.
func (g *Codegen) VisitDoWhile(s *ast.DoWhile) any {
	startLabel := g.newLabel("do_while_start")
	condLabel := g.newLabel("do_while")
	endLabel := g.newLabel("do_while_end")
	g.loops = append(g.loops, loopLabels{end: endLabel, cont: condLabel})
	defer func() { g.loops = g.loops[:len(g.loops)-1] }()

	fmt.Fprintf(&g.out, "%s:\n", startLabel)
	s.Body.Accept(g)
	fmt.Fprintf(&g.out, "%s:\n", condLabel)
	s.Cond.Accept(g)
	fmt.Fprintf(&g.out, "  cmp $0, %%rax\n")
	fmt.Fprintf(&g.out, "  je %s\n", endLabel)
	fmt.Fprintf(&g.out, "  jmp %s\n", startLabel)
	fmt.Fprintf(&g.out, "%s:\n", endLabel)
	return nil
}

func (g *Codegen) VisitBreak(b *ast.Break) any {
	if len(g.loops) == 0 {
		panic(&CodegenError{Pos: b.Pos(), Message: "break outside of a loop"})
	}
	fmt.Fprintf(&g.out, "  jmp %s\n", g.loops[len(g.loops)-1].end)
	return nil
}

func (g *Codegen) VisitContinue(c *ast.Continue) any {
	if len(g.loops) == 0 {
		panic(&CodegenError{Pos: c.Pos(), Message: "continue outside of a loop"})
	}
	fmt.Fprintf(&g.out, "  jmp %s\n", g.loops[len(g.loops)-1].cont)
	return nil
}

func (g *Codegen) VisitEmpty(*ast.Empty) any { return nil }

func (g *Codegen) VisitBlock(b *ast.Block) any {
	for _, item := range b.Items {
		item.Accept(g)
	}
	return nil
}
