package simplify_test

import (
	"testing"

	"github.com/chadbramwell/write-a-c-compiler-sub000/ast"
	"github.com/chadbramwell/write-a-c-compiler-sub000/lexer"
	"github.com/chadbramwell/write-a-c-compiler-sub000/parser"
	"github.com/chadbramwell/write-a-c-compiler-sub000/simplify"
)

func parseSrc(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, err := lexer.New(src).Scan()
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return prog
}

func returnExpr(t *testing.T, prog *ast.Program) ast.Expr {
	t.Helper()
	fd := prog.Decls[0].(*ast.FuncDef)
	ret := fd.Body[len(fd.Body)-1].(*ast.Return)
	return ret.Value
}

func TestSimplifyFoldsSumOfTwoLiterals(t *testing.T) {
	prog := parseSrc(t, "int main(){ return 2 + 3; }")
	simplify.Simplify(prog)
	n, ok := returnExpr(t, prog).(*ast.Num)
	if !ok || n.Value != 5 {
		t.Fatalf("expected a folded Num(5), got %#v", returnExpr(t, prog))
	}
}

func TestSimplifyReachesFixedPointOnNestedSums(t *testing.T) {
	// ((1+2)+3)+4 folds bottom-up in one pass; a second pass finds nothing.
	prog := parseSrc(t, "int main(){ return 1 + 2 + 3 + 4; }")
	simplify.Simplify(prog)
	n, ok := returnExpr(t, prog).(*ast.Num)
	if !ok || n.Value != 10 {
		t.Fatalf("expected a folded Num(10), got %#v", returnExpr(t, prog))
	}
}

func TestSimplifyLeavesNonFoldableExpressionAlone(t *testing.T) {
	prog := parseSrc(t, "int main(){ return 2 * 3; }")
	simplify.Simplify(prog)
	b, ok := returnExpr(t, prog).(*ast.Binary)
	if !ok {
		t.Fatalf("expected the multiplication to survive unfolded, got %#v", returnExpr(t, prog))
	}
	if b.Op != '*' {
		t.Errorf("expected '*' operator preserved, got %v", b.Op)
	}
}

func TestSimplifyFoldsInsideNestedControlFlow(t *testing.T) {
	prog := parseSrc(t, "int main(){ if (1) { return 2 + 3; } return 0; }")
	simplify.Simplify(prog)
	fd := prog.Decls[0].(*ast.FuncDef)
	ifStmt := fd.Body[0].(*ast.If)
	block := ifStmt.Then.(*ast.Block)
	ret := block.Items[0].(*ast.Return)
	n, ok := ret.Value.(*ast.Num)
	if !ok || n.Value != 5 {
		t.Fatalf("expected a folded Num(5) inside the if-block, got %#v", ret.Value)
	}
}
