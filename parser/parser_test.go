package parser_test

import (
	"testing"

	"github.com/chadbramwell/write-a-c-compiler-sub000/ast"
	"github.com/chadbramwell/write-a-c-compiler-sub000/lexer"
	"github.com/chadbramwell/write-a-c-compiler-sub000/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, err := lexer.New(src).Scan()
	if err != nil {
		t.Fatalf("lex(%q): %v", src, err)
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}
	return prog
}

func TestMinimalMain(t *testing.T) {
	prog := mustParse(t, "int main() { return 2; }")
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 top-level decl, got %d", len(prog.Decls))
	}
	def, ok := prog.Decls[0].(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected *ast.FuncDef, got %T", prog.Decls[0])
	}
	if !def.ReturnsInt {
		t.Errorf("main should return int")
	}
	if len(def.Params) != 0 {
		t.Errorf("void param list should have 0 params, got %d", len(def.Params))
	}
	if len(def.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(def.Body))
	}
	ret, ok := def.Body[0].(*ast.Return)
	if !ok {
		t.Fatalf("expected *ast.Return, got %T", def.Body[0])
	}
	num, ok := ret.Value.(*ast.Num)
	if !ok || num.Value != 2 {
		t.Errorf("expected return 2, got %#v", ret.Value)
	}
}

func TestFunctionDeclVsDefinition(t *testing.T) {
	prog := mustParse(t, "int f(int a, int b); int f(int a, int b) { return a; }")
	if len(prog.Decls) != 2 {
		t.Fatalf("expected 2 top-level decls, got %d", len(prog.Decls))
	}
	if _, ok := prog.Decls[0].(*ast.FuncDecl); !ok {
		t.Errorf("expected first decl to be *ast.FuncDecl, got %T", prog.Decls[0])
	}
	def, ok := prog.Decls[1].(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected second decl to be *ast.FuncDef, got %T", prog.Decls[1])
	}
	if len(def.Params) != 2 {
		t.Errorf("expected 2 params, got %d", len(def.Params))
	}
}

func TestGlobalVarDecl(t *testing.T) {
	prog := mustParse(t, "int counter = 0;")
	decl, ok := prog.Decls[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected *ast.VarDecl, got %T", prog.Decls[0])
	}
	if !decl.IsGlobal {
		t.Errorf("top-level var decl should be marked global")
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	prog := mustParse(t, "int main() { int a; int b; int c; a = b = c; return a; }")
	def := prog.Decls[0].(*ast.FuncDef)
	stmt := def.Body[3].(*ast.ExprStmt)
	outer, ok := stmt.X.(*ast.Assign)
	if !ok {
		t.Fatalf("expected outer *ast.Assign, got %T", stmt.X)
	}
	if _, ok := outer.Value.(*ast.Assign); !ok {
		t.Errorf("expected right-associative nested assign, got %T", outer.Value)
	}
}

func TestTernaryIsRightAssociative(t *testing.T) {
	prog := mustParse(t, "int main() { return 1 ? 2 : 3 ? 4 : 5; }")
	def := prog.Decls[0].(*ast.FuncDef)
	ret := def.Body[0].(*ast.Return)
	outer, ok := ret.Value.(*ast.Ternary)
	if !ok {
		t.Fatalf("expected *ast.Ternary, got %T", ret.Value)
	}
	if _, ok := outer.Else.(*ast.Ternary); !ok {
		t.Errorf("expected nested ternary in else-arm, got %T", outer.Else)
	}
}

func TestPrecedenceClimbing(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3), not (1 + 2) * 3.
	prog := mustParse(t, "int main() { return 1 + 2 * 3; }")
	def := prog.Decls[0].(*ast.FuncDef)
	ret := def.Body[0].(*ast.Return)
	plus, ok := ret.Value.(*ast.Binary)
	if !ok || plus.Op != '+' {
		t.Fatalf("expected top-level '+', got %#v", ret.Value)
	}
	mul, ok := plus.Right.(*ast.Binary)
	if !ok || mul.Op != '*' {
		t.Fatalf("expected '*' nested in right operand, got %#v", plus.Right)
	}
}

func TestUnaryConstantFold(t *testing.T) {
	prog := mustParse(t, "int main() { return -5; }")
	def := prog.Decls[0].(*ast.FuncDef)
	ret := def.Body[0].(*ast.Return)
	num, ok := ret.Value.(*ast.Num)
	if !ok {
		t.Fatalf("expected constant-folded *ast.Num, got %T", ret.Value)
	}
	if num.Value != -5 {
		t.Errorf("expected -5, got %d", num.Value)
	}
}

func TestCallArgs(t *testing.T) {
	prog := mustParse(t, "int main() { return add(1, 2, 3); }")
	def := prog.Decls[0].(*ast.FuncDef)
	ret := def.Body[0].(*ast.Return)
	call, ok := ret.Value.(*ast.Call)
	if !ok {
		t.Fatalf("expected *ast.Call, got %T", ret.Value)
	}
	if len(call.Args) != 3 {
		t.Errorf("expected 3 args, got %d", len(call.Args))
	}
}

func TestForLoopWithDeclarationInit(t *testing.T) {
	prog := mustParse(t, "int main() { for (int i = 0; i < 10; i = i + 1) ; return 0; }")
	def := prog.Decls[0].(*ast.FuncDef)
	loop, ok := def.Body[0].(*ast.For)
	if !ok {
		t.Fatalf("expected *ast.For, got %T", def.Body[0])
	}
	if _, ok := loop.Init.(*ast.VarDecl); !ok {
		t.Errorf("expected declaration init, got %T", loop.Init)
	}
	if _, ok := loop.Body.(*ast.Empty); !ok {
		t.Errorf("expected empty body statement, got %T", loop.Body)
	}
}

func TestForLoopWithExpressionInitAndEmptyClauses(t *testing.T) {
	prog := mustParse(t, "int main() { int i; for (i = 0; ; ) break; return 0; }")
	def := prog.Decls[0].(*ast.FuncDef)
	loop := def.Body[1].(*ast.For)
	if _, ok := loop.Init.(*ast.ExprStmt); !ok {
		t.Errorf("expected expression-statement init, got %T", loop.Init)
	}
	if loop.Cond != nil {
		t.Errorf("expected nil condition for omitted clause, got %#v", loop.Cond)
	}
	if loop.Post != nil {
		t.Errorf("expected nil post for omitted clause, got %#v", loop.Post)
	}
}

func TestForLoopWithEmptyInit(t *testing.T) {
	prog := mustParse(t, "int main() { for (;;) break; return 0; }")
	def := prog.Decls[0].(*ast.FuncDef)
	loop := def.Body[0].(*ast.For)
	if loop.Init != nil {
		t.Errorf("expected nil init for omitted clause, got %#v", loop.Init)
	}
}

func TestIfElse(t *testing.T) {
	prog := mustParse(t, "int main() { if (1) return 1; else return 0; }")
	def := prog.Decls[0].(*ast.FuncDef)
	ifStmt := def.Body[0].(*ast.If)
	if ifStmt.Else == nil {
		t.Errorf("expected else-branch to be present")
	}
}

// TestWholeProgramParsesToExactlyItsDecls checks that a full program parses to
// exactly the declarations present, with nothing left unconsumed.
func TestWholeProgramParsesToExactlyItsDecls(t *testing.T) {
	src := "int main() { int x = 1; while (x < 10) { x = x + 1; } return x; }"
	prog := mustParse(t, src)
	if len(prog.Decls) != 1 {
		t.Fatalf("expected 1 decl, got %d", len(prog.Decls))
	}
}

func TestMissingSemicolonIsParseError(t *testing.T) {
	toks, err := lexer.New("int main() { return 0 }").Scan()
	if err != nil {
		t.Fatal(err)
	}
	_, err = parser.Parse(toks)
	if err == nil {
		t.Fatal("expected a ParseError for the missing ';'")
	}
	if _, ok := err.(*parser.ParseError); !ok {
		t.Errorf("expected *parser.ParseError, got %T", err)
	}
}

func TestAssignToNonIdentifierIsParseError(t *testing.T) {
	toks, err := lexer.New("int main() { 1 = 2; return 0; }").Scan()
	if err != nil {
		t.Fatal(err)
	}
	_, err = parser.Parse(toks)
	if err == nil {
		t.Fatal("expected a ParseError assigning to a non-identifier")
	}
}
