package interp_test

import (
	"testing"

	"github.com/chadbramwell/write-a-c-compiler-sub000/interp"
	"github.com/chadbramwell/write-a-c-compiler-sub000/lexer"
	"github.com/chadbramwell/write-a-c-compiler-sub000/parser"
	"github.com/chadbramwell/write-a-c-compiler-sub000/resolve"
)

func run(t *testing.T, src string) int64 {
	t.Helper()
	toks, err := lexer.New(src).Scan()
	if err != nil {
		t.Fatalf("lex: %v", err)
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := resolve.Resolve(prog); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	result, err := interp.Run(prog)
	if err != nil {
		t.Fatalf("interp: %v", err)
	}
	return result
}

// TestEndToEndScenarios exercises a set of representative reference programs.
func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want int64
	}{
		{"constant-return", "int main(){return 2;}", 2},
		{"double-negation", "int main(){return -(-1);}", 1},
		{"additive-multiplicative", "int main(){int a=1; int b=2; return a+b*3;}", 7},
		{"for-loop-accumulate", "int main(){int s=0; for(int i=0;i<=4;i=i+1) s=s+i; return s;}", 10},
		{"do-while", "int main(){int x=0; do { x=x+1; } while(x<5); return x;}", 5},
		{"short-circuit-ternary", "int main(){return 1 && 0 ? 7 : 9;}", 9},
		{"recursive-fib", "int fib(int n){ if(n<2) return n; return fib(n-1)+fib(n-2); } int main(){ return fib(8); }", 21},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := run(t, c.src); got != c.want {
				t.Errorf("%s: got %d, want %d", c.src, got, c.want)
			}
		})
	}
}

func TestEmptyMainReturnsZero(t *testing.T) {
	if got := run(t, "int main(){}"); got != 0 {
		t.Errorf("empty main: got %d, want 0", got)
	}
}

func TestLogicalAndShortCircuits(t *testing.T) {
	// If && evaluated its right operand, dividing by zero would panic.
	src := "int main(){ return 0 && (1/0); }"
	if got := run(t, src); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestLogicalOrShortCircuits(t *testing.T) {
	src := "int main(){ return 1 || (1/0); }"
	if got := run(t, src); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestDivisionByZeroIsInterpError(t *testing.T) {
	toks, err := lexer.New("int main(){ return 1/0; }").Scan()
	if err != nil {
		t.Fatal(err)
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		t.Fatal(err)
	}
	if err := resolve.Resolve(prog); err != nil {
		t.Fatal(err)
	}
	_, err = interp.Run(prog)
	if _, ok := err.(*interp.InterpError); !ok {
		t.Fatalf("expected *interp.InterpError, got %T (%v)", err, err)
	}
}

func TestBreakExitsLoop(t *testing.T) {
	src := "int main(){ int i=0; while(1) { if (i==3) break; i=i+1; } return i; }"
	if got := run(t, src); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestContinueSkipsRestOfBody(t *testing.T) {
	src := "int main(){ int sum=0; for(int i=0;i<5;i=i+1){ if(i==2) continue; sum=sum+i; } return sum; }"
	if got := run(t, src); got != 8 { // 0+1+3+4
		t.Errorf("got %d, want 8", got)
	}
}

func TestRecursionHasIndependentFrames(t *testing.T) {
	src := "int sum(int n){ if (n==0) return 0; return n+sum(n-1); } int main(){ return sum(5); }"
	if got := run(t, src); got != 15 {
		t.Errorf("got %d, want 15", got)
	}
}

func TestGlobalMutationPersistsAcrossCalls(t *testing.T) {
	src := "int counter = 0; int bump(){ counter = counter + 1; return counter; } int main(){ bump(); bump(); return bump(); }"
	if got := run(t, src); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}
