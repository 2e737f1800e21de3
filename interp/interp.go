// Package interp implements a tree-walking interpreter: it evaluates a
// resolved *ast.Program directly, without ever lowering to assembly, and
// serves as the reference the codegen path is cross-checked against.
//
// The walk is visitor-based with a defer/recover boundary for runtime
// faults, the same shape a single panic-based early exit would take, but
// split into three orthogonal "in-flight" flags
// (returnPending/breakPending/continuePending): break and continue must
// be caught by the nearest loop while return must pass through every
// enclosing block up to the function call itself, a distinction a single
// escape mechanism can't express.
package interp

import (
	"github.com/chadbramwell/write-a-c-compiler-sub000/ast"
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/intern"
	"github.com/chadbramwell/write-a-c-compiler-sub000/token"
)

var mainSymbol = intern.Intern("main")

// Interp walks a resolved program. Construct one with New and call Run.
type Interp struct {
	funcs   map[intern.Symbol]*ast.FuncDef
	globals map[*ast.VarDecl]int64
	env     environment

	returnPending   bool
	breakPending    bool
	continuePending bool
	returnValue     int64
}

// New builds an Interp over prog, evaluating global initializers
// immediately — they are literals only, so no function call or scope is
// needed to evaluate them.
func New(prog *ast.Program) *Interp {
	it := &Interp{
		funcs:   make(map[intern.Symbol]*ast.FuncDef),
		globals: make(map[*ast.VarDecl]int64),
	}
	for _, d := range prog.Decls {
		switch t := d.(type) {
		case *ast.FuncDef:
			it.funcs[t.Name] = t
		case *ast.VarDecl:
			if t.Init != nil {
				it.globals[t] = t.Init.(*ast.Num).Value
			} else {
				it.globals[t] = 0
			}
		}
	}
	return it
}

// Run interprets prog's main function and returns its result. Runtime
// faults raised with panic inside the walk (division by zero, a call to
// an undefined function, an arity mismatch) are recovered here and
// returned as an *InterpError.
func Run(prog *ast.Program) (result int64, err error) {
	it := New(prog)
	main, ok := it.funcs[mainSymbol]
	if !ok {
		return 0, &InterpError{Message: "no 'main' function defined"}
	}
	defer func() {
		if r := recover(); r != nil {
			if ierr, ok := r.(*InterpError); ok {
				err = ierr
				return
			}
			panic(r)
		}
	}()
	return it.call(main, nil, token.Pos{}), nil
}

// call invokes def with the given already-evaluated arguments. Falling off
// the end of the body without reaching a return yields 0 — the explicit
// rule for main's empty body, generalized here as this interpreter's
// choice of "unspecified value" for any other function, matching the
// deterministic value codegen's debug trap would otherwise make
// unobservable anyway.
func (it *Interp) call(def *ast.FuncDef, args []int64, callPos token.Pos) int64 {
	if len(args) != len(def.Params) {
		panic(&InterpError{Pos: callPos, Message: "call to '" + def.Name.String() + "' has the wrong number of arguments"})
	}

	it.env.push()
	for i, param := range def.Params {
		it.env.declare(param, args[i])
	}

	for _, stmt := range def.Body {
		it.exec(stmt)
		if it.returnPending {
			break
		}
	}

	var result int64
	if it.returnPending {
		result = it.returnValue
		it.returnPending = false
	}
	it.env.pop()
	return result
}

func (it *Interp) exec(s ast.Stmt) {
	if it.returnPending || it.breakPending || it.continuePending {
		return
	}
	s.Accept(it)
}

func (it *Interp) eval(e ast.Expr) int64 {
	return e.Accept(it).(int64)
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
