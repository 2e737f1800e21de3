// Package resolve implements a single static name-resolution pass over
// the AST: it binds every variable usage and assignment to the
// declaration it refers to, and enforces the whole-program rules that
// need that binding (parameter arity, global initializer shape, main's
// return type).
//
// Names could instead be resolved dynamically at evaluation time, inside
// a scope-frame Environment consulted by the interpreter. This pass
// pulls that lookup out into its own static phase instead, producing a
// resolved AST that the interpreter and codegen both consume without
// ever searching a scope themselves.
package resolve

import (
	"github.com/chadbramwell/write-a-c-compiler-sub000/ast"
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/intern"
	"github.com/chadbramwell/write-a-c-compiler-sub000/token"
)

var mainSymbol = intern.Intern("main")

const maxParams = 4

// Resolver walks a *ast.Program, filling in every Ident.Decl and
// Assign.Decl back-link. It halts at the first error: once r.err is set,
// every Visit method becomes a no-op.
type Resolver struct {
	scopes      scopeStack
	globals     map[intern.Symbol]*ast.VarDecl
	initialized map[intern.Symbol]bool
	err         error
}

// Resolve runs name resolution over prog in place and returns the first
// ResolveError or SemanticError encountered, or nil on success.
func Resolve(prog *ast.Program) error {
	r := &Resolver{
		globals:     make(map[intern.Symbol]*ast.VarDecl),
		initialized: make(map[intern.Symbol]bool),
	}
	for _, d := range prog.Decls {
		r.topDecl(d)
		if r.err != nil {
			return r.err
		}
	}
	return nil
}

func (r *Resolver) topDecl(d ast.TopDecl) {
	switch t := d.(type) {
	case *ast.VarDecl:
		r.globalVarDecl(t)
	case *ast.FuncDecl:
		// A prototype introduces no scope and nothing to resolve; call
		// sites look up callees by name at interp/codegen time, not here.
	case *ast.FuncDef:
		r.funcDef(t)
	}
}

// globalVarDecl enforces the global pool rule: an initialized
// definition may replace an uninitialized declaration, but a second
// initialized definition of the same name is a ResolveError. The
// initializer itself must be a literal constant, never a compile-time
// expression.
func (r *Resolver) globalVarDecl(d *ast.VarDecl) {
	if d.Init != nil {
		if _, ok := d.Init.(*ast.Num); !ok {
			r.err = &SemanticError{Pos: d.Pos(), Message: "global initializer must be a literal constant"}
			return
		}
		if r.initialized[d.Name] {
			r.err = &ResolveError{Pos: d.Pos(), Message: "multiple initializing definitions of global '" + d.Name.String() + "'"}
			return
		}
		r.initialized[d.Name] = true
	}
	r.globals[d.Name] = d
}

func (r *Resolver) funcDef(f *ast.FuncDef) {
	if len(f.Params) > maxParams {
		r.err = &SemanticError{Pos: f.Pos(), Message: "function takes more than four parameters"}
		return
	}
	if f.Name == mainSymbol && !f.ReturnsInt {
		r.err = &SemanticError{Pos: f.Pos(), Message: "main must return int"}
		return
	}

	r.scopes.push()
	defer r.scopes.pop()
	for _, param := range f.Params {
		r.scopes.declare(param.Name, param)
	}
	for _, stmt := range f.Body {
		r.stmt(stmt)
		if r.err != nil {
			return
		}
	}
}

func (r *Resolver) stmt(s ast.Stmt) {
	if r.err != nil {
		return
	}
	s.Accept(r)
}

func (r *Resolver) expr(e ast.Expr) {
	if e == nil || r.err != nil {
		return
	}
	e.Accept(r)
}

// name resolves a usage by interned symbol, consulting the local scope
// stack first and the global pool afterward.
func (r *Resolver) name(sym intern.Symbol, pos token.Pos) *ast.VarDecl {
	if decl, ok := r.scopes.lookup(sym); ok {
		return decl
	}
	if decl, ok := r.globals[sym]; ok {
		return decl
	}
	r.err = &ResolveError{Pos: pos, Message: "undeclared identifier '" + sym.String() + "'"}
	return nil
}
