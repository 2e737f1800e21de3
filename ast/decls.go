package ast

import (
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/intern"
	"github.com/chadbramwell/write-a-c-compiler-sub000/token"
)

// VarDecl is a variable declaration, optionally initialized: `int x;` or
// `int x = expr;`. It implements Stmt (so it can appear as a block item)
// and is also used, with IsParam set, for function parameters, and, with
// IsGlobal set, for top-level globals — all three are a declaration and
// an (optional) assignment folded into one node shape.
type VarDecl struct {
	Name     intern.Symbol
	Init     Expr // nil if uninitialized
	IsParam  bool
	IsGlobal bool
	NodePos  token.Pos
}

func (d *VarDecl) Accept(v StmtVisitor) any { return v.VisitVarDecl(d) }
func (d *VarDecl) Pos() token.Pos           { return d.NodePos }
func (d *VarDecl) topDecl()                 {}

// FuncDecl is a function prototype with no body: `int f(int a);`.
type FuncDecl struct {
	Name    intern.Symbol
	Params  []*VarDecl
	NodePos token.Pos
}

func (d *FuncDecl) Pos() token.Pos { return d.NodePos }
func (d *FuncDecl) topDecl()       {}

// FuncDef is a function definition with a body. ReturnsInt distinguishes
// `int` from `void`, the only two return shapes this language has.
type FuncDef struct {
	Name       intern.Symbol
	ReturnsInt bool
	Params     []*VarDecl
	Body       []Stmt
	NodePos    token.Pos
}

func (d *FuncDef) Pos() token.Pos { return d.NodePos }
func (d *FuncDef) topDecl()       {}
