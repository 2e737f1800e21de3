package ast

import (
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/intern"
	"github.com/chadbramwell/write-a-c-compiler-sub000/token"
)

// Num is an integer literal. The parser may also produce a Num for a unary
// operator applied directly to a literal (its default constant-fold
// behavior); such a Num carries no trace of the original operator.
type Num struct {
	Value   int64
	NodePos token.Pos
}

func (n *Num) Accept(v ExprVisitor) any { return v.VisitNum(n) }
func (n *Num) Pos() token.Pos           { return n.NodePos }

// Unary is a prefix operator applied to one operand: -x, ~x, !x.
type Unary struct {
	Op      token.Kind
	Operand Expr
	NodePos token.Pos
}

func (u *Unary) Accept(v ExprVisitor) any { return v.VisitUnary(u) }
func (u *Unary) Pos() token.Pos           { return u.NodePos }

// Binary is an infix operator: arithmetic, relational, equality, or
// logical. Op preserves the source operator's identity (token.Kind), not a
// pre-evaluated meaning, so every pass decides for itself what Op does.
type Binary struct {
	Op      token.Kind
	Left    Expr
	Right   Expr
	NodePos token.Pos
}

func (b *Binary) Accept(v ExprVisitor) any { return v.VisitBinary(b) }
func (b *Binary) Pos() token.Pos           { return b.NodePos }

// Ternary is `cond ? then : else`, right-associative in its Else arm.
type Ternary struct {
	Cond    Expr
	Then    Expr
	Else    Expr
	NodePos token.Pos
}

func (t *Ternary) Accept(v ExprVisitor) any { return v.VisitTernary(t) }
func (t *Ternary) Pos() token.Pos           { return t.NodePos }

// Ident is a variable usage (a read). Decl is filled in by the resolver;
// it is nil until resolution runs and must never still be nil afterward —
// an unresolved identifier is always a reported error, never a silent gap.
type Ident struct {
	Name    intern.Symbol
	Decl    *VarDecl
	NodePos token.Pos
}

func (id *Ident) Accept(v ExprVisitor) any { return v.VisitIdent(id) }
func (id *Ident) Pos() token.Pos           { return id.NodePos }

// Assign is `name = value`. In this subset the only l-value is a bare
// identifier, so Assign carries the name directly rather than a general
// l-value expression. Decl is filled in by the resolver, same as Ident.
type Assign struct {
	Name    intern.Symbol
	Value   Expr
	Decl    *VarDecl
	NodePos token.Pos
}

func (a *Assign) Accept(v ExprVisitor) any { return v.VisitAssign(a) }
func (a *Assign) Pos() token.Pos           { return a.NodePos }

// Call is a function call `name(args...)`. Call arity is capped at four,
// matching the calling convention's argument-register budget; codegen
// enforces that, not this type.
type Call struct {
	Callee  intern.Symbol
	Args    []Expr
	NodePos token.Pos
}

func (c *Call) Accept(v ExprVisitor) any { return v.VisitCall(c) }
func (c *Call) Pos() token.Pos           { return c.NodePos }
