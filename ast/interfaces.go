// Package ast defines the abstract syntax tree produced by the parser.
//
// Each grammar production gets its own Go type rather than a tagged union
// with an undiscriminated payload: the Accept/Visitor pairing below gives
// every pass over the tree — the resolver, the interpreter, the codegen,
// the simplifier — an exhaustive switch enforced by the compiler instead
// of a runtime tag check.
package ast

import "github.com/chadbramwell/write-a-c-compiler-sub000/token"

// Expr is any expression node: it always evaluates to a 64-bit value.
type Expr interface {
	Accept(v ExprVisitor) any
	Pos() token.Pos
}

// ExprVisitor operates on every Expr variant. Implementations: the
// resolver, the interpreter, the codegen, the simplifier.
type ExprVisitor interface {
	VisitNum(*Num) any
	VisitUnary(*Unary) any
	VisitBinary(*Binary) any
	VisitTernary(*Ternary) any
	VisitIdent(*Ident) any
	VisitAssign(*Assign) any
	VisitCall(*Call) any
}

// Stmt is any statement node. Unlike Expr, a Stmt does not produce a value.
// Block items (the body of a block, a for/while/if branch) are Stmts;
// *VarDecl implements Stmt so a declaration can appear as a block item
// directly, per the grammar's `block_item := statement | declaration`.
type Stmt interface {
	Accept(v StmtVisitor) any
	Pos() token.Pos
}

// StmtVisitor operates on every Stmt variant.
type StmtVisitor interface {
	VisitVarDecl(*VarDecl) any
	VisitExprStmt(*ExprStmt) any
	VisitReturn(*Return) any
	VisitIf(*If) any
	VisitFor(*For) any
	VisitWhile(*While) any
	VisitDoWhile(*DoWhile) any
	VisitBreak(*Break) any
	VisitContinue(*Continue) any
	VisitEmpty(*Empty) any
	VisitBlock(*Block) any
}

// TopDecl is a top-level program member: a function declaration, a
// function definition, or a global variable.
type TopDecl interface {
	Pos() token.Pos
	topDecl()
}

// Program is the root of the AST: an ordered sequence of top-level nodes.
type Program struct {
	Decls []TopDecl
}
