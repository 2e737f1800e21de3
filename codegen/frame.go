package codegen

import (
	"github.com/chadbramwell/write-a-c-compiler-sub000/ast"
	"github.com/samber/lo"
)

// frame gives every function-local declaration — each parameter, each
// local variable, and every binary-operator node — its own 8-byte slot at
// a fixed offset from %rsp. It is computed once per function, before any
// instruction is emitted, by walking the whole body ahead of time: a
// two-pass shape that resolves a function's local-slot count before
// emitting a single instruction.
//
// A binary operator needs a slot because evaluating its left and right
// operands can itself require arbitrarily many nested evaluations, and
// this lowering keeps exactly one scratch register (%rax) live across
// operand evaluation: the first operand's result is spilled to the node's
// own slot while the second operand is computed, then reloaded.
type frame struct {
	offsets map[any]int64
	size    int64
}

// buildFrame walks params (in argument order) and then body (in document
// order), assigning slots exactly where push_vars_recursive would: one
// per *ast.VarDecl it encounters (never for a mere usage or assignment)
// and one per *ast.Binary node, recursing into every statement and
// expression shape along the way.
func buildFrame(params []*ast.VarDecl, body []ast.Stmt) *frame {
	var pairs []lo.Tuple2[any, int64]
	next := int64(0)
	assign := func(node any) {
		pairs = append(pairs, lo.Tuple2[any, int64]{A: node, B: 32 + 8*next})
		next++
	}

	for _, p := range params {
		assign(p)
	}
	sc := &slotCounter{assign: assign}
	for _, s := range body {
		s.Accept(sc)
	}

	offsets := lo.Associate(pairs, func(t lo.Tuple2[any, int64]) (any, int64) {
		return t.A, t.B
	})

	size := 32 + 8*next
	return &frame{offsets: offsets, size: size}
}

// offsetOf looks up the slot assigned to a *ast.VarDecl or *ast.Binary
// node. A miss means buildFrame didn't walk a node that emission later
// visited — a bug in the slot counter, not a user-facing error.
func (f *frame) offsetOf(node any) int64 {
	off, ok := f.offsets[node]
	if !ok {
		panic(&CodegenError{Message: "internal error: no stack slot assigned for node"})
	}
	return off
}
