// Package codegen lowers a resolved *ast.Program to AT&T-syntax x86-64
// assembly text for the Windows x64 calling convention: rcx/rdx/r8/r9
// argument registers, a 32-byte shadow space baked into every frame, and
// %rax as the single expression-result register.
//
// Emission follows a gen_asm_node-style dispatcher: one function per AST
// node kind, emitting instructions in document order with no separate
// instruction-selection or register-allocation pass. Node-to-location
// bindings are tracked in a map (see frame.go) rather than a linear array
// scanned by pointer identity, but everything else — the spill-to-slot
// pattern for binary operators, the label-per-branch scheme, the
// last-statement-is-return epilogue check — follows the same shape.
package codegen

import (
	"bytes"
	"fmt"

	"github.com/chadbramwell/write-a-c-compiler-sub000/ast"
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/intern"
)

var mainSymbol = intern.Intern("main")

const maxArgRegs = 4

var argRegs = [maxArgRegs]string{"%rcx", "%rdx", "%r8", "%r9"}

// loopLabels is what a break or continue inside the loop currently being
// emitted targets: end is the break target, cont is where continue jumps
// (a for-loop's update clause, or the while/do-while condition check).
type loopLabels struct {
	end  string
	cont string
}

// Codegen lowers one *ast.Program to assembly text. Create a fresh one per
// call to Gen; its fields track the function currently being emitted.
type Codegen struct {
	out        bytes.Buffer
	frame      *frame
	labelIndex int
	loops      []loopLabels
	isMain     bool
}

// Gen lowers prog, which must already have passed resolve.Resolve, to
// AT&T assembly text targeting the Windows x64 ABI.
func Gen(prog *ast.Program) (asm string, err error) {
	g := &Codegen{}
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*CodegenError); ok {
				err = ce
				return
			}
			panic(r)
		}
	}()

	for _, d := range prog.Decls {
		if fd, ok := d.(*ast.FuncDef); ok {
			fmt.Fprintf(&g.out, "  .globl %s\n", fd.Name.String())
		}
	}

	g.emitGlobals(prog)

	for _, d := range prog.Decls {
		if fd, ok := d.(*ast.FuncDef); ok {
			g.genFunc(fd)
		}
	}

	return g.out.String(), nil
}

// emitGlobals writes the .data section. A name may appear as more than one
// top-level *ast.VarDecl (an uninitialized declaration followed later by
// an initializing definition); resolve.Resolve already rejected two
// initializing definitions of the same name, so collapsing to one entry
// per name — keeping whichever one carries the initializer, in first-seen
// order — is always unambiguous.
func (g *Codegen) emitGlobals(prog *ast.Program) {
	var order []intern.Symbol
	byName := make(map[intern.Symbol]*ast.VarDecl)
	for _, d := range prog.Decls {
		vd, ok := d.(*ast.VarDecl)
		if !ok {
			continue
		}
		if _, seen := byName[vd.Name]; !seen {
			order = append(order, vd.Name)
		}
		if existing, ok := byName[vd.Name]; !ok || (existing.Init == nil && vd.Init != nil) {
			byName[vd.Name] = vd
		}
	}
	if len(order) == 0 {
		return
	}

	fmt.Fprintf(&g.out, "  .data\n")
	for _, name := range order {
		vd := byName[name]
		fmt.Fprintf(&g.out, "  .globl %s\n", name.String())
		fmt.Fprintf(&g.out, "  .p2align 3\n")
		if vd.Init != nil {
			num := vd.Init.(*ast.Num)
			fmt.Fprintf(&g.out, "%s:\n  .long %d\n", name.String(), num.Value)
		} else {
			fmt.Fprintf(&g.out, "%s:\n  .zero 8\n", name.String())
		}
	}
	fmt.Fprintf(&g.out, "  .text\n")
}

// genFunc emits one function's label, prologue, body, and — unless the
// body's last statement already ended it with VisitReturn's own
// epilogue — a trailing epilogue whose shape depends on what falls off
// the end: 0 for main, nothing for void, a debug trap for any other int
// function that falls off without returning a value.
func (g *Codegen) genFunc(def *ast.FuncDef) {
	g.frame = buildFrame(def.Params, def.Body)
	g.isMain = def.Name == mainSymbol

	fmt.Fprintf(&g.out, "%s:\n", def.Name.String())
	fmt.Fprintf(&g.out, "  sub $%d, %%rsp\n", g.frame.size)

	for i, p := range def.Params {
		fmt.Fprintf(&g.out, "  mov %s, %s\n", argRegs[i], g.varLocation(p))
	}

	for _, s := range def.Body {
		s.Accept(g)
	}

	if !lastIsReturn(def.Body) {
		switch {
		case g.isMain:
			fmt.Fprintf(&g.out, "  mov $0, %%rax\n")
		case def.ReturnsInt:
			fmt.Fprintf(&g.out, "  int $3\n")
		}
		g.emitEpilogue()
	}
}

func lastIsReturn(body []ast.Stmt) bool {
	if len(body) == 0 {
		return false
	}
	_, ok := body[len(body)-1].(*ast.Return)
	return ok
}

func (g *Codegen) emitEpilogue() {
	fmt.Fprintf(&g.out, "  add $%d, %%rsp\n", g.frame.size)
	fmt.Fprintf(&g.out, "  ret\n")
}

func (g *Codegen) newLabel(prefix string) string {
	label := fmt.Sprintf("%s_%d", prefix, g.labelIndex)
	g.labelIndex++
	return label
}

// slotLocation addresses a node's own spill slot: %rsp-relative, used for
// both local variables and scratch storage for in-flight binary operators.
func (g *Codegen) slotLocation(node any) string {
	return fmt.Sprintf("%d(%%rsp)", g.frame.offsetOf(node))
}

// varLocation addresses a variable's storage: a global lives at a %rip-
// relative label, a local or parameter lives in its stack slot. Which one
// applies was already decided by the resolver (VarDecl.IsGlobal), so this
// never needs its own scope search.
func (g *Codegen) varLocation(d *ast.VarDecl) string {
	if d.IsGlobal {
		return d.Name.String() + "(%rip)"
	}
	return g.slotLocation(d)
}
