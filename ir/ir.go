// Package ir implements a linear, register-based intermediate
// representation built directly from a token stream rather than from an
// *ast.Program. It covers a deliberately small slice of the language —
// integer constants, the three unary operators, and return — mirroring
// how the original compiler's own IR pass grew: a register per
// sub-expression result, instructions appended in the order the
// expression is evaluated.
package ir

import "fmt"

// Op identifies one IR instruction's shape.
type Op int

const (
	OpConstant Op = iota
	OpUnary
	OpReturn
	OpReturnValue
)

func (op Op) String() string {
	switch op {
	case OpConstant:
		return "OpConstant"
	case OpUnary:
		return "OpUnary"
	case OpReturn:
		return "OpReturn"
	case OpReturnValue:
		return "OpReturnValue"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Reg is a register id. Ids are assigned in increasing order starting
// from 1; 0 means "no register" and only appears where an instruction's
// shape doesn't use one of its register fields.
type Reg uint64

// Instr is one IR instruction. Only the fields relevant to Op are
// meaningful; this mirrors the tagged union the original IR struct used,
// flattened into one Go struct since the field set per Op is small and
// fixed.
type Instr struct {
	Op      Op
	Value   int64 // OpConstant: the literal's value
	UnaryOp byte  // OpUnary: '-', '~', or '!'
	Src     Reg   // OpUnary: operand register. OpReturnValue: value register
	Dst     Reg   // OpConstant, OpUnary: result register
}

func (i Instr) String() string {
	switch i.Op {
	case OpConstant:
		return fmt.Sprintf("%s: $%d -> r%d", i.Op, i.Value, i.Dst)
	case OpUnary:
		return fmt.Sprintf("%s: %cr%d -> r%d", i.Op, i.UnaryOp, i.Src, i.Dst)
	case OpReturn:
		return i.Op.String()
	case OpReturnValue:
		return fmt.Sprintf("%s: r%d", i.Op, i.Src)
	default:
		return i.Op.String()
	}
}

// Dump writes one instruction per line, index-prefixed, in the exact
// layout the original dump_ir function used for its debug output.
func Dump(instrs []Instr) string {
	var out string
	for idx, instr := range instrs {
		out += fmt.Sprintf("[%3d] %s\n", idx, instr)
	}
	return out
}
