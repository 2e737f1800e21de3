package ir

import "fmt"

// Lower renders instrs as AT&T assembly body text, one stack slot per
// register. This is a prototype lowering: it has no frame prologue/
// epilogue of its own and is meant to be dropped into the body of a
// function codegen has already opened, not used standalone the way
// codegen's own output is.
func Lower(instrs []Instr) string {
	var out string
	slot := func(r Reg) string { return fmt.Sprintf("%d(%%rsp)", 8*int64(r)) }

	for _, i := range instrs {
		switch i.Op {
		case OpConstant:
			out += fmt.Sprintf("  mov $%d, %s\n", i.Value, slot(i.Dst))
		case OpUnary:
			out += fmt.Sprintf("  mov %s, %%rax\n", slot(i.Src))
			switch i.UnaryOp {
			case '-':
				out += "  neg %rax\n"
			case '~':
				out += "  not %rax\n"
			case '!':
				out += "  cmp $0, %rax\n"
				out += "  mov $0, %rax\n"
				out += "  sete %al\n"
			}
			out += fmt.Sprintf("  mov %%rax, %s\n", slot(i.Dst))
		case OpReturn:
			out += "  mov $0, %rax\n"
			out += "  ret\n"
		case OpReturnValue:
			out += fmt.Sprintf("  mov %s, %%rax\n", slot(i.Src))
			out += "  ret\n"
		}
	}
	return out
}
