package ir

import "github.com/chadbramwell/write-a-c-compiler-sub000/token"

// Build constructs IR for a function body directly from its token
// stream — no lexer-to-AST step at all. toks holds every token between
// the function's opening '{' and closing '}' (exclusive of both); the
// only statement shape recognized is `return`, `return <unary-expr>`, or
// a bare `<unary-expr>` followed by ';'.
//
// Each statement's tokens are scanned forward to find its end, then
// walked back to front to emit instructions: the last token emitted
// first, so a prefix chain like `-~5` produces the constant before the
// operators that wrap it, each one consuming the register the previous
// instruction produced.
func Build(toks []token.Token) ([]Instr, error) {
	b := &builder{toks: toks}
	for b.pos < len(b.toks) && b.toks[b.pos].Kind != token.EOF {
		if err := b.statement(); err != nil {
			return nil, err
		}
	}
	return b.instrs, nil
}

type builder struct {
	toks    []token.Token
	pos     int
	instrs  []Instr
	nextReg Reg
}

func (b *builder) newReg() Reg {
	b.nextReg++
	return b.nextReg
}

func (b *builder) emit(i Instr) {
	b.instrs = append(b.instrs, i)
}

func isExprToken(k token.Kind) bool {
	switch k {
	case token.Constant, token.Kind('!'), token.Kind('-'), token.Kind('~'):
		return true
	default:
		return false
	}
}

// statement consumes one `[return] unary* constant ;` or `return ;`
// statement and appends its instructions.
func (b *builder) statement() error {
	start := b.pos
	if start >= len(b.toks) {
		return &BuildError{Message: "unexpected end of function body"}
	}

	if b.toks[start].Kind == token.KwReturn {
		b.pos++
	}
	for b.pos < len(b.toks) && isExprToken(b.toks[b.pos].Kind) {
		b.pos++
	}
	if b.pos >= len(b.toks) {
		return &BuildError{Pos: b.toks[start].Pos, Message: "unexpected end of function body"}
	}
	end := b.pos // exclusive
	if end == start {
		return &BuildError{Pos: b.toks[start].Pos, Message: "expected an expression"}
	}

	if end-start == 1 && b.toks[start].Kind == token.KwReturn {
		b.emit(Instr{Op: OpReturn})
	} else {
		var lastReg Reg
		for i := end - 1; i >= start; i-- {
			t := b.toks[i]
			switch t.Kind {
			case token.KwReturn:
				if lastReg == 0 {
					return &BuildError{Pos: t.Pos, Message: "return is missing its value"}
				}
				b.emit(Instr{Op: OpReturnValue, Src: lastReg})
			case token.Constant:
				reg := b.newReg()
				b.emit(Instr{Op: OpConstant, Value: t.Num, Dst: reg})
				lastReg = reg
			case token.Kind('!'), token.Kind('-'), token.Kind('~'):
				if lastReg == 0 {
					return &BuildError{Pos: t.Pos, Message: "unary operator is missing its operand"}
				}
				reg := b.newReg()
				b.emit(Instr{Op: OpUnary, UnaryOp: byte(t.Kind), Src: lastReg, Dst: reg})
				lastReg = reg
			}
		}
	}

	if b.pos >= len(b.toks) || b.toks[b.pos].Kind != token.Kind(';') {
		pos := b.toks[start].Pos
		if b.pos < len(b.toks) {
			pos = b.toks[b.pos].Pos
		}
		return &BuildError{Pos: pos, Message: "expected ';' after expression"}
	}
	b.pos++
	return nil
}
