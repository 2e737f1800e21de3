package codegen

import "github.com/chadbramwell/write-a-c-compiler-sub000/token"

// CodegenError reports a construct the lowering pass itself must reject:
// a call with more than four arguments, or a break/continue outside any
// loop. Neither the parser nor the resolver checks these — the Windows
// x64 argument-register budget and the loop-nesting requirement are only
// meaningful once we're choosing instructions.
type CodegenError struct {
	Pos     token.Pos
	Message string
}

func (e *CodegenError) Error() string {
	return e.Pos.String() + ": " + e.Message
}
