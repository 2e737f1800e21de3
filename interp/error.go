package interp

import "github.com/chadbramwell/write-a-c-compiler-sub000/token"

// InterpError reports a runtime fault: division or modulo by zero, a call
// to an undefined function, or a call whose argument count does not match
// the callee's parameter count.
type InterpError struct {
	Pos     token.Pos
	Message string
}

func (e *InterpError) Error() string {
	return e.Pos.String() + ": " + e.Message
}
