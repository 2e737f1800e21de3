package resolve

import "github.com/chadbramwell/write-a-c-compiler-sub000/token"

// ResolveError reports a reference to an undeclared identifier or a second
// initializing definition of a global variable.
type ResolveError struct {
	Pos     token.Pos
	Message string
}

func (e *ResolveError) Error() string {
	return e.Pos.String() + ": " + e.Message
}

// SemanticError reports a whole-program rule violation that is not a
// naming problem: a non-literal global initializer, more than four
// function parameters, or main declared with the wrong return type.
type SemanticError struct {
	Pos     token.Pos
	Message string
}

func (e *SemanticError) Error() string {
	return e.Pos.String() + ": " + e.Message
}
