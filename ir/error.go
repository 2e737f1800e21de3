package ir

import "github.com/chadbramwell/write-a-c-compiler-sub000/token"

// BuildError reports a token sequence the builder can't turn into an
// instruction: an expression with no unary-operator target, a statement
// missing its terminating semicolon, or running out of tokens mid-body.
type BuildError struct {
	Pos     token.Pos
	Message string
}

func (e *BuildError) Error() string {
	return e.Pos.String() + ": " + e.Message
}
