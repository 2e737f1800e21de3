package parser

import "github.com/chadbramwell/write-a-c-compiler-sub000/token"

// ParseError reports an unexpected token, missing punctuation, or another
// grammar mismatch discovered past the point where a production has
// committed to a rule. It is sticky: once returned, every
// enclosing production aborts rather than trying a different alternative.
type ParseError struct {
	Pos     token.Pos
	Message string
}

func (e *ParseError) Error() string {
	return e.Pos.String() + ": " + e.Message
}
