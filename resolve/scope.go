package resolve

import (
	"github.com/chadbramwell/write-a-c-compiler-sub000/ast"
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/intern"
)

// scopeStack is an explicit stack of scopes, each a map from interned name
// to declaration — cleaner than a flat array with sentinel markers for the
// same purpose. Pushing and popping happen in matched pairs around every
// lexical scope (function body, block, for-header).
type scopeStack struct {
	scopes []map[intern.Symbol]*ast.VarDecl
}

func (s *scopeStack) push() {
	s.scopes = append(s.scopes, make(map[intern.Symbol]*ast.VarDecl))
}

func (s *scopeStack) pop() {
	s.scopes = s.scopes[:len(s.scopes)-1]
}

func (s *scopeStack) declare(name intern.Symbol, decl *ast.VarDecl) {
	s.scopes[len(s.scopes)-1][name] = decl
}

// lookup searches innermost scope first: first hit wins.
func (s *scopeStack) lookup(name intern.Symbol) (*ast.VarDecl, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if decl, ok := s.scopes[i][name]; ok {
			return decl, true
		}
	}
	return nil, false
}

func (s *scopeStack) depth() int { return len(s.scopes) }
