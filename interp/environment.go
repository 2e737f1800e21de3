package interp

import "github.com/chadbramwell/write-a-c-compiler-sub000/ast"

// environment is a runtime scope stack of (declaration, value) frames,
// keyed by the declaration node's identity rather than its name — the
// resolver has already disambiguated every usage to a unique *ast.VarDecl,
// so name lookup never needs to happen again here. Each recursive call
// pushes a brand-new frame, so two simultaneously-live activations of the
// same function see independent bindings for the same parameter node,
// a flat map-based environment scoped per call instead of shared
// process-wide.
type environment struct {
	frames []map[*ast.VarDecl]int64
}

func (e *environment) push() {
	e.frames = append(e.frames, make(map[*ast.VarDecl]int64))
}

func (e *environment) pop() {
	e.frames = e.frames[:len(e.frames)-1]
}

func (e *environment) declare(decl *ast.VarDecl, value int64) {
	e.frames[len(e.frames)-1][decl] = value
}

func (e *environment) get(decl *ast.VarDecl) (int64, bool) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][decl]; ok {
			return v, true
		}
	}
	return 0, false
}

// set updates the nearest frame already binding decl. It is used for
// assignment, which must mutate an existing binding rather than create a
// fresh shadowing one.
func (e *environment) set(decl *ast.VarDecl, value int64) bool {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if _, ok := e.frames[i][decl]; ok {
			e.frames[i][decl] = value
			return true
		}
	}
	return false
}
