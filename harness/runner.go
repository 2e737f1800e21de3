// Package harness implements the ground-truth test driver: for each
// `.c` file under a directory tree, it interprets the source and also
// assembles/links/runs codegen's output, then asserts the interpreter,
// the compiled executable, and (if known) the case's expected exit code
// all agree.
//
// Grounded on the original test.cpp's per-case pipeline (read file, lex,
// build the AST, interpret, generate assembly, assemble+link+run,
// compare against a cached or freshly-computed ground truth), adapted
// into per-field Go packages (lexer, parser, resolve, interp, codegen)
// instead of test.cpp's single monolithic driver function.
package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/chadbramwell/write-a-c-compiler-sub000/codegen"
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/cache"
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/fsx"
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/subproc"
	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/timer"
	"github.com/chadbramwell/write-a-c-compiler-sub000/interp"
	"github.com/chadbramwell/write-a-c-compiler-sub000/lexer"
	"github.com/chadbramwell/write-a-c-compiler-sub000/parser"
	"github.com/chadbramwell/write-a-c-compiler-sub000/resolve"
)

// runCmd is the subprocess entry point Runner uses for assembling,
// linking, and executing a case; a field rather than a direct call to
// subproc.Run so tests can substitute a fake toolchain.
type runCmd func(name string, args ...string) (subproc.Result, error)

// Runner drives one Case at a time through the full interpret-and-compile
// pipeline. Assembler names the toolchain invoked to turn codegen's
// assembly text into an executable (e.g. "clang" or "cc"); it is invoked
// as `Assembler <asm-file> -o <exe-file>`.
type Runner struct {
	Assembler string
	Cache     *cache.Cache
	WorkDir   string

	run runCmd // nil means subproc.Run
}

// Result is one case's outcome: every exit code observed and whether
// they all agreed.
type Result struct {
	Case         Case
	InterpExit   int64
	CompiledExit int
	Passed       bool
	Mismatch     string // empty if Passed
	Elapsed      time.Duration
}

func (r *Runner) runCmd() runCmd {
	if r.run != nil {
		return r.run
	}
	return subproc.Run
}

// Run interprets and compiles c.Path, asserting every backend agrees,
// and reports whether it does.
func (r *Runner) Run(c Case) (Result, error) {
	var sw timer.Stopwatch
	sw.Start()
	defer func() { sw.Stop() }()

	src, err := fsx.ReadFile(c.Path)
	if err != nil {
		return Result{Case: c}, err
	}

	toks, err := lexer.New(string(src)).Scan()
	if err != nil {
		return Result{Case: c}, err
	}
	prog, err := parser.Parse(toks)
	if err != nil {
		return Result{Case: c}, err
	}
	if err := resolve.Resolve(prog); err != nil {
		return Result{Case: c}, err
	}

	interpExit, err := interp.Run(prog)
	if err != nil {
		return Result{Case: c}, err
	}

	asm, err := codegen.Gen(prog)
	if err != nil {
		return Result{Case: c}, err
	}

	compiledExit, err := r.assembleLinkRun(c.Path, asm)
	if err != nil {
		return Result{Case: c}, err
	}

	elapsed := sw.Stop()

	res := Result{
		Case:         c,
		InterpExit:   interpExit,
		CompiledExit: compiledExit,
		Elapsed:      elapsed,
	}

	if interpExit != int64(compiledExit) {
		res.Mismatch = fmt.Sprintf("interpreter returned %d but the compiled executable returned %d", interpExit, compiledExit)
		return res, nil
	}
	if c.HasExpected && int64(c.Expected) != interpExit {
		res.Mismatch = fmt.Sprintf("expected exit code %d, both backends returned %d", c.Expected, interpExit)
		return res, nil
	}
	if !c.HasExpected && r.Cache != nil {
		r.Cache.Add(cache.PathHash(c.Path), int32(interpExit))
	}

	res.Passed = true
	return res, nil
}

func (r *Runner) assembleLinkRun(sourcePath, asm string) (int, error) {
	workDir := r.WorkDir
	if workDir == "" {
		workDir = os.TempDir()
	}
	base := filepath.Base(sourcePath)
	asmPath := filepath.Join(workDir, base+".s")
	exePath := filepath.Join(workDir, base+".exe")

	if err := os.WriteFile(asmPath, []byte(asm), 0o644); err != nil {
		return 0, err
	}
	defer os.Remove(asmPath)
	defer os.Remove(exePath)

	run := r.runCmd()
	if _, err := run(r.Assembler, asmPath, "-o", exePath); err != nil {
		return 0, err
	}
	res, err := run(exePath)
	if err != nil {
		return 0, err
	}
	return res.ExitCode, nil
}

// ParseExitCode parses a decimal exit code into an int32.
func ParseExitCode(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	return int32(n), err
}
