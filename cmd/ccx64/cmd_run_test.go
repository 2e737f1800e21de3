package main

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

func TestRunCmdExitsWithInterpretedResult(t *testing.T) {
	dir := t.TempDir()
	src := writeSourceFile(t, dir, "ret7.c", "int main(){ return 7; }")

	cmd := &runCmd{}
	f := flag.NewFlagSet("run", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{src}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	status := cmd.Execute(context.Background(), f)
	if status != subcommands.ExitStatus(7) {
		t.Fatalf("expected exit status 7, got %v", status)
	}
}

func TestRunCmdFailsOnUnresolvedName(t *testing.T) {
	dir := t.TempDir()
	src := writeSourceFile(t, dir, "undef.c", "int main(){ return undefined_name; }")

	cmd := &runCmd{}
	f := flag.NewFlagSet("run", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{src}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	status := cmd.Execute(context.Background(), f)
	if status != subcommands.ExitFailure {
		t.Fatalf("expected ExitFailure for an unresolved name, got %v", status)
	}
}

func TestRunCmdUsageErrorWithNoArgs(t *testing.T) {
	cmd := &runCmd{}
	f := flag.NewFlagSet("run", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(nil); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	status := cmd.Execute(context.Background(), f)
	if status != subcommands.ExitUsageError {
		t.Fatalf("expected ExitUsageError, got %v", status)
	}
}
