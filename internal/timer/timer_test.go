package timer_test

import (
	"testing"
	"time"

	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/timer"
)

func TestStopwatchMeasuresElapsedTime(t *testing.T) {
	var sw timer.Stopwatch
	sw.Start()
	time.Sleep(time.Millisecond)
	d := sw.Stop()
	if d <= 0 {
		t.Fatalf("expected a positive elapsed duration, got %v", d)
	}
	if sw.Milliseconds() <= 0 {
		t.Fatalf("expected a positive millisecond reading, got %v", sw.Milliseconds())
	}
}

func TestStopwatchRestartsOnSecondStart(t *testing.T) {
	var sw timer.Stopwatch
	sw.Start()
	sw.Stop()
	first := sw.Milliseconds()

	time.Sleep(time.Millisecond)
	sw.Start()
	d := sw.Stop()
	if d <= 0 {
		t.Fatalf("expected a fresh positive interval after restart, got %v", d)
	}
	_ = first
}
