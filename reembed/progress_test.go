package reembed

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressTrackerReportsAtInterval(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 100, 25)
	tracker.Start()

	tracker.Update(10) // below interval, no report
	if buf.Len() != 0 {
		t.Fatalf("Expected no report below interval, got '%s'", buf.String())
	}

	tracker.Update(30) // crossed 25
	if !strings.Contains(buf.String(), "30/100") {
		t.Fatalf("Expected progress report, got '%s'", buf.String())
	}
	if !strings.Contains(buf.String(), "30.0%") {
		t.Fatalf("Expected percentage, got '%s'", buf.String())
	}
}

func TestProgressTrackerIncrement(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 5)
	tracker.Start()

	tracker.Increment(3)
	tracker.Increment(3)
	if !strings.Contains(buf.String(), "6/10") {
		t.Fatalf("Expected report after crossing interval, got '%s'", buf.String())
	}
}

func TestProgressTrackerFinish(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 50, 100)
	tracker.Start()
	tracker.Update(20)
	tracker.Finish()

	if !strings.Contains(buf.String(), "50/50") {
		t.Fatalf("Expected final report at total, got '%s'", buf.String())
	}
	if !strings.Contains(buf.String(), "100.0%") {
		t.Fatalf("Expected 100%%, got '%s'", buf.String())
	}
}

func TestProgressTrackerCapsAtTotal(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 1)
	tracker.Start()
	tracker.Update(99)

	if !strings.Contains(buf.String(), "10/10") {
		t.Fatalf("Expected capped progress, got '%s'", buf.String())
	}
}

func TestProgressTrackerIgnoredBeforeStart(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, 10, 1)

	tracker.Update(5)
	tracker.Finish()
	if buf.Len() != 0 {
		t.Fatalf("Expected no output before Start, got '%s'", buf.String())
	}
	if tracker.Elapsed() != 0 {
		t.Fatal("Expected zero elapsed before Start")
	}
}
