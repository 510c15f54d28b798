package utils

import (
	"testing"
	"time"
)

func TestParseWireTime(t *testing.T) {
	got, err := ParseWireTime("01-06-2026 18:30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := time.Date(2026, time.June, 1, 18, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parsed = %v, want %v", got, want)
	}
}

func TestParseWireTimeRejectsOutputLayout(t *testing.T) {
	if _, err := ParseWireTime("2026-06-01T18:30:00"); err == nil {
		t.Error("expected error for output-layout input")
	}
}

func TestFormatWireTime(t *testing.T) {
	in := time.Date(2026, time.June, 1, 18, 30, 0, 0, time.UTC)
	if got := FormatWireTime(in); got != "2026-06-01T18:30:00" {
		t.Errorf("formatted = %q, want %q", got, "2026-06-01T18:30:00")
	}
}

func TestWireTimeRoundTripIsAsymmetric(t *testing.T) {
	in := "01-06-2026 18:30"
	parsed, err := ParseWireTime(in)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out := FormatWireTime(parsed); out == in {
		t.Error("input and output layouts must differ")
	}
}
