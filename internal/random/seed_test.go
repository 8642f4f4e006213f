package random

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewSeedFrom(t *testing.T) {
	seed, err := NewSeedFrom(bytes.NewReader([]byte{1, 0, 0, 0, 0, 0, 0, 0}))
	if err != nil {
		t.Fatalf("NewSeedFrom() error = %v", err)
	}
	if seed != 1 {
		t.Fatalf("seed = %d, want 1", seed)
	}
}

func TestNewSeedFromShortRead(t *testing.T) {
	_, err := NewSeedFrom(bytes.NewReader([]byte{1, 2, 3}))
	if err == nil {
		t.Fatal("expected error for short entropy")
	}
	if !strings.Contains(err.Error(), "read random seed") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewSeedVaries(t *testing.T) {
	first, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed() error = %v", err)
	}
	for i := 0; i < 4; i++ {
		next, err := NewSeed()
		if err != nil {
			t.Fatalf("NewSeed() error = %v", err)
		}
		if next != first {
			return
		}
	}
	t.Fatal("NewSeed returned the same value five times")
}
