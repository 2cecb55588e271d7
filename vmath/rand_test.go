package vmath

import "testing"

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(42), NewFastRand(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("step %d: expected identical sequences, got %d and %d", i, x, y)
		}
	}
}

func TestFastRandRange(t *testing.T) {
	r := NewFastRand(0)
	for i := 0; i < 10000; i++ {
		if v := r.Intn(100); v < 0 || v >= 100 {
			t.Fatalf("Intn(100) out of range: %d", v)
		}
	}
	if r.Intn(0) != 0 || r.Intn(-5) != 0 {
		t.Error("Expected 0 for non-positive n")
	}
}
