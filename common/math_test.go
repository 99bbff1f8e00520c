package common

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Fatalf("Clamp(5,0,1) = %f", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Fatalf("Clamp(-5,0,1) = %f", got)
	}
	if got := Clamp(0.25, 0, 1); got != 0.25 {
		t.Fatalf("Clamp(0.25,0,1) = %f", got)
	}
}

func TestEaseInOutEndpoints(t *testing.T) {
	if !almostEq(EaseInOut(0), 0, 1e-6) {
		t.Fatalf("EaseInOut(0) = %f", EaseInOut(0))
	}
	if !almostEq(EaseInOut(1), 1, 1e-6) {
		t.Fatalf("EaseInOut(1) = %f", EaseInOut(1))
	}
	if !almostEq(EaseInOut(0.5), 0.5, 1e-6) {
		t.Fatalf("EaseInOut(0.5) = %f", EaseInOut(0.5))
	}
}

func TestEaseInOutMonotonic(t *testing.T) {
	prev := float32(0)
	for i := 1; i <= 100; i++ {
		v := EaseInOut(float32(i) / 100)
		if v < prev {
			t.Fatalf("ease curve decreased at t=%f", float32(i)/100)
		}
		prev = v
	}
}

func TestPerspectiveInverseRoundTrip(t *testing.T) {
	proj := make([]float32, 16)
	inv := make([]float32, 16)
	out := make([]float32, 16)
	Perspective(proj, float32(math.Pi/4), 16.0/9.0, 0.1, 1000)
	Invert4(inv, proj)
	Mul4(out, proj, inv)

	ident := make([]float32, 16)
	Identity(ident)
	for i := range out {
		if !almostEq(out[i], ident[i], 1e-4) {
			t.Fatalf("proj * inv(proj) differs from identity at %d: %f", i, out[i])
		}
	}
}
