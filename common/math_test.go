package common

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	cases := []struct {
		name    string
		t, a, b float64
		want    float64
	}{
		{"start", 0, 10, 20, 10},
		{"end", 1, 10, 20, 20},
		{"middle", 0.5, -5, 5, 0},
		{"degenerate", 0.7, 3, 3, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.t, c.a, c.b); math.Abs(got-c.want) > 1e-12 {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.t, c.a, c.b, got, c.want)
			}
		})
	}
}

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Fatalf("DegToRad(180) = %v, want pi", got)
	}
	if got := DegToRad(-90); math.Abs(got+math.Pi/2) > 1e-12 {
		t.Fatalf("DegToRad(-90) = %v, want -pi/2", got)
	}
}
