package analysis

import (
	"math"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input *float64
		want  *float64
	}{
		{name: "nil", input: nil, want: nil},
		{name: "nan", input: floatPtr(math.NaN()), want: nil},
		{name: "positive infinity", input: floatPtr(math.Inf(1)), want: nil},
		{name: "negative infinity", input: floatPtr(math.Inf(-1)), want: nil},
		{name: "above range", input: floatPtr(150), want: floatPtr(100)},
		{name: "below range", input: floatPtr(-5), want: floatPtr(0)},
		{name: "in range", input: floatPtr(42), want: floatPtr(42)},
		{name: "fractional kept", input: floatPtr(72.5), want: floatPtr(72.5)},
		{name: "lower bound", input: floatPtr(0), want: floatPtr(0)},
		{name: "upper bound", input: floatPtr(100), want: floatPtr(100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Clamp(tt.input)
			switch {
			case tt.want == nil && got != nil:
				t.Fatalf("expected nil, got %v", *got)
			case tt.want != nil && got == nil:
				t.Fatalf("expected %v, got nil", *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Fatalf("expected %v, got %v", *tt.want, *got)
			}
		})
	}
}

func TestClampIdempotent(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{-1e6, -5, -0.1, 0, 33.3, 99.9, 100, 150, 1e6} {
		once := Clamp(floatPtr(v))
		twice := Clamp(once)
		if once == nil || twice == nil {
			t.Fatalf("unexpected nil for finite input %v", v)
		}
		if *once != *twice {
			t.Fatalf("clamp is not idempotent for %v: %v vs %v", v, *once, *twice)
		}
	}
}

func TestClampDoesNotAlias(t *testing.T) {
	t.Parallel()

	in := floatPtr(50)
	out := Clamp(in)
	*out = 7
	if *in != 50 {
		t.Fatalf("clamp modified its input: %v", *in)
	}
}
