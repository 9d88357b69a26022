package money

import "testing"

func TestRound(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{2.344, 2.34},
		{2.345, 2.35},
		{1.005, 1.01},
		{1500.555, 1500.56},
		{10.999, 11},
		{250, 250},
		{-120.004, -120},
	}
	for _, tc := range cases {
		if got := Round(tc.in); got != tc.want {
			t.Fatalf("Round(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestRoundIsStable(t *testing.T) {
	v := Round(1500.555)
	if Round(v) != v {
		t.Fatalf("rounding an already rounded value changed it: %v -> %v", v, Round(v))
	}
}
