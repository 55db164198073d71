package physics

import "testing"

func TestRampSurfaceY(t *testing.T) {
	up := NewAscendingRamp(V(100, 400), 200, 50)
	down := NewDescendingRamp(V(100, 400), 200, 50)

	tests := []struct {
		name     string
		ramp     Ramp
		x        float64
		expected float64
	}{
		{"ascending start", up, 100, 400},
		{"ascending middle", up, 200, 375},
		{"ascending end", up, 300, 350},
		{"descending start", down, 100, 350},
		{"descending middle", down, 200, 375},
		{"descending end", down, 300, 400},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ramp.SurfaceY(tc.x); got != tc.expected {
				t.Errorf("SurfaceY(%v) = %v, expected %v", tc.x, got, tc.expected)
			}
		})
	}
}

func TestRampContainsX(t *testing.T) {
	r := NewAscendingRamp(V(100, 400), 200, 50)

	tests := []struct {
		x        float64
		expected bool
	}{
		{99, false},
		{100, true},
		{250, true},
		{300, true},
		{301, false},
	}

	for _, tc := range tests {
		if got := r.ContainsX(tc.x); got != tc.expected {
			t.Errorf("ContainsX(%v) = %v, expected %v", tc.x, got, tc.expected)
		}
	}
}

func TestRampDegenerateWidth(t *testing.T) {
	for _, width := range []float64{0, -10} {
		r := NewAscendingRamp(V(100, 400), width, 50)
		if r.ContainsX(100) {
			t.Errorf("ContainsX() on width %v = true, expected false", width)
		}
		if got := r.SurfaceY(100); got != 400 {
			t.Errorf("SurfaceY() on width %v = %v, expected 400", width, got)
		}
	}
}

func TestRampSlopeAccel(t *testing.T) {
	if got := NewAscendingRamp(V(0, 0), 10, 10).SlopeAccel(); got != -SlopeAccelMagnitude {
		t.Errorf("ascending SlopeAccel() = %v, expected %v", got, -SlopeAccelMagnitude)
	}
	if got := NewDescendingRamp(V(0, 0), 10, 10).SlopeAccel(); got != SlopeAccelMagnitude {
		t.Errorf("descending SlopeAccel() = %v, expected %v", got, SlopeAccelMagnitude)
	}
}

func TestMoveToward(t *testing.T) {
	tests := []struct {
		value, target, delta, expected float64
	}{
		{0, 10, 3, 3},
		{9, 10, 3, 10},
		{10, 0, 4, 6},
		{2, 0, 4, 0},
		{-5, 0, 2, -3},
	}

	for _, tc := range tests {
		if got := MoveToward(tc.value, tc.target, tc.delta); got != tc.expected {
			t.Errorf("MoveToward(%v, %v, %v) = %v, expected %v", tc.value, tc.target, tc.delta, got, tc.expected)
		}
	}
}
