package core

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"zero", 0, 0},
		{"within range", 1.5, 1.5},
		{"exactly 2pi", TwoPi, 0},
		{"above 2pi", TwoPi + 0.5, 0.5},
		{"negative", -0.5, TwoPi - 0.5},
		{"large negative", -5 * TwoPi, 0},
		{"many revolutions", 7*TwoPi + 1.0, 1.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeAngle(tc.in)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("NormalizeAngle(%f) = %f, expected %f", tc.in, got, tc.expected)
			}
			if got < 0 || got >= TwoPi {
				t.Errorf("NormalizeAngle(%f) = %f, outside [0, 2pi)", tc.in, got)
			}
		})
	}
}

func TestAngularDelta(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"same angle", 1.0, 1.0, 0},
		{"simple", 0, 1.0, 1.0},
		{"wraps across zero", 0.1, TwoPi - 0.1, 0.2},
		{"opposite", 0, math.Pi, math.Pi},
		{"order independent", 2.0, 0.5, 1.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AngularDelta(tc.a, tc.b)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("AngularDelta(%f, %f) = %f, expected %f", tc.a, tc.b, got, tc.expected)
			}
			// Also test symmetry
			if rev := AngularDelta(tc.b, tc.a); math.Abs(rev-got) > 1e-9 {
				t.Errorf("AngularDelta not symmetric: %f vs %f", got, rev)
			}
		})
	}
}

func TestAngularSign(t *testing.T) {
	if AngularSign(0, 0.5) != 1 {
		t.Error("small positive rotation should be +1")
	}
	if AngularSign(0.5, 0) != -1 {
		t.Error("small negative rotation should be -1")
	}
	if AngularSign(1.0, 1.0) != 0 {
		t.Error("identical angles should be 0")
	}
	// Shortest path from 0.1 to 2pi-0.1 is clockwise across zero
	if AngularSign(0.1, TwoPi-0.1) != -1 {
		t.Error("wrap across zero should pick the short way")
	}
}

func TestPolarToCartesian(t *testing.T) {
	tests := []struct {
		name           string
		radius, angle  float64
		offset         float64
		expX, expY     float64
	}{
		{"east", 10, 0, 0, 10, 0},
		{"north", 10, math.Pi / 2, 0, 0, 10},
		{"west", 10, math.Pi, 0, -10, 0},
		{"offset rotates frame", 10, 0, math.Pi / 2, 0, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := PolarToCartesian(0, 0, tc.radius, tc.angle, tc.offset)
			if math.Abs(x-tc.expX) > 1e-9 || math.Abs(y-tc.expY) > 1e-9 {
				t.Errorf("PolarToCartesian = (%f, %f), expected (%f, %f)", x, y, tc.expX, tc.expY)
			}
		})
	}

	// Non-zero center translates the result
	x, y := PolarToCartesian(5, 7, 10, 0, 0)
	if x != 15 || y != 7 {
		t.Errorf("centered PolarToCartesian = (%f, %f), expected (15, 7)", x, y)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
