package core

import "testing"

func TestCircleIntersectsRect(t *testing.T) {
	paddle := CenteredRect(Vec2{X: 57, Y: 300}, Vec2{X: 14, Y: 100})

	tests := []struct {
		name     string
		center   Vec2
		radius   float64
		expected bool
	}{
		{"center inside", Vec2{X: 57, Y: 300}, 7, true},
		{"overlapping right face", Vec2{X: 68, Y: 300}, 7, true},
		{"touching right face", Vec2{X: 71, Y: 300}, 7, true},
		{"clear of right face", Vec2{X: 72, Y: 300}, 7, false},
		{"above top edge", Vec2{X: 57, Y: 242}, 7, false},
		{"near corner but outside", Vec2{X: 70, Y: 244}, 7, false},
		{"overlapping corner", Vec2{X: 68, Y: 246}, 7, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CircleIntersectsRect(tc.center, tc.radius, paddle)
			if result != tc.expected {
				t.Errorf("CircleIntersectsRect(%v, %v) = %v, expected %v", tc.center, tc.radius, result, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(Vec2{X: 57, Y: 300}, Vec2{X: 14, Y: 100})

	if r.X != 50 || r.Y != 250 {
		t.Errorf("CenteredRect origin = (%v, %v), expected (50, 250)", r.X, r.Y)
	}
	if r.Right() != 64 {
		t.Errorf("Right() = %v, expected 64", r.Right())
	}
	if r.Bottom() != 350 {
		t.Errorf("Bottom() = %v, expected 350", r.Bottom())
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 3, Y: 4}.Add(Vec2{X: 1, Y: -4})
	if v != (Vec2{X: 4, Y: 0}) {
		t.Errorf("Add() = %v, expected (4, 0)", v)
	}
	if !v.Sub(Vec2{X: 4}).IsZero() {
		t.Error("Sub() should produce the zero vector")
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
