package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Point
	}{
		{"right", Point{10, 10}, Point{1, 0}, Point{11, 10}},
		{"up", Point{0, 0}, Point{0, -1}, Point{0, -1}},
		{"zero", Point{3, 4}, Point{}, Point{3, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Add(tc.b); got != tc.want {
				t.Errorf("Add() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestPointNeg(t *testing.T) {
	if got := (Point{1, 0}).Neg(); got != (Point{-1, 0}) {
		t.Errorf("Neg() = %v, expected (-1,0)", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{5, 5, true},    // top-left corner
		{14, 14, true},  // bottom-right inside
		{15, 15, false}, // just outside
		{4, 5, false},   // left of rect
		{10, 10, true},  // center
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)

	if !f.Has(ActionUp) || !f.Has(ActionLeft) {
		t.Error("frame should contain Up and Left")
	}
	if f.Has(ActionDown) {
		t.Error("frame should not contain Down")
	}
	if len(f.Actions) != 2 {
		t.Errorf("ActionNone should not be recorded, got %v", f.Actions)
	}

	f.Clear()
	if len(f.Actions) != 0 {
		t.Error("Clear should empty the frame")
	}
}
