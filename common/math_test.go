package common

import (
	"math"
	"testing"
)

func TestApproachAngle(t *testing.T) {
	tests := []struct {
		name                  string
		current, target, step float64
		want                  float64
	}{
		{"within_step_snaps", 10, 15, 9, 15},
		{"clockwise", 0, 90, 9, 9},
		{"counter_clockwise", 0, -90, 9, -9},
		{"wraps_short_way", 170, -170, 9, 179},
		{"wraps_past_180", 175, -175, 9, -176},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ApproachAngle(tc.current, tc.target, tc.step)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	if !CircleIntersectsRect(0, 0, 10, 5, -5, 10, 10) {
		t.Fatalf("expected overlap")
	}
	if CircleIntersectsRect(0, 0, 4, 5, -5, 10, 10) {
		t.Fatalf("expected no overlap")
	}
	if !CircleIntersectsRect(10, 10, 1, 0, 0, 20, 20) {
		t.Fatalf("centre inside box should overlap")
	}
}
