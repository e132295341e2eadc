package wheel

import (
	"math"
	"testing"
)

func TestEaseOutEndpoints(t *testing.T) {
	for _, c := range []float64{1, 360, 2000, 4999} {
		for _, d := range []float64{1, 30, 4000, 7000} {
			if got := EaseOut(0, 0, c, d); got != 0 {
				t.Errorf("EaseOut(0,0,%v,%v) = %v, want 0", c, d, got)
			}
			if got := EaseOut(d, 0, c, d); math.Abs(got-c) > 1e-9 {
				t.Errorf("EaseOut(%v,0,%v,%v) = %v, want %v", d, c, d, got, c)
			}
		}
	}
}

func TestEaseOutMonotonic(t *testing.T) {
	const c, d = 3500.0, 5500.0
	prev := EaseOut(0, 0, c, d)
	for ms := 1.0; ms <= d; ms++ {
		v := EaseOut(ms, 0, c, d)
		if v < prev {
			t.Fatalf("EaseOut decreased at t=%v: %v < %v", ms, v, prev)
		}
		prev = v
	}
}

func TestPointerIndex(t *testing.T) {
	deg := func(d float64) float64 { return d * math.Pi / 180 }
	tests := []struct {
		name  string
		angle float64
		n     int
		want  int
	}{
		{"zero rotation four slots", 0, 4, 3},
		{"zero rotation one slot", 0, 1, 0},
		{"just past a quarter turn", deg(100), 4, 1},
		{"multiple turns", deg(730), 4, 2},
		{"many slots", deg(50), 8, 4},
		{"no segments", 1.0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointerIndex(tt.angle, tt.n); got != tt.want {
				t.Errorf("PointerIndex(%v, %d) = %d, want %d", tt.angle, tt.n, got, tt.want)
			}
		})
	}
}

func TestPointerIndexBoundaryClamp(t *testing.T) {
	// 360 - mod(360, 360) = 360 lands one past the last slot
	for _, n := range []int{1, 4, 61} {
		for _, d := range []float64{360, 720, 3600} {
			if got := pointerIndexDegrees(d, n); got != n-1 {
				t.Errorf("pointerIndexDegrees(%v, %d) = %d, want %d", d, n, got, n-1)
			}
		}
	}
}

func TestPointerIndexInRange(t *testing.T) {
	for n := 1; n <= 64; n++ {
		for step := 0; step < 3600; step++ {
			a := float64(step) * math.Pi / 1800
			idx := PointerIndex(a, n)
			if idx < 0 || idx >= n {
				t.Fatalf("PointerIndex(%v, %d) = %d out of range", a, n, idx)
			}
		}
	}
}

func TestAngleForIndex(t *testing.T) {
	for n := 1; n <= 20; n++ {
		for i := 0; i < n; i++ {
			if got := PointerIndex(AngleForIndex(i, n), n); got != i {
				t.Errorf("n=%d: PointerIndex(AngleForIndex(%d)) = %d", n, i, got)
			}
		}
	}
}
