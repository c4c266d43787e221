package analytics

import "testing"

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     int
	}{
		{"zero previous with growth", 50, 0, 100},
		{"zero previous zero current", 0, 0, 0},
		{"doubling", 200, 100, 100},
		{"shrinking", 50, 100, -50},
		{"flat", 100, 100, 0},
		{"rounds half up", 203, 200, 2},  // 1.5% -> 2
		{"rounds down", 202, 200, 1},     // 1.0% -> 1
		{"negative growth rounds", 197, 200, -2}, // -1.5% -> -2
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GrowthRate(tt.current, tt.previous); got != tt.want {
				t.Fatalf("GrowthRate(%v, %v) = %d, want %d", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestRoundPercent(t *testing.T) {
	if got := roundPercent(1, 3); got != 33 {
		t.Fatalf("roundPercent(1,3) = %d, want 33", got)
	}
	if got := roundPercent(0, 0); got != 0 {
		t.Fatalf("roundPercent(0,0) = %d, want 0", got)
	}
}
