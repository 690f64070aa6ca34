package labelgen

import "testing"

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		want float64
	}{
		{"single", []float64{4}, 4},
		{"odd", []float64{9, 1, 5}, 5},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"unsorted outliers", []float64{100, 2, 3, 2, 2}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.xs); got != tt.want {
				t.Errorf("median(%v) = %g, want %g", tt.xs, got, tt.want)
			}
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	median(xs)
	if xs[0] != 3 || xs[1] != 1 || xs[2] != 2 {
		t.Errorf("input mutated: %v", xs)
	}
}

func TestJitterDisabled(t *testing.T) {
	cfg := StaticConfig()
	if got := cfg.jitter(testRNG(), 10, 5); got != 10 {
		t.Errorf("disabled jitter changed value: %g", got)
	}
}

func TestJitterBounded(t *testing.T) {
	cfg := DefaultConfig()
	rng := testRNG()
	for i := 0; i < 100; i++ {
		got := cfg.jitter(rng, 10, 5)
		if got < 5 || got > 15 {
			t.Fatalf("jitter %g outside [5, 15]", got)
		}
	}
}

func TestRandIntInRange(t *testing.T) {
	rng := testRNG()
	for i := 0; i < 100; i++ {
		got := randIntInRange(rng, 1, 3)
		if got < 1 || got > 2 {
			t.Fatalf("randIntInRange(1, 3) = %d, want 1 or 2", got)
		}
	}
	if got := randIntInRange(rng, 2, 2); got != 2 {
		t.Errorf("empty range should return low, got %d", got)
	}
}
