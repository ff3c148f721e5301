package app

import (
	"testing"
	"time"
)

func TestCalculateBackoff(t *testing.T) {
	tests := []struct {
		name     string
		failures int
		interval time.Duration
		want     time.Duration
	}{
		{"healthy daemon polls at the interval", 0, 2 * time.Second, 2 * time.Second},
		{"negative count treated as healthy", -3, 2 * time.Second, 2 * time.Second},
		{"first failure doubles", 1, 2 * time.Second, 4 * time.Second},
		{"doubling continues", 3, 2 * time.Second, 16 * time.Second},
		{"cap reached", 4, 2 * time.Second, maxBackoff},
		{"cap holds under sustained outage", 50, 2 * time.Second, maxBackoff},
		{"fast interval takes longer to cap", 4, time.Second, 16 * time.Second},
		{"slow interval caps immediately", 1, 20 * time.Second, maxBackoff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, tt.interval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v",
					tt.failures, tt.interval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_NeverExceedsCap(t *testing.T) {
	for _, interval := range []time.Duration{time.Second, 2 * time.Second, time.Minute} {
		for failures := 1; failures <= 30; failures++ {
			if got := calculateBackoff(failures, interval); got > maxBackoff {
				t.Fatalf("calculateBackoff(%d, %v) = %v, exceeds cap %v",
					failures, interval, got, maxBackoff)
			}
		}
	}
}
