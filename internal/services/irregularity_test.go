package services

import (
	"math"
	"testing"
)

func TestEvaluateEmptyHistoryNeverIrregular(t *testing.T) {
	detector := NewDetector(DefaultDetectorConfig())

	for _, candidate := range []int{10, 28, 60} {
		result := detector.Evaluate(nil, candidate)
		if result.Irregular {
			t.Fatalf("candidate %d: empty history must not be irregular", candidate)
		}
	}
}

func TestEvaluateFallbackThreshold(t *testing.T) {
	detector := NewDetector(DefaultDetectorConfig())
	history := []int{28, 28, 28}

	regular := detector.Evaluate(history, 28)
	if regular.Irregular {
		t.Fatal("expected 28 against [28,28,28] to be regular")
	}
	if regular.Mean != 28 {
		t.Fatalf("expected mean 28, got %.2f", regular.Mean)
	}
	if regular.StdDev != 0 {
		t.Fatalf("expected zero stddev, got %.2f", regular.StdDev)
	}
	if regular.Threshold != 7 {
		t.Fatalf("expected fallback threshold 7, got %.2f", regular.Threshold)
	}

	// |40-28| = 12 > 7
	irregular := detector.Evaluate(history, 40)
	if !irregular.Irregular {
		t.Fatal("expected 40 against [28,28,28] to be irregular")
	}
}

func TestEvaluateDynamicThreshold(t *testing.T) {
	detector := NewDetector(DefaultDetectorConfig())
	history := []int{26, 28, 30}

	result := detector.Evaluate(history, 32)

	expectedStdDev := math.Sqrt(8.0 / 3.0)
	if math.Abs(result.StdDev-expectedStdDev) > 1e-9 {
		t.Fatalf("expected stddev %.6f, got %.6f", expectedStdDev, result.StdDev)
	}
	if math.Abs(result.Threshold-expectedStdDev*1.5) > 1e-9 {
		t.Fatalf("expected threshold %.6f, got %.6f", expectedStdDev*1.5, result.Threshold)
	}
	// |32-28| = 4 > 2.449...
	if !result.Irregular {
		t.Fatal("expected 32 against [26,28,30] to be irregular")
	}

	if detector.Evaluate(history, 30).Irregular {
		t.Fatal("expected 30 against [26,28,30] to be regular")
	}
}
