package services

import "math"

// DetectorConfig carries the irregularity policy: the band is the standard
// deviation scaled by Multiplier, or FallbackThreshold days when the history
// has no spread at all.
type DetectorConfig struct {
	Multiplier        float64
	FallbackThreshold float64
}

func DefaultDetectorConfig() DetectorConfig {
	return DetectorConfig{
		Multiplier:        1.5,
		FallbackThreshold: 7,
	}
}

type IrregularityResult struct {
	Mean      float64
	StdDev    float64
	Threshold float64
	Irregular bool
}

type Detector struct {
	config DetectorConfig
}

func NewDetector(config DetectorConfig) *Detector {
	return &Detector{config: config}
}

// Evaluate flags candidateLength as irregular when it deviates from the
// historical mean by more than the dynamic threshold. An empty history never
// flags; a first cycle has nothing to deviate from.
func (detector *Detector) Evaluate(previousLengths []int, candidateLength int) IrregularityResult {
	if len(previousLengths) == 0 {
		return IrregularityResult{}
	}

	mean := meanInts(previousLengths)
	stdDev := populationStdDev(previousLengths, mean)

	threshold := detector.config.FallbackThreshold
	if stdDev > 0 {
		threshold = stdDev * detector.config.Multiplier
	}

	return IrregularityResult{
		Mean:      mean,
		StdDev:    stdDev,
		Threshold: threshold,
		Irregular: math.Abs(float64(candidateLength)-mean) > threshold,
	}
}

func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func populationStdDev(values []int, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sumSquares float64
	for _, value := range values {
		diff := float64(value) - mean
		sumSquares += diff * diff
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}
