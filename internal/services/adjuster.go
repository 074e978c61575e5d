package services

import (
	"fmt"
	"math"

	"github.com/lunara-app/lunara/internal/models"
)

type FeedbackReader interface {
	ListByUser(userID uint) ([]models.Feedback, error)
}

// Adjuster refines raw predictions with cycle history and with the user's
// accuracy ratings of earlier predictions.
type Adjuster struct {
	feedback FeedbackReader
}

func NewAdjuster(feedback FeedbackReader) *Adjuster {
	return &Adjuster{feedback: feedback}
}

// BlendWithHistory averages the raw prediction with the mean of prior
// predicted lengths, weighting both sides equally. No history means the raw
// prediction stands.
func (adjuster *Adjuster) BlendWithHistory(previousCycles []models.Cycle, rawPrediction int) int {
	if len(previousCycles) == 0 {
		return rawPrediction
	}

	lengths := make([]int, 0, len(previousCycles))
	for _, cycle := range previousCycles {
		lengths = append(lengths, cycle.PredictedCycleLength)
	}

	return roundToInt((float64(rawPrediction) + meanInts(lengths)) / 2)
}

// BlendWithFeedback stretches the prediction away from the calculated value
// in proportion to how inaccurate the user has rated past predictions. A
// uniformly perfect rating leaves the prediction untouched.
func (adjuster *Adjuster) BlendWithFeedback(userID uint, prediction int) (int, error) {
	rows, err := adjuster.feedback.ListByUser(userID)
	if err != nil {
		return 0, fmt.Errorf("load feedback for user %d: %w", userID, err)
	}
	if len(rows) == 0 {
		return prediction, nil
	}

	var totalAccuracy int
	for _, row := range rows {
		totalAccuracy += row.Accuracy
	}
	averageAccuracy := float64(totalAccuracy) / float64(len(rows))
	adjustmentFactor := (models.MaxFeedbackAccuracy - averageAccuracy) / models.MaxFeedbackAccuracy

	return roundToInt(float64(prediction) * (1 + adjustmentFactor)), nil
}

func roundToInt(value float64) int {
	return int(math.Round(value))
}
