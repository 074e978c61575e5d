package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lunara-app/lunara/internal/models"
)

var ErrInvalidFeedback = errors.New("invalid feedback input")

type FeedbackRepository interface {
	ListByUser(userID uint) ([]models.Feedback, error)
	ListByCycle(cycleID uint) ([]models.Feedback, error)
	Create(row *models.Feedback) error
}

type FeedbackCycleReader interface {
	FindByUserAndID(userID uint, cycleID uint) (models.Cycle, bool, error)
}

type FeedbackInput struct {
	CycleID  uint   `validate:"required"`
	Accuracy int    `validate:"required,min=1,max=5"`
	Comments string `validate:"max=2000"`
}

// FeedbackService records prediction-accuracy ratings. Rows are immutable
// once written; the adjuster consumes them in aggregate.
type FeedbackService struct {
	feedback FeedbackRepository
	cycles   FeedbackCycleReader
	validate *validator.Validate
}

func NewFeedbackService(feedback FeedbackRepository, cycles FeedbackCycleReader) *FeedbackService {
	return &FeedbackService{
		feedback: feedback,
		cycles:   cycles,
		validate: validator.New(),
	}
}

func (service *FeedbackService) SubmitFeedback(userID uint, input FeedbackInput) (models.Feedback, error) {
	if err := service.validate.Struct(input); err != nil {
		return models.Feedback{}, fmt.Errorf("%w: %w", ErrInvalidFeedback, err)
	}

	_, found, err := service.cycles.FindByUserAndID(userID, input.CycleID)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("load cycle %d: %w", input.CycleID, err)
	}
	if !found {
		return models.Feedback{}, ErrCycleNotFound
	}

	row := models.Feedback{
		UserID:   userID,
		CycleID:  input.CycleID,
		Accuracy: input.Accuracy,
		Comments: input.Comments,
	}
	if err := service.feedback.Create(&row); err != nil {
		return models.Feedback{}, fmt.Errorf("persist feedback: %w", err)
	}
	return row, nil
}

func (service *FeedbackService) FeedbackForCycle(cycleID uint) ([]models.Feedback, error) {
	return service.feedback.ListByCycle(cycleID)
}
