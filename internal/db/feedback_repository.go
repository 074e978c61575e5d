package db

import (
	"github.com/lunara-app/lunara/internal/models"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	database *gorm.DB
}

func NewFeedbackRepository(database *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{database: database}
}

func (repo *FeedbackRepository) ListByUser(userID uint) ([]models.Feedback, error) {
	rows := make([]models.Feedback, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *FeedbackRepository) ListByCycle(cycleID uint) ([]models.Feedback, error) {
	rows := make([]models.Feedback, 0)
	if err := repo.database.Where("cycle_id = ?", cycleID).Order("created_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *FeedbackRepository) Create(row *models.Feedback) error {
	return repo.database.Create(row).Error
}
