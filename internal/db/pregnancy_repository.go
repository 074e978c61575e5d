package db

import (
	"github.com/lunara-app/lunara/internal/models"
	"gorm.io/gorm"
)

type PregnancyRepository struct {
	database *gorm.DB
}

func NewPregnancyRepository(database *gorm.DB) *PregnancyRepository {
	return &PregnancyRepository{database: database}
}

func (repo *PregnancyRepository) ListByUser(userID uint) ([]models.Pregnancy, error) {
	rows := make([]models.Pregnancy, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("recorded_at ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *PregnancyRepository) Create(row *models.Pregnancy) error {
	return repo.database.Create(row).Error
}

func (repo *PregnancyRepository) DeleteByUserAndID(userID uint, pregnancyID uint) (bool, error) {
	result := repo.database.Where("user_id = ? AND id = ?", userID, pregnancyID).Delete(&models.Pregnancy{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
