package db

import (
	"time"

	"github.com/lunara-app/lunara/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) ListByUser(userID uint) ([]models.Cycle, error) {
	cycles := make([]models.Cycle, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("start_date ASC, id ASC").Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) ListByUserAndMonth(userID uint, month string) ([]models.Cycle, error) {
	cycles := make([]models.Cycle, 0)
	if err := repo.database.
		Where("user_id = ? AND month = ?", userID, month).
		Order("start_date ASC, id ASC").
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) FindByUserAndMonth(userID uint, month string) (models.Cycle, bool, error) {
	cycle := models.Cycle{}
	result := repo.database.
		Where("user_id = ? AND month = ?", userID, month).
		Limit(1).
		Find(&cycle)
	if result.Error != nil {
		return models.Cycle{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Cycle{}, false, nil
	}
	return cycle, true, nil
}

func (repo *CycleRepository) FindLatestByUser(userID uint) (models.Cycle, bool, error) {
	cycle := models.Cycle{}
	result := repo.database.
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Limit(1).
		Find(&cycle)
	if result.Error != nil {
		return models.Cycle{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Cycle{}, false, nil
	}
	return cycle, true, nil
}

func (repo *CycleRepository) FindByUserAndID(userID uint, cycleID uint) (models.Cycle, bool, error) {
	cycle := models.Cycle{}
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, cycleID).
		Limit(1).
		Find(&cycle)
	if result.Error != nil {
		return models.Cycle{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Cycle{}, false, nil
	}
	return cycle, true, nil
}

func (repo *CycleRepository) ListByNextStartRange(fromDate time.Time, toDate time.Time) ([]models.Cycle, error) {
	cycles := make([]models.Cycle, 0)
	if err := repo.database.
		Where("next_cycle_start_date >= ? AND next_cycle_start_date < ?", fromDate, toDate).
		Order("next_cycle_start_date ASC, id ASC").
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) Create(cycle *models.Cycle) error {
	return repo.database.Create(cycle).Error
}

func (repo *CycleRepository) Save(cycle *models.Cycle) error {
	return repo.database.Save(cycle).Error
}

func (repo *CycleRepository) DeleteByUserAndID(userID uint, cycleID uint) (bool, error) {
	result := repo.database.Where("user_id = ? AND id = ?", userID, cycleID).Delete(&models.Cycle{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
