package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/lunara-app/lunara/internal/models"
)

var (
	ErrPregnancyConflict = errors.New("pregnancy record already exists")
	ErrNoPregnancySignal = errors.New("no missed period signal")
	ErrPregnancyNotFound = errors.New("pregnancy not found")
)

type PregnancyRepository interface {
	ListByUser(userID uint) ([]models.Pregnancy, error)
	Create(row *models.Pregnancy) error
	DeleteByUserAndID(userID uint, pregnancyID uint) (bool, error)
}

type PregnancyCycleReader interface {
	FindLatestByUser(userID uint) (models.Cycle, bool, error)
}

// PregnancyConfig holds the obstetric calendar policy: conventional 280-day
// gestation from ovulation and the sperm-viability window around it.
type PregnancyConfig struct {
	GestationDays     int
	FertileDaysBefore int
	FertileDaysAfter  int
}

func DefaultPregnancyConfig() PregnancyConfig {
	return PregnancyConfig{
		GestationDays:     280,
		FertileDaysBefore: 5,
		FertileDaysAfter:  1,
	}
}

type InferenceResult struct {
	Pregnant bool
	Cycle    *models.Cycle
}

// PregnancyService derives a missed-period signal from cycle history and
// manages pregnancy records.
type PregnancyService struct {
	pregnancies PregnancyRepository
	cycles      PregnancyCycleReader
	config      PregnancyConfig
	now         func() time.Time
}

func NewPregnancyService(pregnancies PregnancyRepository, cycles PregnancyCycleReader, config PregnancyConfig) *PregnancyService {
	return &PregnancyService{
		pregnancies: pregnancies,
		cycles:      cycles,
		config:      config,
		now:         time.Now,
	}
}

// InferPregnancy reports a user as pregnant when an active record exists, or
// when the latest cycle's predicted next start has passed with no actual
// flow reported.
func (service *PregnancyService) InferPregnancy(userID uint) (InferenceResult, error) {
	existing, err := service.pregnancies.ListByUser(userID)
	if err != nil {
		return InferenceResult{}, fmt.Errorf("load pregnancies: %w", err)
	}
	if len(existing) > 0 {
		return InferenceResult{Pregnant: true}, nil
	}

	cycle, found, err := service.cycles.FindLatestByUser(userID)
	if err != nil {
		return InferenceResult{}, fmt.Errorf("load latest cycle: %w", err)
	}
	if !found {
		return InferenceResult{}, nil
	}

	today := DateOnly(service.now())
	if DateOnly(cycle.NextCycleStartDate).Before(today) && cycle.ActualFlowLength == nil {
		return InferenceResult{Pregnant: true, Cycle: &cycle}, nil
	}
	return InferenceResult{}, nil
}

// CreatePregnancy records a pregnancy from a manually supplied ovulation
// date or from the missed-period inference. One active record per user.
func (service *PregnancyService) CreatePregnancy(userID uint, manualDate *time.Time) (models.Pregnancy, error) {
	existing, err := service.pregnancies.ListByUser(userID)
	if err != nil {
		return models.Pregnancy{}, fmt.Errorf("load pregnancies: %w", err)
	}
	if len(existing) > 0 {
		return models.Pregnancy{}, ErrPregnancyConflict
	}

	var ovulation time.Time
	manual := manualDate != nil

	if manual {
		ovulation = DateOnly(*manualDate)
	} else {
		inference, err := service.InferPregnancy(userID)
		if err != nil {
			return models.Pregnancy{}, err
		}
		if !inference.Pregnant || inference.Cycle == nil {
			return models.Pregnancy{}, ErrNoPregnancySignal
		}
		ovulation = ovulationFromCycle(*inference.Cycle)
		if ovulation.IsZero() {
			return models.Pregnancy{}, ErrNoPregnancySignal
		}
	}

	row := models.Pregnancy{
		UserID:            userID,
		LastOvulationDate: ovulation,
		EDD:               ovulation.AddDate(0, 0, service.config.GestationDays),
		FertileStart:      ovulation.AddDate(0, 0, -service.config.FertileDaysBefore),
		FertileEnd:        ovulation.AddDate(0, 0, service.config.FertileDaysAfter),
		ManualInput:       manual,
		RecordedAt:        service.now(),
	}
	if err := service.pregnancies.Create(&row); err != nil {
		return models.Pregnancy{}, fmt.Errorf("persist pregnancy: %w", err)
	}
	return row, nil
}

func (service *PregnancyService) Pregnancies(userID uint) ([]models.Pregnancy, error) {
	rows, err := service.pregnancies.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load pregnancies: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrPregnancyNotFound
	}
	return rows, nil
}

func (service *PregnancyService) DeletePregnancy(userID uint, pregnancyID uint) error {
	deleted, err := service.pregnancies.DeleteByUserAndID(userID, pregnancyID)
	if err != nil {
		return fmt.Errorf("delete pregnancy %d: %w", pregnancyID, err)
	}
	if !deleted {
		return ErrPregnancyNotFound
	}
	return nil
}

// Reported ovulation wins over the calendar estimate.
func ovulationFromCycle(cycle models.Cycle) time.Time {
	if cycle.ActualOvulationDate != nil {
		return DateOnly(*cycle.ActualOvulationDate)
	}
	if cycle.OvulationDate != nil {
		return DateOnly(*cycle.OvulationDate)
	}
	return time.Time{}
}
