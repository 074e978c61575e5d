package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/lunara-app/lunara/internal/models"
	"gorm.io/gorm"
)

var (
	ErrStartDateOutsideMonth = errors.New("start date outside current month")
	ErrCycleMonthConflict    = errors.New("cycle already exists for month")
	ErrNoCycleForUser        = errors.New("no cycle data for user")
	ErrCycleNotFound         = errors.New("cycle not found")
	ErrOvulationBeforeStart  = errors.New("ovulation before cycle start")
)

type CycleRepository interface {
	ListByUser(userID uint) ([]models.Cycle, error)
	ListByUserAndMonth(userID uint, month string) ([]models.Cycle, error)
	FindByUserAndMonth(userID uint, month string) (models.Cycle, bool, error)
	FindLatestByUser(userID uint) (models.Cycle, bool, error)
	FindByUserAndID(userID uint, cycleID uint) (models.Cycle, bool, error)
	Create(cycle *models.Cycle) error
	Save(cycle *models.Cycle) error
	DeleteByUserAndID(userID uint, cycleID uint) (bool, error)
}

// CycleServiceConfig holds the reconciliation policy: the assumed span from
// ovulation to the next period start.
type CycleServiceConfig struct {
	OvulationIntervalDays int
}

func DefaultCycleServiceConfig() CycleServiceConfig {
	return CycleServiceConfig{OvulationIntervalDays: 14}
}

type CreateCycleResult struct {
	Cycle        models.Cycle
	Schedule     CycleSchedule
	Irregularity IrregularityResult
}

type ReconcileResult struct {
	Cycle             models.Cycle
	ActualCycleLength int
	Irregularity      IrregularityResult
}

// CycleService orchestrates cycle creation and reconciliation on top of the
// calculator, the adjuster, and the irregularity detector.
type CycleService struct {
	cycles     CycleRepository
	calculator *Calculator
	adjuster   *Adjuster
	detector   *Detector
	config     CycleServiceConfig
	now        func() time.Time
}

func NewCycleService(cycles CycleRepository, calculator *Calculator, adjuster *Adjuster, detector *Detector, config CycleServiceConfig) *CycleService {
	return &CycleService{
		cycles:     cycles,
		calculator: calculator,
		adjuster:   adjuster,
		detector:   detector,
		config:     config,
		now:        time.Now,
	}
}

// CreateCycle records a new period start and derives its schedule. The start
// date must fall in the current calendar month, and a user holds at most one
// cycle per month; the storage unique index backs the pre-check under races.
func (service *CycleService) CreateCycle(userID uint, startDate time.Time, flowLength int, ovulation OvulationInput) (CreateCycleResult, error) {
	start := DateOnly(startDate)
	if !SameCalendarMonth(start, service.now()) {
		return CreateCycleResult{}, ErrStartDateOutsideMonth
	}

	monthKey := MonthKey(start)
	_, exists, err := service.cycles.FindByUserAndMonth(userID, monthKey)
	if err != nil {
		return CreateCycleResult{}, fmt.Errorf("check cycle for month %s: %w", monthKey, err)
	}
	if exists {
		return CreateCycleResult{}, ErrCycleMonthConflict
	}

	schedule, err := service.calculator.Compute(flowLength, start, ovulation)
	if err != nil {
		return CreateCycleResult{}, err
	}

	previousCycles, err := service.cycles.ListByUser(userID)
	if err != nil {
		return CreateCycleResult{}, fmt.Errorf("load cycle history: %w", err)
	}

	historyPrediction := service.adjuster.BlendWithHistory(previousCycles, schedule.TotalDays)
	predictedLength, err := service.adjuster.BlendWithFeedback(userID, historyPrediction)
	if err != nil {
		return CreateCycleResult{}, err
	}

	previousLengths := make([]int, 0, len(previousCycles))
	for _, previous := range previousCycles {
		previousLengths = append(previousLengths, previous.PredictedCycleLength)
	}

	// Irregularity is judged on the history-blended prediction; the feedback
	// factor measures user trust, not cycle physiology.
	irregularity := service.detector.Evaluate(previousLengths, historyPrediction)

	ovulationDate := schedule.OvulationDate
	cycle := models.Cycle{
		UserID:               userID,
		Month:                monthKey,
		StartDate:            start,
		FlowLength:           flowLength,
		OvulationDate:        &ovulationDate,
		PredictedCycleLength: predictedLength,
		PreviousCycleLengths: previousLengths,
		IrregularCycle:       irregularity.Irregular,
		NextCycleStartDate:   schedule.NextCycleStartDate,
	}

	if err := service.cycles.Create(&cycle); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return CreateCycleResult{}, ErrCycleMonthConflict
		}
		return CreateCycleResult{}, fmt.Errorf("persist cycle: %w", err)
	}

	return CreateCycleResult{
		Cycle:        cycle,
		Schedule:     schedule,
		Irregularity: irregularity,
	}, nil
}

// ReconcileCycle records the reported actuals on the latest cycle, appends
// the measured length to the history, and re-runs the detector over it.
func (service *CycleService) ReconcileCycle(userID uint, actualOvulationDate time.Time, actualFlowLength int) (ReconcileResult, error) {
	if actualFlowLength < 1 {
		return ReconcileResult{}, ErrInvalidFlowLength
	}

	cycle, found, err := service.cycles.FindLatestByUser(userID)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("load latest cycle: %w", err)
	}
	if !found {
		return ReconcileResult{}, ErrNoCycleForUser
	}

	start := DateOnly(cycle.StartDate)
	actualOvulation := DateOnly(actualOvulationDate)
	if actualOvulation.Before(start) {
		return ReconcileResult{}, ErrOvulationBeforeStart
	}

	nextStart := actualOvulation.AddDate(0, 0, service.config.OvulationIntervalDays)
	actualCycleLength := DaysBetween(start, nextStart)

	// History is a value: append onto a copy, persist the new list whole.
	lengths := make([]int, 0, len(cycle.PreviousCycleLengths)+1)
	lengths = append(lengths, cycle.PreviousCycleLengths...)
	lengths = append(lengths, actualCycleLength)

	irregularity := service.detector.Evaluate(lengths, actualCycleLength)

	cycle.FlowLength = actualFlowLength
	cycle.ActualFlowLength = &actualFlowLength
	cycle.ActualOvulationDate = &actualOvulation
	cycle.NextCycleStartDate = nextStart
	cycle.PreviousCycleLengths = lengths
	cycle.IrregularCycle = irregularity.Irregular
	// Recomputed from the unchanged start date, so the key cannot drift.
	cycle.Month = MonthKey(start)

	if err := service.cycles.Save(&cycle); err != nil {
		return ReconcileResult{}, fmt.Errorf("persist reconciled cycle: %w", err)
	}

	return ReconcileResult{
		Cycle:             cycle,
		ActualCycleLength: actualCycleLength,
		Irregularity:      irregularity,
	}, nil
}

func (service *CycleService) CyclesByUser(userID uint) ([]models.Cycle, error) {
	return service.cycles.ListByUser(userID)
}

func (service *CycleService) CyclesByMonth(userID uint, year int, month time.Month) ([]models.Cycle, error) {
	return service.cycles.ListByUserAndMonth(userID, fmt.Sprintf("%d-%d", year, int(month)))
}

func (service *CycleService) CycleByID(userID uint, cycleID uint) (models.Cycle, error) {
	cycle, found, err := service.cycles.FindByUserAndID(userID, cycleID)
	if err != nil {
		return models.Cycle{}, fmt.Errorf("load cycle %d: %w", cycleID, err)
	}
	if !found {
		return models.Cycle{}, ErrCycleNotFound
	}
	return cycle, nil
}

func (service *CycleService) DeleteCycle(userID uint, cycleID uint) error {
	deleted, err := service.cycles.DeleteByUserAndID(userID, cycleID)
	if err != nil {
		return fmt.Errorf("delete cycle %d: %w", cycleID, err)
	}
	if !deleted {
		return ErrCycleNotFound
	}
	return nil
}
