package services

import (
	"errors"
	"time"
)

var (
	ErrInvalidFlowLength    = errors.New("invalid flow length")
	ErrInvalidOvulationDate = errors.New("invalid ovulation date")
)

// CalculatorConfig carries the calendar-policy offsets. The defaults encode
// the tested behavior: ovulation estimated 9 days after menstruation ends,
// and the next period expected 15 days after ovulation (14 plus one
// inclusive-boundary day).
type CalculatorConfig struct {
	EstimateOffsetDays   int
	LutealBoundaryDays   int
	OvulationRangeRadius int
	UnsafeDaysBefore     int
	UnsafeDaysAfter      int
}

func DefaultCalculatorConfig() CalculatorConfig {
	return CalculatorConfig{
		EstimateOffsetDays:   9,
		LutealBoundaryDays:   15,
		OvulationRangeRadius: 1,
		UnsafeDaysBefore:     5,
		UnsafeDaysAfter:      5,
	}
}

// OvulationInput is either a user-reported ovulation date or a request to
// estimate one from the cycle start.
type OvulationInput struct {
	known bool
	date  time.Time
}

func KnownOvulation(date time.Time) OvulationInput {
	return OvulationInput{known: true, date: date}
}

func EstimatedOvulation() OvulationInput {
	return OvulationInput{}
}

func (input OvulationInput) Known() (time.Time, bool) {
	return input.date, input.known
}

// CycleSchedule is the full derived calendar for one cycle.
type CycleSchedule struct {
	TotalDays          int
	PeriodRange        []time.Time
	OvulationDate      time.Time
	OvulationRange     []time.Time
	UnsafeDays         []time.Time
	NextCycleStartDate time.Time
}

type Calculator struct {
	config CalculatorConfig
}

func NewCalculator(config CalculatorConfig) *Calculator {
	return &Calculator{config: config}
}

// Compute derives the schedule for one cycle. A known ovulation date must
// fall strictly after the last day of menstruation.
func (calc *Calculator) Compute(flowLength int, startDate time.Time, ovulation OvulationInput) (CycleSchedule, error) {
	if flowLength < 1 {
		return CycleSchedule{}, ErrInvalidFlowLength
	}

	start := DateOnly(startDate)
	periodRange := DayRangeFrom(start, flowLength)
	lastFlowDay := periodRange[len(periodRange)-1]

	var ovulationDate time.Time
	if date, known := ovulation.Known(); known {
		ovulationDate = DateOnly(date)
		if !ovulationDate.After(lastFlowDay) {
			return CycleSchedule{}, ErrInvalidOvulationDate
		}
	} else {
		ovulationDate = start.AddDate(0, 0, flowLength+calc.config.EstimateOffsetDays)
	}

	totalDays := DaysBetween(start, ovulationDate.AddDate(0, 0, calc.config.LutealBoundaryDays))

	return CycleSchedule{
		TotalDays:          totalDays,
		PeriodRange:        periodRange,
		OvulationDate:      ovulationDate,
		OvulationRange:     calc.ovulationRange(ovulationDate, lastFlowDay),
		UnsafeDays:         calc.unsafeRange(ovulationDate, lastFlowDay),
		NextCycleStartDate: start.AddDate(0, 0, totalDays),
	}, nil
}

func (calc *Calculator) ovulationRange(ovulationDate time.Time, lastFlowDay time.Time) []time.Time {
	lower := ovulationDate.AddDate(0, 0, -calc.config.OvulationRangeRadius)
	upper := ovulationDate.AddDate(0, 0, calc.config.OvulationRangeRadius)

	dates := DayRangeBetween(lower, upper)
	// A period day is never reported as a fertile day.
	if len(dates) > 0 && SameDay(dates[0], lastFlowDay) {
		dates = dates[1:]
	}
	return dates
}

// unsafeRange shrinks the canonical window before ovulation until its start
// no longer overlaps menstruation.
func (calc *Calculator) unsafeRange(ovulationDate time.Time, lastFlowDay time.Time) []time.Time {
	daysBefore := calc.config.UnsafeDaysBefore
	unsafeStart := ovulationDate.AddDate(0, 0, -daysBefore)
	for daysBefore > 0 && !unsafeStart.After(lastFlowDay) {
		daysBefore--
		unsafeStart = ovulationDate.AddDate(0, 0, -daysBefore)
	}

	unsafeEnd := ovulationDate.AddDate(0, 0, calc.config.UnsafeDaysAfter)
	return DayRangeBetween(unsafeStart, unsafeEnd)
}
