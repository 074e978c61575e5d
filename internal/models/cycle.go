package models

import "time"

type Cycle struct {
	ID                   uint       `gorm:"primaryKey"`
	UserID               uint       `gorm:"not null;uniqueIndex:uidx_user_month"`
	Month                string     `gorm:"not null;uniqueIndex:uidx_user_month"`
	StartDate            time.Time  `gorm:"type:date;not null"`
	FlowLength           int        `gorm:"not null"`
	OvulationDate        *time.Time `gorm:"type:date"`
	ActualOvulationDate  *time.Time `gorm:"type:date"`
	ActualFlowLength     *int
	PredictedCycleLength int       `gorm:"not null"`
	PreviousCycleLengths []int     `gorm:"serializer:json"`
	IrregularCycle       bool      `gorm:"not null;default:false"`
	NextCycleStartDate   time.Time `gorm:"type:date;not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Reconciled reports whether actuals have been recorded for this cycle.
func (c Cycle) Reconciled() bool {
	return c.ActualOvulationDate != nil
}
