package models

import "time"

const (
	MinFeedbackAccuracy = 1
	MaxFeedbackAccuracy = 5
)

type Feedback struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;index"`
	CycleID   uint `gorm:"not null;index"`
	Accuracy  int  `gorm:"not null"`
	Comments  string
	CreatedAt time.Time
}
