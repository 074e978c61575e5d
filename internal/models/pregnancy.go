package models

import "time"

type Pregnancy struct {
	ID                uint      `gorm:"primaryKey"`
	UserID            uint      `gorm:"not null;index"`
	LastOvulationDate time.Time `gorm:"type:date;not null"`
	EDD               time.Time `gorm:"type:date;not null"`
	FertileStart      time.Time `gorm:"type:date;not null"`
	FertileEnd        time.Time `gorm:"type:date;not null"`
	ManualInput       bool      `gorm:"not null;default:false"`
	RecordedAt        time.Time `gorm:"not null"`
}
