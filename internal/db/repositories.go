package db

import "gorm.io/gorm"

type Repositories struct {
	Cycles      *CycleRepository
	Feedback    *FeedbackRepository
	Pregnancies *PregnancyRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Cycles:      NewCycleRepository(database),
		Feedback:    NewFeedbackRepository(database),
		Pregnancies: NewPregnancyRepository(database),
	}
}
