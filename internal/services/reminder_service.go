package services

import (
	"fmt"
	"time"

	"github.com/lunara-app/lunara/internal/models"
	"github.com/sirupsen/logrus"
)

// Notifier is the outbound delivery collaborator. Delivery itself (email,
// push) lives outside this core.
type Notifier interface {
	NotifyUpcomingCycle(userID uint, nextStart time.Time) error
}

type ReminderCycleReader interface {
	ListByNextStartRange(fromDate time.Time, toDate time.Time) ([]models.Cycle, error)
}

// ReminderService sweeps for cycles whose predicted next period start falls
// inside the look-ahead window and hands each hit to the notifier.
type ReminderService struct {
	cycles        ReminderCycleReader
	notifier      Notifier
	lookAheadDays int
	log           logrus.FieldLogger
	now           func() time.Time
}

func NewReminderService(cycles ReminderCycleReader, notifier Notifier, lookAheadDays int, log logrus.FieldLogger) *ReminderService {
	return &ReminderService{
		cycles:        cycles,
		notifier:      notifier,
		lookAheadDays: lookAheadDays,
		log:           log,
		now:           time.Now,
	}
}

// Sweep notifies every user with an upcoming predicted start. Notifier
// failures are logged and skipped; one broken delivery must not starve the
// rest of the batch.
func (service *ReminderService) Sweep() (int, error) {
	today := DateOnly(service.now())
	windowEnd := today.AddDate(0, 0, service.lookAheadDays+1)

	cycles, err := service.cycles.ListByNextStartRange(today, windowEnd)
	if err != nil {
		return 0, fmt.Errorf("list upcoming cycles: %w", err)
	}

	notified := 0
	for _, cycle := range cycles {
		if err := service.notifier.NotifyUpcomingCycle(cycle.UserID, cycle.NextCycleStartDate); err != nil {
			service.log.WithFields(logrus.Fields{
				"user_id":    cycle.UserID,
				"next_start": FormatDay(cycle.NextCycleStartDate),
			}).WithError(err).Warn("upcoming cycle notification failed")
			continue
		}
		notified++
	}

	return notified, nil
}
