package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lunara-app/lunara/internal/config"
	"github.com/lunara-app/lunara/internal/db"
	"github.com/lunara-app/lunara/internal/logger"
	"github.com/lunara-app/lunara/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// logNotifier stands in for the real delivery collaborator; it records the
// reminder instead of sending anything.
type logNotifier struct {
	log logrus.FieldLogger
}

func (notifier *logNotifier) NotifyUpcomingCycle(userID uint, nextStart time.Time) error {
	notifier.log.WithFields(logrus.Fields{
		"user_id":    userID,
		"next_start": services.FormatDay(nextStart),
	}).Info("upcoming cycle reminder")
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config load failed: %v", err)
	}

	log := logger.New(cfg.LogLevel, cfg.Environment)

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("load timezone %q failed: %v", cfg.Timezone, err)
	}
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	repos := db.NewRepositories(database)

	reminders := services.NewReminderService(
		repos.Cycles,
		&logNotifier{log: log},
		cfg.ReminderLookAheadDays,
		log,
	)

	cronEngine := cron.New(cron.WithLocation(location))
	if _, err := cronEngine.AddFunc(cfg.ReminderCronSpec, func() {
		notified, err := reminders.Sweep()
		if err != nil {
			log.WithError(err).Error("reminder sweep failed")
			return
		}
		log.WithField("notified", notified).Info("reminder sweep finished")
	}); err != nil {
		log.Fatalf("schedule reminder sweep failed: %v", err)
	}

	cronEngine.Start()
	log.WithFields(logrus.Fields{
		"db_path":   cfg.DBPath,
		"cron_spec": cfg.ReminderCronSpec,
	}).Info("lunara worker started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	<-cronEngine.Stop().Done()
	log.Info("lunara worker stopped")
}
