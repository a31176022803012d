package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ProMBZ/Teacher-Project/internal/config"
	"github.com/ProMBZ/Teacher-Project/internal/service/logbook"
	"github.com/ProMBZ/Teacher-Project/internal/service/reminder"
)

// Scheduler runs the periodic end-of-day reminder sweep.
type Scheduler struct {
	cron        *cron.Cron
	logbookSvc  *logbook.Service
	reminderSvc *reminder.Service
	cfg         config.ReminderConfig
	logger      *zap.Logger
	now         func() time.Time
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.ReminderConfig, logbookSvc *logbook.Service, reminderSvc *reminder.Service, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:        cron.New(),
		logbookSvc:  logbookSvc,
		reminderSvc: reminderSvc,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// Start registers the reminder sweep and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.sweepReminders); err != nil {
		s.logger.Error("failed to schedule reminder sweep", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

// sweepReminders checks every active session for a missing log entry. The
// signal is advisory only; it is re-evaluated on every tick and never
// deduplicated.
func (s *Scheduler) sweepReminders() {
	now := s.now()
	for _, id := range s.logbookSvc.SessionIDs() {
		if s.reminderSvc.Due(now, s.logbookSvc.StoreFor(id)) {
			s.logger.Warn("daily log still missing",
				zap.String("session_id", id),
				zap.String("date", now.Format("2006-01-02")))
		}
	}
}
