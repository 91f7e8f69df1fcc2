package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	DefaultSessionTTL      = 24 * time.Hour
	DefaultRetentionCron   = "@hourly"
	minimumRetentionWindow = time.Minute
)

type StaleSessionStore interface {
	DeleteStale(olderThan time.Time) (int64, error)
}

// RetentionService purges calculator sessions that have been idle longer than
// the configured TTL, together with their recorded bleed intervals. It keeps
// the on-disk state transient to the running session, which is all this
// system promises.
type RetentionService struct {
	sessions StaleSessionStore
	ttl      time.Duration
	spec     string
	logger   *logrus.Logger
	engine   *cron.Cron
}

func NewRetentionService(sessions StaleSessionStore, ttl time.Duration, spec string, logger *logrus.Logger) *RetentionService {
	if ttl < minimumRetentionWindow {
		ttl = DefaultSessionTTL
	}
	if spec == "" {
		spec = DefaultRetentionCron
	}
	return &RetentionService{
		sessions: sessions,
		ttl:      ttl,
		spec:     spec,
		logger:   logger,
	}
}

// Start schedules the recurring purge and runs one sweep immediately so a
// restart does not wait a full interval to clear stale rows.
func (service *RetentionService) Start() error {
	service.engine = cron.New()
	if _, err := service.engine.AddFunc(service.spec, service.purge); err != nil {
		return err
	}
	service.engine.Start()
	service.purge()
	return nil
}

func (service *RetentionService) Stop() {
	if service.engine == nil {
		return
	}
	<-service.engine.Stop().Done()
}

// PurgeOnce removes sessions idle past the TTL relative to now.
func (service *RetentionService) PurgeOnce(now time.Time) (int64, error) {
	return service.sessions.DeleteStale(now.Add(-service.ttl))
}

func (service *RetentionService) purge() {
	removed, err := service.PurgeOnce(time.Now())
	if err != nil {
		service.logger.WithError(err).Error("session retention sweep failed")
		return
	}
	if removed > 0 {
		service.logger.WithField("sessions", removed).Info("purged stale sessions")
	}
}
