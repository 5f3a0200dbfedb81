package service

import (
	"time"

	"github.com/aouiniamine/sofia-ops/internal/config"
	"github.com/aouiniamine/sofia-ops/internal/features/health/dto"
)

// TimestampLayout is ISO-8601 with fixed microsecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

type HealthService interface {
	Health() dto.HealthRecord
	Status() dto.StatusRecord
}

type healthService struct {
	cfg   *config.Config
	now   func() time.Time
	epoch time.Time
}

// New returns a service reporting on cfg. now defaults to time.Now.
func New(cfg *config.Config, now func() time.Time) HealthService {
	if now == nil {
		now = time.Now
	}
	return &healthService{
		cfg:   cfg,
		now:   now,
		epoch: now(),
	}
}

func (s *healthService) Health() dto.HealthRecord {
	return dto.HealthRecord{
		Status:    dto.StatusHealthy,
		Service:   dto.ServiceID,
		Timestamp: s.timestamp().UTC().Format(TimestampLayout),
	}
}

func (s *healthService) Status() dto.StatusRecord {
	return dto.StatusRecord{
		Service: dto.ServiceName,
		Status:  dto.StatusRunning,
		Environment: dto.EnvironmentSnapshot{
			LiveKitURL:   orNotSet(s.cfg.LiveKit.URL),
			GoogleAPIKey: presence(s.cfg.Google.APIKey),
			CalendarURL:  orNotSet(s.cfg.Calendar.URL),
		},
	}
}

// timestamp advances on the monotonic clock from the service epoch, so a wall
// clock step backwards never produces an earlier timestamp.
func (s *healthService) timestamp() time.Time {
	return s.epoch.Add(s.now().Sub(s.epoch))
}

func orNotSet(v string) string {
	if v == "" {
		return dto.NotSet
	}
	return v
}

func presence(v string) string {
	if v == "" {
		return dto.Missing
	}
	return dto.Configured
}
