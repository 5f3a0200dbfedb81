package heartbeat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const Message = "Sofia Agent service running..."

// ErrIntervalTooShort is returned for intervals cron would silently round up.
var ErrIntervalTooShort = errors.New("heartbeat interval must be at least 1s")

// Run logs Message every interval until ctx is done.
func Run(ctx context.Context, interval time.Duration, log *zap.Logger) error {
	if interval < time.Second {
		return fmt.Errorf("%w: got %s", ErrIntervalTooShort, interval)
	}

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		log.Info(Message)
	}); err != nil {
		return fmt.Errorf("failed to schedule heartbeat: %w", err)
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
