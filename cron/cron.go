package cron

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper drops expired entries and reports how many were removed.
type Sweeper interface {
	Sweep() int
}

// StartCronJobs initializes and starts the scheduler that clears expired
// verification codes. The caller stops the returned scheduler on shutdown.
func StartCronJobs(spec string, codes Sweeper, log *zap.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() { sweepVerificationCodes(codes, log) })
	if err != nil {
		return nil, fmt.Errorf("add sweep job %q: %w", spec, err)
	}
	c.Start()
	log.Info("cron job scheduler started for verification code sweep", zap.String("spec", spec))
	return c, nil
}

func sweepVerificationCodes(codes Sweeper, log *zap.Logger) {
	if removed := codes.Sweep(); removed > 0 {
		log.Info("expired verification codes removed", zap.Int("count", removed))
	}
}
