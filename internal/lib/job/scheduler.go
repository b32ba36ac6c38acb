package job

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// PurgeSchedule runs the reset-token purge at the top of every hour.
const PurgeSchedule = "@hourly"

// Purger deletes expired rows and reports how many were removed.
type Purger interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Scheduler runs periodic maintenance.
type Scheduler struct {
	cron   *cron.Cron
	purger Purger
	logger *zerolog.Logger
	now    func() time.Time
}

func NewScheduler(logger *zerolog.Logger, purger Purger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithChain(cron.Recover(cron.DiscardLogger))),
		purger: purger,
		logger: logger,
		now:    time.Now,
	}
}

// Start registers the jobs and starts the cron runner in its own goroutine.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(PurgeSchedule, s.PurgeExpiredResetTokens); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info().Str("schedule", PurgeSchedule).Msg("started maintenance scheduler")
	return nil
}

// Stop waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) PurgeExpiredResetTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.purger.DeleteExpired(ctx, s.now())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to purge expired password reset tokens")
		return
	}

	s.logger.Info().Int64("deleted", n).Msg("purged expired password reset tokens")
}
