// Package jobs provides the scheduled background tasks of the delivery
// backend, built on github.com/robfig/cron/v3.
//
// The only job today is EarningsResetJob, which zeroes every partner's daily
// counter at midnight and the weekly counter on Monday midnight. Jobs are
// managed through JobManager:
//
//	jobManager := jobs.NewJobManager(resetHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"

	"delivr/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	earningsResetJob *EarningsResetJob
}

// NewJobManager creates a job manager wired to the command handlers the jobs
// execute.
func NewJobManager(
	resetEarningsHandler commands.ResetPartnerEarningsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		earningsResetJob: NewEarningsResetJob(resetEarningsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.earningsResetJob.Start(); err != nil {
		return fmt.Errorf("failed to start earnings reset job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.earningsResetJob.Stop()
}
