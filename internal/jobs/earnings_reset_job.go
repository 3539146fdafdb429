package jobs

import (
	"context"
	"log/slog"

	"delivr/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// Cron expressions for the earnings counter resets: daily at midnight, weekly
// on Monday midnight.
const (
	dailyResetSchedule  = "0 0 * * *"
	weeklyResetSchedule = "0 0 * * 1"
)

// EarningsResetJob zeroes the rolling earnings counters of every delivery
// partner on a schedule, so the daily and weekly figures in the partner app
// always cover the current period.
type EarningsResetJob struct {
	handler commands.ResetPartnerEarningsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewEarningsResetJob creates the scheduled earnings reset job.
func NewEarningsResetJob(
	handler commands.ResetPartnerEarningsCommandHandler,
	logger *slog.Logger,
) *EarningsResetJob {
	return &EarningsResetJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "earnings_reset_job"),
	}
}

// Start schedules both resets. The daily reset runs every midnight, the
// weekly reset every Monday midnight; on Mondays both fire and the order does
// not matter since they touch different counters.
func (j *EarningsResetJob) Start() error {
	if _, err := j.cron.AddFunc(dailyResetSchedule, func() {
		j.reset(commands.EarningsPeriodDaily)
	}); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(weeklyResetSchedule, func() {
		j.reset(commands.EarningsPeriodWeekly)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Earnings reset job started",
		"daily", dailyResetSchedule, "weekly", weeklyResetSchedule)
	return nil
}

// Stop stops the scheduler. Already running resets finish on their own.
func (j *EarningsResetJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Earnings reset job stopped")
}

func (j *EarningsResetJob) reset(period commands.EarningsPeriod) {
	ctx := context.Background()

	cmd, err := commands.NewResetPartnerEarningsCommand(period)
	if err != nil {
		j.logger.ErrorContext(ctx, "Earnings reset command rejected", "period", period, "error", err)
		return
	}

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Earnings reset failed", "period", period, "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Earnings counters reset", "period", period)
}
