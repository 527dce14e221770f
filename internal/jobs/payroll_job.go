package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// PayrollHandler generates the payrolls of one month.
type PayrollHandler interface {
	Handle(ctx context.Context, cmd commands.GeneratePayrollsCommand) (int, error)
}

// PayrollJob generates the payrolls of the previous month on a cron schedule.
// A run that overlaps a slow predecessor is skipped.
type PayrollJob struct {
	handler  PayrollHandler
	schedule string
	clock    kernel.Clock
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPayrollJob creates a job running handler on schedule, a cron
// expression with a seconds field.
func NewPayrollJob(handler PayrollHandler, schedule string, logger *slog.Logger) *PayrollJob {
	logger = logger.With("component", "payroll_job")
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))

	return &PayrollJob{
		handler:  handler,
		schedule: schedule,
		clock:    kernel.SystemClock{},
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cronLogger))),
		logger:   logger,
	}
}

// Start schedules the job.
func (j *PayrollJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx, j.clock.Now()); err != nil {
			j.logger.ErrorContext(ctx, "Payroll job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payroll job started", "schedule", j.schedule)
	return nil
}

// Run generates the payrolls of the month before now and returns how many
// were generated.
func (j *PayrollJob) Run(ctx context.Context, now time.Time) (int, error) {
	period := kernel.FirstDayOfMonth(now).AddDate(0, -1, 0)

	cmd, err := commands.NewGeneratePayrollsCommand(period)
	if err != nil {
		return 0, err
	}

	count, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return 0, fmt.Errorf("generate payrolls for %s: %w", period.Format("2006-01"), err)
	}

	j.logger.InfoContext(ctx, "Payrolls generated", "period", period.Format("2006-01"), "count", count)
	return count, nil
}

// Stop unschedules the job and waits for a running generation to finish.
func (j *PayrollJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Payroll job stopped")
}
