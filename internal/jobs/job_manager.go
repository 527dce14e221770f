package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	payrollJob *PayrollJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	generatePayrollsHandler PayrollHandler,
	payrollSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		payrollJob: NewPayrollJob(generatePayrollsHandler, payrollSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.payrollJob.Start(); err != nil {
		return fmt.Errorf("failed to start payroll job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.payrollJob.Stop()
}
