// Package jobs provides scheduled background tasks for the workshop.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// 1. PayrollJob - generates the payrolls of the previous month for every
// contract in force. The default schedule "0 0 6 1 * *" runs it at 06:00 on
// the first day of each month.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(generatePayrollsHandler, cfg.Payroll.Schedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Payrolls already
// stored for a month are skipped, so a rerun only fills the gaps. Runs never
// overlap: a tick arriving while generation is still in progress is skipped.
package jobs
