package commands

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrGeneratePayrollsCommandIsNotConstructed = errors.New(
		"GeneratePayrollsCommand must be created via NewGeneratePayrollsCommand constructor",
	)
	ErrPeriodIsRequired = errors.New("period is required")
)

// GeneratePayrollsCommand requests the payrolls of one calendar month.
type GeneratePayrollsCommand struct { //nolint:recvcheck //using for validation
	period time.Time

	guard guard.ConstructorGuard
}

// NewGeneratePayrollsCommand accepts any day of the month to pay.
func NewGeneratePayrollsCommand(period time.Time) (GeneratePayrollsCommand, error) {
	cmd := GeneratePayrollsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPeriod(period); err != nil {
		return GeneratePayrollsCommand{}, err
	}

	return cmd, nil
}

func (c GeneratePayrollsCommand) Validate() error {
	return c.guard.Validate(ErrGeneratePayrollsCommandIsNotConstructed)
}

// Period returns the first day of the month to pay.
func (c GeneratePayrollsCommand) Period() time.Time {
	return c.period
}

func (c *GeneratePayrollsCommand) setPeriod(period time.Time) error {
	if period.IsZero() {
		return ErrPeriodIsRequired
	}

	c.period = kernel.FirstDayOfMonth(period)
	return nil
}
