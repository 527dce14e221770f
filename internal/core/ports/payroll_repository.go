package ports

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/workshop"
)

// PayrollRepository persists generated payrolls. Stored payrolls are never
// updated.
type PayrollRepository interface {
	// Add persists a payroll. It fails if the mechanic already has a stored
	// payroll for the same month.
	Add(ctx context.Context, payroll *workshop.Payroll) error

	// ExistsForPeriod reports whether a payroll of the mechanic with the
	// given NIF is stored for the month. Contract IDs are not stable across
	// runs, so stored payrolls are matched by mechanic.
	ExistsForPeriod(ctx context.Context, nif string, year int, month time.Month) (bool, error)
}
