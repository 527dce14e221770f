package commands

import (
	"context"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/workshop"
	"workshop/internal/core/domain/services"
	"workshop/internal/core/ports"
)

// GeneratePayrollsCommandHandler runs the monthly payroll generation and
// stores the result in one transaction. Payrolls already stored for the month
// are not generated again; if storing fails, the generated payrolls are
// dropped from the entity graph as well.
type GeneratePayrollsCommandHandler struct {
	mechanics  ports.MechanicRepository
	uowFactory PayrollUoWFactory
	generator  services.PayrollGenerator
}

func NewGeneratePayrollsCommandHandler(
	mechanics ports.MechanicRepository,
	uowFactory PayrollUoWFactory,
	generator services.PayrollGenerator,
) GeneratePayrollsCommandHandler {
	return GeneratePayrollsCommandHandler{
		mechanics:  mechanics,
		uowFactory: uowFactory,
		generator:  generator,
	}
}

// Handle returns the number of payrolls generated.
func (h GeneratePayrollsCommandHandler) Handle(ctx context.Context, cmd GeneratePayrollsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	mechanics, err := h.mechanics.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load mechanics: %w", err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	payrollRepo := uow.PayrollRepository()
	stored := func(contract *workshop.Contract, period time.Time) (bool, error) {
		return payrollRepo.ExistsForPeriod(ctx, contract.Mechanic().NIF(), period.Year(), period.Month())
	}

	payrolls, err := h.generator.Generate(mechanics, cmd.Period(), stored)
	if err != nil {
		return 0, err
	}

	committed := false
	defer func() {
		if !committed {
			services.Discard(payrolls)
		}
	}()

	for _, p := range payrolls {
		if err = payrollRepo.Add(ctx, p); err != nil {
			return 0, fmt.Errorf("store payroll of %s: %w", p.Contract().Mechanic().NIF(), err)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	committed = true

	return len(payrolls), nil
}
