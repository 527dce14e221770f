package commands

import (
	"context"
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/workshop"
	"workshop/internal/core/ports"
)

var ErrNoContractInForce = errors.New("mechanic has no contract in force")

// TerminateContractCommandHandler ends the contract in force of a mechanic
// and computes its settlement.
type TerminateContractCommandHandler struct {
	mechanics ports.MechanicRepository
}

func NewTerminateContractCommandHandler(mechanics ports.MechanicRepository) TerminateContractCommandHandler {
	return TerminateContractCommandHandler{
		mechanics: mechanics,
	}
}

// Handle returns the terminated contract, carrying its settlement.
func (h TerminateContractCommandHandler) Handle(ctx context.Context, cmd TerminateContractCommand) (*workshop.Contract, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	mechanic, err := h.mechanics.Get(ctx, cmd.NIF())
	if err != nil {
		return nil, fmt.Errorf("load mechanic %s: %w", cmd.NIF(), err)
	}

	contract, ok := mechanic.ContractInForce()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoContractInForce, cmd.NIF())
	}

	if err = contract.Terminate(cmd.Date()); err != nil {
		return nil, err
	}
	return contract, nil
}
