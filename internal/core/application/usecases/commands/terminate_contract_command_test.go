package commands_test

import (
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTerminateContractCommand(t *testing.T) {
	t.Run("should build a valid command", func(t *testing.T) {
		date := kernel.Date(2025, time.June, 10)

		cmd, err := commands.NewTerminateContractCommand("12345678Z", date)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "12345678Z", cmd.NIF())
		assert.Equal(t, date, cmd.Date())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		_, err := commands.NewTerminateContractCommand("  ", time.Time{})

		require.ErrorIs(t, err, commands.ErrNIFIsRequired)
		require.ErrorIs(t, err, commands.ErrTerminationDateIsRequired)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.TerminateContractCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrTerminateContractCommandIsNotConstructed)
	})
}

func TestTerminateContractCommandHandler_Handle(t *testing.T) {
	t.Run("should terminate the contract in force and compute the settlement", func(t *testing.T) {
		// Given
		ctx := t.Context()
		mechanic, contract := hiredMechanic(t, "12345678Z")
		cmd, err := commands.NewTerminateContractCommand("12345678Z", kernel.Date(2025, time.June, 10))
		require.NoError(t, err)

		mechanics := new(MockMechanicRepository)
		mechanics.On("Get", ctx, "12345678Z").Return(mechanic, nil).Once()
		handler := commands.NewTerminateContractCommandHandler(mechanics)

		// When
		terminated, err := handler.Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Same(t, contract, terminated)
		assert.Equal(t, workshop.ContractTerminated, contract.Status())
		end, ok := contract.EndDate()
		require.True(t, ok)
		assert.Equal(t, kernel.Date(2025, time.June, 30), end)
		// one full year of 28000 at 20 days per year
		assert.Equal(t, "1534.25", contract.Settlement().StringFixed(2))
		mechanics.AssertExpectations(t)
	})

	t.Run("should fail when there is no contract in force", func(t *testing.T) {
		ctx := t.Context()
		mechanic, contract := hiredMechanic(t, "12345678Z")
		require.NoError(t, contract.Terminate(kernel.Date(2024, time.March, 1)))
		cmd, err := commands.NewTerminateContractCommand("12345678Z", kernel.Date(2025, time.June, 10))
		require.NoError(t, err)

		mechanics := new(MockMechanicRepository)
		mechanics.On("Get", ctx, "12345678Z").Return(mechanic, nil).Once()
		handler := commands.NewTerminateContractCommandHandler(mechanics)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrNoContractInForce)
		assert.True(t, decimal.Zero.Equal(contract.Settlement()))
	})

	t.Run("should surface a termination before the start date", func(t *testing.T) {
		ctx := t.Context()
		mechanic, contract := hiredMechanic(t, "12345678Z")
		cmd, err := commands.NewTerminateContractCommand("12345678Z", kernel.Date(2023, time.December, 31))
		require.NoError(t, err)

		mechanics := new(MockMechanicRepository)
		mechanics.On("Get", ctx, "12345678Z").Return(mechanic, nil).Once()
		handler := commands.NewTerminateContractCommandHandler(mechanics)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidArgument)
		assert.True(t, contract.IsInForce())
	})

	t.Run("should wrap a missing mechanic", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewTerminateContractCommand("0000", kernel.Date(2025, time.June, 10))
		require.NoError(t, err)

		mechanics := new(MockMechanicRepository)
		mechanics.On("Get", ctx, "0000").Return(nil, errs.NewObjectNotFoundError("nif", "0000")).Once()
		handler := commands.NewTerminateContractCommandHandler(mechanics)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
