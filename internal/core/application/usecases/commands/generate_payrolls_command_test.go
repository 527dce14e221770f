package commands_test

import (
	"errors"
	"testing"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"
	"workshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewGeneratePayrollsCommand(t *testing.T) {
	t.Run("should normalize the period to the first day of the month", func(t *testing.T) {
		cmd, err := commands.NewGeneratePayrollsCommand(time.Date(2024, time.March, 17, 8, 30, 0, 0, time.UTC))

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, kernel.Date(2024, time.March, 1), cmd.Period())
	})

	t.Run("should require a period", func(t *testing.T) {
		_, err := commands.NewGeneratePayrollsCommand(time.Time{})

		require.ErrorIs(t, err, commands.ErrPeriodIsRequired)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		var cmd commands.GeneratePayrollsCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrGeneratePayrollsCommandIsNotConstructed)
	})
}

func TestGeneratePayrollsCommandHandler_Handle(t *testing.T) {
	generator, err := services.NewPayrollGenerator(workshop.DefaultPayrollRules())
	require.NoError(t, err)
	march, err := commands.NewGeneratePayrollsCommand(kernel.Date(2024, time.March, 1))
	require.NoError(t, err)

	t.Run("should generate and store the payrolls of the month", func(t *testing.T) {
		// Given
		ctx := t.Context()
		first, firstContract := hiredMechanic(t, "1")
		second, secondContract := hiredMechanic(t, "2")

		mechanics := new(MockMechanicRepository)
		mechanics.On("GetAll", ctx).Return([]*workshop.Mechanic{first, second}, nil).Once()

		repo := new(MockPayrollRepository)
		uow := new(MockPayrollUoW)
		factory := new(MockPayrollUoWFactory)
		factory.On("Create").Return(uow).Once()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("PayrollRepository").Return(repo).Once(),
			repo.On("ExistsForPeriod", ctx, "1", 2024, time.March).Return(false, nil).Once(),
			repo.On("ExistsForPeriod", ctx, "2", 2024, time.March).Return(false, nil).Once(),
			repo.On("Add", ctx, mock.AnythingOfType("*workshop.Payroll")).Return(nil).Twice(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		handler := commands.NewGeneratePayrollsCommandHandler(mechanics, factory, generator)

		// When
		count, err := handler.Handle(ctx, march)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		require.Len(t, firstContract.Payrolls(), 1)
		payroll := firstContract.Payrolls()[0]
		assert.Equal(t, kernel.Date(2024, time.March, 31), payroll.Date())
		assert.Equal(t, "2000.00", payroll.MonthlyWage().StringFixed(2))
		assert.Equal(t, "1283.33", payroll.Net().StringFixed(2))
		assert.Len(t, secondContract.Payrolls(), 1)
		mechanics.AssertExpectations(t)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should skip contracts already paid in storage", func(t *testing.T) {
		ctx := t.Context()
		mechanic, contract := hiredMechanic(t, "1")

		mechanics := new(MockMechanicRepository)
		mechanics.On("GetAll", ctx).Return([]*workshop.Mechanic{mechanic}, nil).Once()
		repo := new(MockPayrollRepository)
		repo.On("ExistsForPeriod", ctx, "1", 2024, time.March).Return(true, nil).Once()
		uow := new(MockPayrollUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("PayrollRepository").Return(repo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockPayrollUoWFactory)
		factory.On("Create").Return(uow).Once()
		handler := commands.NewGeneratePayrollsCommandHandler(mechanics, factory, generator)

		count, err := handler.Handle(ctx, march)

		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Empty(t, contract.Payrolls())
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("should discard the payrolls when the commit fails", func(t *testing.T) {
		ctx := t.Context()
		mechanic, contract := hiredMechanic(t, "1")
		commitErr := errors.New("serialization failure")

		mechanics := new(MockMechanicRepository)
		mechanics.On("GetAll", ctx).Return([]*workshop.Mechanic{mechanic}, nil).Once()
		repo := new(MockPayrollRepository)
		repo.On("ExistsForPeriod", ctx, "1", 2024, time.March).Return(false, nil).Once()
		repo.On("Add", ctx, mock.Anything).Return(nil).Once()
		uow := new(MockPayrollUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("PayrollRepository").Return(repo).Once()
		uow.On("Commit", ctx).Return(commitErr).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockPayrollUoWFactory)
		factory.On("Create").Return(uow).Once()
		handler := commands.NewGeneratePayrollsCommandHandler(mechanics, factory, generator)

		count, err := handler.Handle(ctx, march)

		require.ErrorIs(t, err, commitErr)
		assert.Zero(t, count)
		assert.Empty(t, contract.Payrolls())
		uow.AssertExpectations(t)
	})

	t.Run("should discard the payrolls when storing one fails", func(t *testing.T) {
		ctx := t.Context()
		mechanic, contract := hiredMechanic(t, "1")
		addErr := errors.New("duplicate key")

		mechanics := new(MockMechanicRepository)
		mechanics.On("GetAll", ctx).Return([]*workshop.Mechanic{mechanic}, nil).Once()
		repo := new(MockPayrollRepository)
		repo.On("ExistsForPeriod", ctx, "1", 2024, time.March).Return(false, nil).Once()
		repo.On("Add", ctx, mock.Anything).Return(addErr).Once()
		uow := new(MockPayrollUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("PayrollRepository").Return(repo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory := new(MockPayrollUoWFactory)
		factory.On("Create").Return(uow).Once()
		handler := commands.NewGeneratePayrollsCommandHandler(mechanics, factory, generator)

		_, err := handler.Handle(ctx, march)

		require.ErrorIs(t, err, addErr)
		assert.Empty(t, contract.Payrolls())
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should not open a transaction when mechanics cannot be loaded", func(t *testing.T) {
		ctx := t.Context()
		loadErr := errors.New("timeout")

		mechanics := new(MockMechanicRepository)
		mechanics.On("GetAll", ctx).Return(nil, loadErr).Once()
		factory := new(MockPayrollUoWFactory)
		handler := commands.NewGeneratePayrollsCommandHandler(mechanics, factory, generator)

		_, err := handler.Handle(ctx, march)

		require.ErrorIs(t, err, loadErr)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should fail when the transaction cannot begin", func(t *testing.T) {
		ctx := t.Context()
		beginErr := errors.New("pool exhausted")

		mechanics := new(MockMechanicRepository)
		mechanics.On("GetAll", ctx).Return([]*workshop.Mechanic{}, nil).Once()
		uow := new(MockPayrollUoW)
		uow.On("Begin", ctx).Return(beginErr).Once()
		factory := new(MockPayrollUoWFactory)
		factory.On("Create").Return(uow).Once()
		handler := commands.NewGeneratePayrollsCommandHandler(mechanics, factory, generator)

		_, err := handler.Handle(ctx, march)

		require.ErrorIs(t, err, beginErr)
		uow.AssertNotCalled(t, "Rollback", mock.Anything)
	})
}
