package services_test

import (
	"errors"
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"
	"workshop/internal/core/domain/services"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContract(t *testing.T, nif string, signed time.Time) *workshop.Contract {
	t.Helper()

	mechanic, err := workshop.NewMechanic(nif, "Name", "Surname")
	require.NoError(t, err)
	contractType, err := workshop.NewContractType("permanent", decimal.NewFromInt(20), false)
	require.NoError(t, err)
	group, err := workshop.NewProfessionalGroup("I", decimal.NewFromInt(50), decimal.RequireFromString("0.05"))
	require.NoError(t, err)
	contract, err := workshop.NewContract(mechanic, contractType, group, signed, decimal.NewFromInt(28000))
	require.NoError(t, err)
	return contract
}

func TestPayrollGenerator_Generate(t *testing.T) {
	generator, err := services.NewPayrollGenerator(workshop.DefaultPayrollRules())
	require.NoError(t, err)
	march := kernel.Date(2024, time.March, 10)

	t.Run("should pay every covered mechanic on the last day of the month", func(t *testing.T) {
		// Given
		first := newContract(t, "A", kernel.Date(2023, time.May, 3))
		second := newContract(t, "B", kernel.Date(2024, time.March, 20))
		notYet := newContract(t, "C", kernel.Date(2024, time.April, 1))
		mechanics := []*workshop.Mechanic{first.Mechanic(), second.Mechanic(), notYet.Mechanic()}

		// When
		payrolls, err := generator.Generate(mechanics, march, nil)

		// Then
		require.NoError(t, err)
		require.Len(t, payrolls, 2)
		assert.Same(t, first, payrolls[0].Contract())
		assert.Same(t, second, payrolls[1].Contract())
		for _, p := range payrolls {
			assert.Equal(t, kernel.Date(2024, time.March, 31), p.Date())
		}
		assert.Empty(t, notYet.Payrolls())
	})

	t.Run("should skip months already paid in the graph", func(t *testing.T) {
		c := newContract(t, "A", kernel.Date(2023, time.May, 3))
		_, err := generator.Generate([]*workshop.Mechanic{c.Mechanic()}, march, nil)
		require.NoError(t, err)

		payrolls, err := generator.Generate([]*workshop.Mechanic{c.Mechanic()}, march, nil)

		require.NoError(t, err)
		assert.Empty(t, payrolls)
		assert.Len(t, c.Payrolls(), 1)
	})

	t.Run("should skip months reported as paid", func(t *testing.T) {
		c := newContract(t, "A", kernel.Date(2023, time.May, 3))
		var checked []*workshop.Contract

		payrolls, err := generator.Generate([]*workshop.Mechanic{c.Mechanic()}, march,
			func(contract *workshop.Contract, period time.Time) (bool, error) {
				checked = append(checked, contract)
				assert.Equal(t, kernel.Date(2024, time.March, 31), period)
				return true, nil
			})

		require.NoError(t, err)
		assert.Empty(t, payrolls)
		assert.Equal(t, []*workshop.Contract{c}, checked)
	})

	t.Run("should create nothing when the check fails", func(t *testing.T) {
		first := newContract(t, "A", kernel.Date(2023, time.May, 3))
		second := newContract(t, "B", kernel.Date(2023, time.May, 3))
		boom := errors.New("storage down")
		calls := 0

		payrolls, err := generator.Generate([]*workshop.Mechanic{first.Mechanic(), second.Mechanic()}, march,
			func(*workshop.Contract, time.Time) (bool, error) {
				calls++
				if calls == 2 {
					return false, boom
				}
				return false, nil
			})

		require.ErrorIs(t, err, boom)
		assert.Nil(t, payrolls)
		assert.Empty(t, first.Payrolls())
	})

	t.Run("should pay the latest contract only", func(t *testing.T) {
		// Given: the second contract, signed mid-month, ends the first one on its own start
		previous := newContract(t, "A", kernel.Date(2024, time.March, 1))
		current, err := workshop.NewContract(previous.Mechanic(), previous.ContractType(), previous.ProfessionalGroup(),
			kernel.Date(2024, time.March, 15), decimal.NewFromInt(30000))
		require.NoError(t, err)

		// When
		payrolls, err := generator.Generate([]*workshop.Mechanic{previous.Mechanic()}, march, nil)

		// Then
		require.NoError(t, err)
		require.Len(t, payrolls, 1)
		assert.Same(t, current, payrolls[0].Contract())
	})

	t.Run("should pay the final month of a terminated contract", func(t *testing.T) {
		c := newContract(t, "A", kernel.Date(2023, time.May, 3))
		require.NoError(t, c.Terminate(kernel.Date(2024, time.March, 5)))

		payrolls, err := generator.Generate([]*workshop.Mechanic{c.Mechanic()}, march, nil)
		require.NoError(t, err)
		assert.Len(t, payrolls, 1)

		payrolls, err = generator.Generate([]*workshop.Mechanic{c.Mechanic()}, kernel.Date(2024, time.April, 1), nil)
		require.NoError(t, err)
		assert.Empty(t, payrolls)
	})

	t.Run("should reject mechanics not built by the constructor", func(t *testing.T) {
		_, err := generator.Generate([]*workshop.Mechanic{{}}, march, nil)

		require.ErrorIs(t, err, workshop.ErrMechanicIsNotConstructed)
	})
}

func TestNewPayrollGenerator(t *testing.T) {
	rules := workshop.DefaultPayrollRules()
	rules.SocialSecurityRate = decimal.NewFromInt(2)

	_, err := services.NewPayrollGenerator(rules)

	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestDiscard(t *testing.T) {
	generator, err := services.NewPayrollGenerator(workshop.DefaultPayrollRules())
	require.NoError(t, err)
	c := newContract(t, "A", kernel.Date(2023, time.May, 3))
	payrolls, err := generator.Generate([]*workshop.Mechanic{c.Mechanic()}, kernel.Date(2024, time.March, 1), nil)
	require.NoError(t, err)

	services.Discard(payrolls)

	assert.Empty(t, c.Payrolls())
	assert.Nil(t, payrolls[0].Contract())
}
