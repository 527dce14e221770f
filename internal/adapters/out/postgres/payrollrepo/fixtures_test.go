package payrollrepo_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// newContract hires a mechanic on 28000 a year from January 2024.
func newContract(t *testing.T, nif string) *workshop.Contract {
	t.Helper()

	mechanic, err := workshop.NewMechanic(nif, "Eva", "Ruiz")
	require.NoError(t, err)
	contractType, err := workshop.NewContractType("permanent", decimal.NewFromInt(20), false)
	require.NoError(t, err)
	group, err := workshop.NewProfessionalGroup("I", decimal.NewFromInt(50), decimal.RequireFromString("0.05"))
	require.NoError(t, err)
	contract, err := workshop.NewContract(mechanic, contractType, group, kernel.Date(2024, time.January, 10), decimal.NewFromInt(28000))
	require.NoError(t, err)
	return contract
}

func newPayroll(t *testing.T, contract *workshop.Contract, month time.Month) *workshop.Payroll {
	t.Helper()

	payroll, err := workshop.NewPayroll(contract, kernel.LastDayOfMonth(kernel.Date(2024, month, 1)))
	require.NoError(t, err)
	return payroll
}
