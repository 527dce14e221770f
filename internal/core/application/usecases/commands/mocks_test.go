package commands_test

import (
	"context"
	"time"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"
	"workshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockMechanicRepository struct{ mock.Mock }

func (m *MockMechanicRepository) Add(ctx context.Context, mechanic *workshop.Mechanic) error {
	args := m.Called(ctx, mechanic)
	return args.Error(0)
}

func (m *MockMechanicRepository) Get(ctx context.Context, nif string) (*workshop.Mechanic, error) {
	args := m.Called(ctx, nif)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workshop.Mechanic), args.Error(1)
}

func (m *MockMechanicRepository) GetAll(ctx context.Context) ([]*workshop.Mechanic, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workshop.Mechanic), args.Error(1)
}

type MockWorkOrderRepository struct{ mock.Mock }

func (m *MockWorkOrderRepository) Add(ctx context.Context, wo *workshop.WorkOrder) error {
	args := m.Called(ctx, wo)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workshop.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workshop.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) GetAllFinished(ctx context.Context) ([]*workshop.WorkOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workshop.WorkOrder), args.Error(1)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, invoice *workshop.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Get(ctx context.Context, number int64) (*workshop.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workshop.Invoice), args.Error(1)
}

type MockPaymentMeanRepository struct{ mock.Mock }

func (m *MockPaymentMeanRepository) Add(ctx context.Context, pm workshop.PaymentMean) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockPaymentMeanRepository) Get(ctx context.Context, id kernel.UUID) (workshop.PaymentMean, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(workshop.PaymentMean), args.Error(1)
}

type MockPayrollRepository struct{ mock.Mock }

func (m *MockPayrollRepository) Add(ctx context.Context, payroll *workshop.Payroll) error {
	args := m.Called(ctx, payroll)
	return args.Error(0)
}

func (m *MockPayrollRepository) ExistsForPeriod(
	ctx context.Context,
	nif string,
	year int,
	month time.Month,
) (bool, error) {
	args := m.Called(ctx, nif, year, month)
	return args.Bool(0), args.Error(1)
}

type MockPayrollUoW struct{ mock.Mock }

func (m *MockPayrollUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPayrollUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPayrollUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPayrollUoW) PayrollRepository() ports.PayrollRepository {
	args := m.Called()
	return args.Get(0).(ports.PayrollRepository)
}

type MockPayrollUoWFactory struct{ mock.Mock }

func (m *MockPayrollUoWFactory) Create() commands.PayrollUoW {
	args := m.Called()
	return args.Get(0).(commands.PayrollUoW)
}
