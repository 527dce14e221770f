package memory

import (
	"context"
	"slices"
	"strings"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"
	"workshop/internal/pkg/guard"
)

type MechanicRepository struct {
	store *store[string, *workshop.Mechanic]
}

func NewMechanicRepository() *MechanicRepository {
	return &MechanicRepository{store: newStore[string, *workshop.Mechanic]("mechanic")}
}

func (r *MechanicRepository) Add(_ context.Context, mechanic *workshop.Mechanic) error {
	if err := mechanic.Validate(); err != nil {
		return err
	}
	return r.store.add(mechanic.NIF(), mechanic)
}

func (r *MechanicRepository) Get(_ context.Context, nif string) (*workshop.Mechanic, error) {
	return r.store.get(nif)
}

func (r *MechanicRepository) GetAll(_ context.Context) ([]*workshop.Mechanic, error) {
	mechanics := r.store.values(nil)
	slices.SortFunc(mechanics, func(a, b *workshop.Mechanic) int {
		return strings.Compare(a.NIF(), b.NIF())
	})
	return mechanics, nil
}

type WorkOrderRepository struct {
	store *store[kernel.UUID, *workshop.WorkOrder]
}

func NewWorkOrderRepository() *WorkOrderRepository {
	return &WorkOrderRepository{store: newStore[kernel.UUID, *workshop.WorkOrder]("work order")}
}

func (r *WorkOrderRepository) Add(_ context.Context, workOrder *workshop.WorkOrder) error {
	if err := workOrder.Validate(); err != nil {
		return err
	}
	return r.store.add(workOrder.ID(), workOrder)
}

func (r *WorkOrderRepository) Get(_ context.Context, id kernel.UUID) (*workshop.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.store.get(id)
}

// GetAllFinished returns FINISHED work orders by creation date.
func (r *WorkOrderRepository) GetAllFinished(_ context.Context) ([]*workshop.WorkOrder, error) {
	finished := r.store.values((*workshop.WorkOrder).IsFinished)
	slices.SortFunc(finished, func(a, b *workshop.WorkOrder) int {
		if c := a.Date().Compare(b.Date()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return finished, nil
}

type InvoiceRepository struct {
	store *store[int64, *workshop.Invoice]
}

func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{store: newStore[int64, *workshop.Invoice]("invoice")}
}

func (r *InvoiceRepository) Add(_ context.Context, invoice *workshop.Invoice) error {
	if err := invoice.Validate(); err != nil {
		return err
	}
	return r.store.add(invoice.Number(), invoice)
}

func (r *InvoiceRepository) Get(_ context.Context, number int64) (*workshop.Invoice, error) {
	return r.store.get(number)
}

type PaymentMeanRepository struct {
	store *store[kernel.UUID, workshop.PaymentMean]
}

func NewPaymentMeanRepository() *PaymentMeanRepository {
	return &PaymentMeanRepository{store: newStore[kernel.UUID, workshop.PaymentMean]("payment mean")}
}

func (r *PaymentMeanRepository) Add(_ context.Context, paymentMean workshop.PaymentMean) error {
	if err := guard.NotNilInterface(paymentMean, "payment mean"); err != nil {
		return err
	}
	if err := paymentMean.Validate(); err != nil {
		return err
	}
	return r.store.add(paymentMean.ID(), paymentMean)
}

func (r *PaymentMeanRepository) Get(_ context.Context, id kernel.UUID) (workshop.PaymentMean, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.store.get(id)
}
