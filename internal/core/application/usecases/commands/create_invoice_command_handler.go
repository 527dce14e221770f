package commands

import (
	"context"
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/workshop"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"
)

var ErrInvoiceAlreadyExists = errors.New("invoice already exists")

// CreateInvoiceCommandHandler bills finished work orders on a new invoice.
// The work orders move to INVOICED only if the invoice is stored.
type CreateInvoiceCommandHandler struct {
	invoices    ports.InvoiceRepository
	workOrders  ports.WorkOrderRepository
	vatSchedule workshop.VATSchedule
}

func NewCreateInvoiceCommandHandler(
	invoices ports.InvoiceRepository,
	workOrders ports.WorkOrderRepository,
	vatSchedule workshop.VATSchedule,
) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		invoices:    invoices,
		workOrders:  workOrders,
		vatSchedule: vatSchedule,
	}
}

// Handle creates the invoice. It fails with ErrInvoiceAlreadyExists if the
// number is taken, and with the domain error if any work order is not
// FINISHED.
func (h CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.invoices.Get(ctx, cmd.Number())
	if err == nil {
		return fmt.Errorf("%w: number %d", ErrInvoiceAlreadyExists, cmd.Number())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("look up invoice %d: %w", cmd.Number(), err)
	}

	workOrders := make([]*workshop.WorkOrder, 0, len(cmd.WorkOrderIDs()))
	for _, id := range cmd.WorkOrderIDs() {
		wo, err := h.workOrders.Get(ctx, id)
		if err != nil {
			return fmt.Errorf("load work order %s: %w", id, err)
		}
		workOrders = append(workOrders, wo)
	}

	invoice, err := workshop.NewInvoice(cmd.Number(), cmd.Date(), workOrders, workshop.WithVATSchedule(h.vatSchedule))
	if err != nil {
		return err
	}

	if err = h.invoices.Add(ctx, invoice); err != nil {
		errList := []error{fmt.Errorf("store invoice %d: %w", cmd.Number(), err)}
		for _, wo := range workOrders {
			if rerr := invoice.RemoveWorkOrder(wo); rerr != nil {
				errList = append(errList, rerr)
			}
		}
		return errors.Join(errList...)
	}

	return nil
}
