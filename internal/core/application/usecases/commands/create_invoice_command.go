package commands

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
)

var (
	ErrCreateInvoiceCommandIsNotConstructed = errors.New(
		"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
	)
	ErrInvoiceNumberIsInvalid = errors.New("invoice number must not be negative")
	ErrInvoiceDateIsRequired  = errors.New("invoice date is required")
	ErrWorkOrdersAreRequired  = errors.New("at least one work order is required")
)

// CreateInvoiceCommand requests an invoice billing finished work orders.
//
// Example:
//
//	cmd, err := NewCreateInvoiceCommand(1001, time.Now(), []kernel.UUID{woID})
//	if err != nil {
//	    return fmt.Errorf("invalid invoice data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create invoice: %w", err)
//	}
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	number       int64
	date         time.Time
	workOrderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateInvoiceCommand(number int64, date time.Time, workOrderIDs []kernel.UUID) (CreateInvoiceCommand, error) {
	cmd := CreateInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setDate(date),
		cmd.setWorkOrderIDs(workOrderIDs),
	); err != nil {
		return CreateInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

func (c CreateInvoiceCommand) Number() int64 {
	return c.number
}

func (c CreateInvoiceCommand) Date() time.Time {
	return c.date
}

// WorkOrderIDs returns the work orders to bill, in billing order.
func (c CreateInvoiceCommand) WorkOrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.workOrderIDs))
	copy(ids, c.workOrderIDs)
	return ids
}

func (c *CreateInvoiceCommand) setNumber(number int64) error {
	if number < 0 {
		return ErrInvoiceNumberIsInvalid
	}

	c.number = number
	return nil
}

func (c *CreateInvoiceCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrInvoiceDateIsRequired
	}

	c.date = date
	return nil
}

func (c *CreateInvoiceCommand) setWorkOrderIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrWorkOrdersAreRequired
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.workOrderIDs = make([]kernel.UUID, len(ids))
	copy(c.workOrderIDs, ids)
	return nil
}
