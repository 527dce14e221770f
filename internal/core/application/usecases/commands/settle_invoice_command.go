package commands

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSettleInvoiceCommandIsNotConstructed = errors.New(
		"SettleInvoiceCommand must be created via NewSettleInvoiceCommand constructor",
	)
	ErrPaymentsAreRequired  = errors.New("at least one payment is required")
	ErrPaymentAmountInvalid = errors.New("payment amount must be greater than 0")
)

// PaymentRequest pays Amount with the payment mean identified by MeanID.
type PaymentRequest struct {
	MeanID kernel.UUID
	Amount decimal.Decimal
}

// SettleInvoiceCommand requests the settlement of an invoice with one or more
// payments.
type SettleInvoiceCommand struct { //nolint:recvcheck //using for validation
	number   int64
	payments []PaymentRequest

	guard guard.ConstructorGuard
}

func NewSettleInvoiceCommand(number int64, payments []PaymentRequest) (SettleInvoiceCommand, error) {
	cmd := SettleInvoiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setPayments(payments),
	); err != nil {
		return SettleInvoiceCommand{}, err
	}

	return cmd, nil
}

func (c SettleInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrSettleInvoiceCommandIsNotConstructed)
}

func (c SettleInvoiceCommand) Number() int64 {
	return c.number
}

func (c SettleInvoiceCommand) Payments() []PaymentRequest {
	payments := make([]PaymentRequest, len(c.payments))
	copy(payments, c.payments)
	return payments
}

func (c *SettleInvoiceCommand) setNumber(number int64) error {
	if number < 0 {
		return ErrInvoiceNumberIsInvalid
	}

	c.number = number
	return nil
}

func (c *SettleInvoiceCommand) setPayments(payments []PaymentRequest) error {
	if len(payments) == 0 {
		return ErrPaymentsAreRequired
	}
	for i, p := range payments {
		if err := p.MeanID.Validate(); err != nil {
			return fmt.Errorf("payment %d: %w", i, err)
		}
		if !p.Amount.IsPositive() {
			return fmt.Errorf("payment %d: %w", i, ErrPaymentAmountInvalid)
		}
	}

	c.payments = make([]PaymentRequest, len(payments))
	copy(c.payments, payments)
	return nil
}
