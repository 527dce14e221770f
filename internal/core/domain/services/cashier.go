package services

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Payment is one part of a settlement: amount paid with Mean.
type Payment struct {
	Mean   workshop.PaymentMean
	Amount decimal.Decimal
}

// Cashier settles invoices.
//
// Business rules:
//   - every payment is checked before the first charge is made
//   - a payment mean used several times must be able to pay the sum
//   - charges already on the invoice count towards the total
//   - the invoice ends PAID or is left untouched
type Cashier struct{}

func NewCashier() Cashier {
	return Cashier{}
}

// Settle charges every payment to invoice and marks it PAID.
func (Cashier) Settle(invoice *workshop.Invoice, payments []Payment) ([]*workshop.Charge, error) {
	if err := invoice.Validate(); err != nil {
		return nil, err
	}
	if err := invoice.Status().ValidateChange("settle"); err != nil {
		return nil, err
	}
	if len(payments) == 0 && invoice.ChargedAmount().LessThan(invoice.Amount()) {
		return nil, errs.NewValueIsRequiredError("payments")
	}

	perMean := make(map[kernel.UUID]decimal.Decimal, len(payments))
	total := invoice.ChargedAmount()
	for i, p := range payments {
		if err := errors.Join(
			guard.NotNilInterface(p.Mean, fmt.Sprintf("payments[%d].mean", i)),
			guard.PositiveAmount(p.Amount, fmt.Sprintf("payments[%d].amount", i)),
		); err != nil {
			return nil, err
		}
		perMean[p.Mean.ID()] = perMean[p.Mean.ID()].Add(p.Amount)
		total = total.Add(p.Amount)
	}
	for _, p := range payments {
		if sum := perMean[p.Mean.ID()]; !p.Mean.CanPay(sum) {
			return nil, errs.NewStateConflictErrorWithCause("payment mean", "CURRENT", "charge",
				fmt.Errorf("payment mean %s cannot pay %s", p.Mean.ID(), sum.StringFixed(2)))
		}
	}
	if total.LessThan(invoice.Amount()) {
		return nil, errs.NewStateConflictErrorWithCause("invoice", invoice.Status().String(), "settle",
			fmt.Errorf("payments of %s do not cover %s", total.StringFixed(2), invoice.Amount().StringFixed(2)))
	}

	charges := make([]*workshop.Charge, 0, len(payments))
	for _, p := range payments {
		charge, err := workshop.NewCharge(invoice, p.Mean, p.Amount)
		if err != nil {
			return nil, undo(charges, err)
		}
		charges = append(charges, charge)
	}
	if err := invoice.Settle(); err != nil {
		return nil, undo(charges, err)
	}
	return charges, nil
}

// undo unlinks charges created before a failed settlement and joins any
// unlink error onto cause.
func undo(charges []*workshop.Charge, cause error) error {
	errList := []error{cause}
	for _, c := range charges {
		if err := workshop.UnlinkSettles(c); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}
