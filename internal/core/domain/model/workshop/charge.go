package workshop

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrChargeIsNotConstructed = errors.New("Charge must be created via NewCharge constructor")

// Charge is a payment of part of an invoice with one payment mean.
type Charge struct {
	id     kernel.UUID
	amount decimal.Decimal

	invoice     *Invoice
	paymentMean PaymentMean

	guard guard.ConstructorGuard
}

// NewCharge pays amount of invoice with paymentMean. The invoice must be
// unpaid and the payment mean able to pay the amount, which may be zero. On
// success the payment mean's accumulated total grows by amount.
func NewCharge(invoice *Invoice, paymentMean PaymentMean, amount decimal.Decimal) (*Charge, error) {
	if err := errors.Join(
		guard.NotNil(invoice, "invoice"),
		requirePaymentMean(paymentMean),
		guard.NotNegativeAmount(amount, "amount"),
	); err != nil {
		return nil, err
	}
	if err := invoice.status.ValidateChange("charge"); err != nil {
		return nil, err
	}
	if !paymentMean.CanPay(amount) {
		return nil, errs.NewStateConflictErrorWithCause(paymentMean.kind(), "CURRENT", "charge",
			fmt.Errorf("%s cannot pay %s", paymentMean.kind(), amount.StringFixed(2)))
	}

	charge := &Charge{
		id:     kernel.NewUUID(),
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}
	linkSettles(invoice, charge, paymentMean)
	paymentMean.pay(amount)
	return charge, nil
}

func (c *Charge) Validate() error {
	if c == nil {
		return ErrChargeIsNotConstructed
	}
	return c.guard.Validate(ErrChargeIsNotConstructed)
}

func (c *Charge) Key() kernel.UUID { return c.id }

func (c *Charge) IsEqual(other *Charge) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Charge) ID() kernel.UUID { return c.id }
func (c *Charge) Amount() decimal.Decimal { return c.amount }

// Invoice returns the settled invoice, or nil once unlinked.
func (c *Charge) Invoice() *Invoice { return c.invoice }

// PaymentMean returns the instrument used, or nil once unlinked.
func (c *Charge) PaymentMean() PaymentMean { return c.paymentMean }
