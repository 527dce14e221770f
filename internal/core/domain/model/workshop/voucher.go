package workshop

import (
	"errors"

	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrVoucherIsNotConstructed = errors.New("Voucher must be created via NewVoucher constructor")

// Voucher pays from a prepaid balance; every charge consumes it.
type Voucher struct {
	paymentMean

	code        string
	description string
	available   decimal.Decimal
}

func NewVoucher(code, description string, available decimal.Decimal) (*Voucher, error) {
	if err := errors.Join(
		guard.NotBlank(code, "code"),
		guard.NotBlank(description, "description"),
		guard.NotNegativeAmount(available, "available"),
	); err != nil {
		return nil, err
	}

	return &Voucher{
		paymentMean: newPaymentMean(),
		code:        code,
		description: description,
		available:   available,
	}, nil
}

func (v *Voucher) Validate() error {
	if v == nil {
		return ErrVoucherIsNotConstructed
	}
	return v.guard.Validate(ErrVoucherIsNotConstructed)
}

func (v *Voucher) Code() string { return v.code }
func (v *Voucher) Description() string { return v.description }
func (v *Voucher) Available() decimal.Decimal { return v.available }

func (v *Voucher) CanPay(amount decimal.Decimal) bool {
	return v.available.GreaterThanOrEqual(amount)
}

func (v *Voucher) pay(amount decimal.Decimal) {
	v.paymentMean.pay(amount)
	v.available = v.available.Sub(amount)
}

func (v *Voucher) refund(amount decimal.Decimal) {
	v.paymentMean.refund(amount)
	v.available = v.available.Add(amount)
}

func (v *Voucher) kind() string { return "voucher" }
