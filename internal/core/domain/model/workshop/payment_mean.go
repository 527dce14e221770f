package workshop

import (
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
	"workshop/internal/pkg/relation"

	"github.com/shopspring/decimal"
)

// PaymentMean is a payment instrument held by a client: *Cash, *CreditCard
// or *Voucher. The set of variants is closed.
type PaymentMean interface {
	relation.Keyed[kernel.UUID]

	ID() kernel.UUID
	// Client returns the holder, or nil.
	Client() *Client
	// Accumulated is the total of the charges currently made with it.
	Accumulated() decimal.Decimal
	Charges() []*Charge
	// CanPay reports whether a charge of amount may be made with it now.
	CanPay(amount decimal.Decimal) bool
	Validate() error

	common() *paymentMean
	pay(amount decimal.Decimal)
	refund(amount decimal.Decimal)
	kind() string
}

// paymentMean is the part shared by every variant.
type paymentMean struct {
	id          kernel.UUID
	accumulated decimal.Decimal
	client      *Client
	charges     relation.Set[kernel.UUID, *Charge]

	guard guard.ConstructorGuard
}

func newPaymentMean() paymentMean {
	return paymentMean{
		id:          kernel.NewUUID(),
		accumulated: decimal.Zero,
		guard:       guard.NewConstructorGuard(),
	}
}

func (p *paymentMean) ID() kernel.UUID { return p.id }
func (p *paymentMean) Key() kernel.UUID { return p.id }
func (p *paymentMean) Client() *Client { return p.client }
func (p *paymentMean) Accumulated() decimal.Decimal { return p.accumulated }

func (p *paymentMean) Charges() []*Charge {
	return p.charges.Snapshot()
}

func (p *paymentMean) common() *paymentMean { return p }

func (p *paymentMean) pay(amount decimal.Decimal) {
	p.accumulated = p.accumulated.Add(amount)
}

func (p *paymentMean) refund(amount decimal.Decimal) {
	p.accumulated = p.accumulated.Sub(amount)
}
