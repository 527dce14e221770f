package workshop

import (
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreditCardIsNotConstructed = errors.New("CreditCard must be created via NewCreditCard constructor")

// CreditCard pays any amount until its expiry date has passed.
type CreditCard struct {
	paymentMean

	number    string
	cardType  string
	validThru time.Time
	clock     kernel.Clock
}

// CreditCardOption customizes a new CreditCard.
type CreditCardOption func(*CreditCard)

// WithCardClock sets the clock CanPay compares the expiry date against.
func WithCardClock(clock kernel.Clock) CreditCardOption {
	return func(c *CreditCard) {
		c.clock = clock
	}
}

func NewCreditCard(number, cardType string, validThru time.Time, opts ...CreditCardOption) (*CreditCard, error) {
	if err := errors.Join(
		guard.NotBlank(number, "number"),
		guard.NotBlank(cardType, "card type"),
		guard.NotZeroTime(validThru, "valid thru"),
	); err != nil {
		return nil, err
	}

	card := &CreditCard{
		paymentMean: newPaymentMean(),
		number:      number,
		cardType:    cardType,
		validThru:   kernel.DateOf(validThru),
		clock:       kernel.SystemClock{},
	}
	for _, opt := range opts {
		opt(card)
	}
	return card, nil
}

func (c *CreditCard) Validate() error {
	if c == nil {
		return ErrCreditCardIsNotConstructed
	}
	return c.guard.Validate(ErrCreditCardIsNotConstructed)
}

func (c *CreditCard) Number() string { return c.number }
func (c *CreditCard) CardType() string { return c.cardType }
func (c *CreditCard) ValidThru() time.Time { return c.validThru }

// IsExpired reports whether the expiry date lies before today.
func (c *CreditCard) IsExpired() bool {
	return c.validThru.Before(kernel.DateOf(c.clock.Now()))
}

func (c *CreditCard) CanPay(decimal.Decimal) bool {
	return !c.IsExpired()
}

func (c *CreditCard) kind() string { return "credit card" }
