package workshop

import (
	"errors"

	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCashIsNotConstructed = errors.New("Cash must be created via NewCash constructor")

// Cash pays any amount.
type Cash struct {
	paymentMean
}

// NewCash creates the cash payment mean of client and links it to them.
func NewCash(client *Client) (*Cash, error) {
	if err := guard.NotNil(client, "client"); err != nil {
		return nil, err
	}

	cash := &Cash{paymentMean: newPaymentMean()}
	if err := LinkHolds(client, cash); err != nil {
		return nil, err
	}
	return cash, nil
}

func (c *Cash) Validate() error {
	if c == nil {
		return ErrCashIsNotConstructed
	}
	return c.guard.Validate(ErrCashIsNotConstructed)
}

func (c *Cash) CanPay(decimal.Decimal) bool { return true }

func (c *Cash) kind() string { return "cash" }
