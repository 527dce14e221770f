package workshop

import (
	"errors"
	"fmt"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
	"workshop/internal/pkg/relation"

	"github.com/shopspring/decimal"
)

var ErrSparePartIsNotConstructed = errors.New("SparePart must be created via NewSparePart constructor")

// SparePart is a catalogue item identified by code.
type SparePart struct {
	code        string
	description string
	price       decimal.Decimal
	stock       int
	minStock    int
	maxStock    int

	substitutions relation.Set[SubstitutionKey, *Substitution]

	guard guard.ConstructorGuard
}

// SparePartOption sets optional stock bounds.
type SparePartOption func(*SparePart)

// WithStock sets current stock and its bounds. All must be non-negative and
// minStock may not exceed maxStock.
func WithStock(stock, minStock, maxStock int) SparePartOption {
	return func(p *SparePart) {
		p.stock = stock
		p.minStock = minStock
		p.maxStock = maxStock
	}
}

func NewSparePart(code, description string, price decimal.Decimal, opts ...SparePartOption) (*SparePart, error) {
	p := &SparePart{
		code:        code,
		description: description,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := errors.Join(
		guard.NotBlank(code, "code"),
		guard.NotBlank(description, "description"),
		guard.NotNegativeAmount(price, "price"),
		guard.NotNegative(p.stock, "stock"),
		guard.NotNegative(p.minStock, "min stock"),
		guard.NotNegative(p.maxStock, "max stock"),
		p.validateBounds(),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *SparePart) validateBounds() error {
	if p.minStock > p.maxStock {
		return errs.NewValueIsOutOfRangeError("min stock", p.minStock, 0, p.maxStock)
	}
	return nil
}

func (p *SparePart) Validate() error {
	if p == nil {
		return ErrSparePartIsNotConstructed
	}
	return p.guard.Validate(ErrSparePartIsNotConstructed)
}

func (p *SparePart) Key() string { return p.code }

func (p *SparePart) IsEqual(other *SparePart) bool {
	return other != nil && p.code == other.code
}

func (p *SparePart) Code() string { return p.code }
func (p *SparePart) Description() string { return p.description }
func (p *SparePart) Price() decimal.Decimal { return p.price }
func (p *SparePart) Stock() int { return p.stock }
func (p *SparePart) MinStock() int { return p.minStock }
func (p *SparePart) MaxStock() int { return p.maxStock }

func (p *SparePart) Substitutions() []*Substitution {
	return p.substitutions.Snapshot()
}

func (p *SparePart) String() string {
	return fmt.Sprintf("SparePart{code=%s, price=%s}", p.code, p.price)
}
