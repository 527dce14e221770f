package workshop

import (
	"errors"
	"fmt"

	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSubstitutionIsNotConstructed = errors.New("Substitution must be created via NewSubstitution constructor")

// Substitution is the consumption of a quantity of one spare part within one
// intervention. There is at most one per (intervention, spare part).
type Substitution struct {
	key      SubstitutionKey
	quantity int

	sparePart    *SparePart
	intervention *Intervention

	guard guard.ConstructorGuard
}

// NewSubstitution records quantity units of sparePart used in intervention.
// The intervention must belong to a work order that is OPEN or ASSIGNED.
func NewSubstitution(sparePart *SparePart, intervention *Intervention, quantity int) (*Substitution, error) {
	if err := errors.Join(
		guard.NotNil(sparePart, "spare part"),
		guard.NotNil(intervention, "intervention"),
		guard.Positive(quantity, "quantity"),
	); err != nil {
		return nil, err
	}
	if intervention.workOrder == nil {
		return nil, errs.NewStateConflictErrorWithCause("intervention", "UNLINKED", "add a substitution to",
			errors.New("intervention no longer belongs to a work order"))
	}
	if status := intervention.workOrder.status; !status.AcceptsLedgerChanges() {
		return nil, errs.NewStateConflictError("work order", status.String(), "add a substitution to")
	}

	s := &Substitution{
		key:      SubstitutionKey{Intervention: intervention.key, SparePart: sparePart.code},
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}
	if _, exists := intervention.substitutions.Find(s.key); exists {
		return nil, errs.NewValueIsInvalidErrorWithCause("spare part",
			fmt.Errorf("intervention already substitutes %s", sparePart.code))
	}

	linkSubstitutes(sparePart, s, intervention)
	return s, nil
}

func (s *Substitution) Validate() error {
	if s == nil {
		return ErrSubstitutionIsNotConstructed
	}
	return s.guard.Validate(ErrSubstitutionIsNotConstructed)
}

func (s *Substitution) Key() SubstitutionKey { return s.key }

func (s *Substitution) IsEqual(other *Substitution) bool {
	return other != nil && s.key == other.key
}

func (s *Substitution) Quantity() int { return s.quantity }

// SparePart returns the consumed part, or nil once unlinked.
func (s *Substitution) SparePart() *SparePart { return s.sparePart }

// Intervention returns the owning intervention, or nil once unlinked.
func (s *Substitution) Intervention() *Intervention { return s.intervention }

// Amount is quantity times the spare part's unit price, zero once unlinked.
func (s *Substitution) Amount() decimal.Decimal {
	if s.sparePart == nil {
		return decimal.Zero
	}
	return s.sparePart.price.Mul(decimal.NewFromInt(int64(s.quantity)))
}
