package workshop

import (
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
	"workshop/internal/pkg/relation"

	"github.com/shopspring/decimal"
)

var ErrInterventionIsNotConstructed = errors.New("Intervention must be created via NewIntervention constructor")

// Intervention records the minutes a mechanic spent on a work order at a
// given moment, plus the spare parts consumed. It is identified by date,
// mechanic and work order, all fixed at creation.
type Intervention struct {
	key     InterventionKey
	date    time.Time
	minutes int

	workOrder     *WorkOrder
	mechanic      *Mechanic
	substitutions relation.Set[SubstitutionKey, *Substitution]

	guard guard.ConstructorGuard
}

// NewIntervention adds an intervention to workOrder. The work order must be
// OPEN or ASSIGNED.
func NewIntervention(mechanic *Mechanic, workOrder *WorkOrder, date time.Time, minutes int) (*Intervention, error) {
	if err := errors.Join(
		guard.NotNil(mechanic, "mechanic"),
		guard.NotNil(workOrder, "work order"),
		guard.NotZeroTime(date, "date"),
		guard.NotNegative(minutes, "minutes"),
	); err != nil {
		return nil, err
	}
	if !workOrder.status.AcceptsLedgerChanges() {
		return nil, errs.NewStateConflictError("work order", workOrder.status.String(), "add an intervention to")
	}

	date = kernel.TruncateToMillis(date)
	i := &Intervention{
		key: InterventionKey{
			WorkOrder: workOrder.Key(),
			Mechanic:  mechanic.nif,
			At:        date.UnixMilli(),
		},
		date:    date,
		minutes: minutes,
		guard:   guard.NewConstructorGuard(),
	}
	if _, exists := workOrder.interventions.Find(i.key); exists {
		return nil, errs.NewValueIsInvalidErrorWithCause("date",
			fmt.Errorf("mechanic %s already has an intervention on this work order at %s",
				mechanic.nif, date.Format(time.RFC3339Nano)))
	}

	linkIntervenes(workOrder, i, mechanic)
	return i, nil
}

func (i *Intervention) Validate() error {
	if i == nil {
		return ErrInterventionIsNotConstructed
	}
	return i.guard.Validate(ErrInterventionIsNotConstructed)
}

func (i *Intervention) Key() InterventionKey { return i.key }

func (i *Intervention) IsEqual(other *Intervention) bool {
	return other != nil && i.key == other.key
}

func (i *Intervention) Date() time.Time { return i.date }
func (i *Intervention) Minutes() int { return i.minutes }

// WorkOrder returns the owning work order, or nil once unlinked.
func (i *Intervention) WorkOrder() *WorkOrder { return i.workOrder }

// Mechanic returns the mechanic who performed it, or nil once unlinked.
func (i *Intervention) Mechanic() *Mechanic { return i.mechanic }

func (i *Intervention) Substitutions() []*Substitution {
	return i.substitutions.Snapshot()
}

// Amount is the labor at the work order's vehicle type rate plus the parts
// consumed. Labor counts as zero when the rate is unknown.
func (i *Intervention) Amount() decimal.Decimal {
	labor := decimal.Zero
	if i.workOrder != nil && i.workOrder.vehicle.vehicleType != nil {
		rate := i.workOrder.vehicle.vehicleType.pricePerHour
		labor = decimal.NewFromInt(int64(i.minutes)).Mul(rate).Div(minutesPerHour)
	}
	return labor.Add(i.partsAmount())
}

func (i *Intervention) partsAmount() decimal.Decimal {
	total := decimal.Zero
	for _, s := range i.substitutions.Snapshot() {
		total = total.Add(s.Amount())
	}
	return total
}
