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

var ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")

var minutesPerHour = decimal.NewFromInt(60)

// WorkOrder is a repair job on one vehicle. It is identified by the vehicle
// and its creation date, truncated to the millisecond.
//
// Invariants:
//   - the vehicle is fixed at creation
//   - a mechanic is linked only while the order is ASSIGNED
//   - an invoice is linked only while the order is INVOICED
//   - the amount is zero until the order is FINISHED, and is then the labor of
//     every intervention at the vehicle type's hourly rate plus the parts
//     they consumed
type WorkOrder struct {
	id          kernel.UUID
	date        time.Time
	description string
	amount      decimal.Decimal
	status      WorkOrderStatus

	vehicle       *Vehicle
	mechanic      *Mechanic
	invoice       *Invoice
	interventions relation.Set[InterventionKey, *Intervention]

	guard guard.ConstructorGuard
}

// NewWorkOrder opens a work order on vehicle dated at date.
//
// A vehicle cannot have two work orders with the same millisecond timestamp;
// the second one is rejected as an invalid argument.
func NewWorkOrder(vehicle *Vehicle, date time.Time, description string) (*WorkOrder, error) {
	if err := errors.Join(
		guard.NotNil(vehicle, "vehicle"),
		guard.NotZeroTime(date, "date"),
		guard.NotBlank(description, "description"),
	); err != nil {
		return nil, err
	}

	wo := &WorkOrder{
		id:          kernel.NewUUID(),
		date:        kernel.TruncateToMillis(date),
		description: description,
		amount:      decimal.Zero,
		status:      WorkOrderOpen,
		guard:       guard.NewConstructorGuard(),
	}
	key := WorkOrderKey{Vehicle: vehicle.Key(), At: wo.date.UnixMilli()}
	if _, exists := vehicle.workOrders.Find(key); exists {
		return nil, errs.NewValueIsInvalidErrorWithCause("date",
			fmt.Errorf("vehicle %s already has a work order at %s", vehicle.plateNumber, wo.date.Format(time.RFC3339Nano)))
	}

	linkFixes(vehicle, wo)
	return wo, nil
}

func (w *WorkOrder) Validate() error {
	if w == nil {
		return ErrWorkOrderIsNotConstructed
	}
	return w.guard.Validate(ErrWorkOrderIsNotConstructed)
}

func (w *WorkOrder) Key() WorkOrderKey {
	return WorkOrderKey{Vehicle: w.vehicle.Key(), At: w.date.UnixMilli()}
}

func (w *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && w.Key() == other.Key()
}

// ID is the surrogate identity used by repositories.
func (w *WorkOrder) ID() kernel.UUID { return w.id }
func (w *WorkOrder) Date() time.Time { return w.date }
func (w *WorkOrder) Description() string { return w.description }
func (w *WorkOrder) Amount() decimal.Decimal { return w.amount }
func (w *WorkOrder) Status() WorkOrderStatus { return w.status }
func (w *WorkOrder) Vehicle() *Vehicle { return w.vehicle }
func (w *WorkOrder) Mechanic() *Mechanic { return w.mechanic }
func (w *WorkOrder) Invoice() *Invoice { return w.invoice }
func (w *WorkOrder) IsOpen() bool { return w.status == WorkOrderOpen }
func (w *WorkOrder) IsAssigned() bool { return w.status == WorkOrderAssigned }
func (w *WorkOrder) IsFinished() bool { return w.status == WorkOrderFinished }
func (w *WorkOrder) IsInvoiced() bool { return w.status == WorkOrderInvoiced }

func (w *WorkOrder) Interventions() []*Intervention {
	return w.interventions.Snapshot()
}

// AssignTo moves an OPEN order to ASSIGNED and links it to mechanic.
func (w *WorkOrder) AssignTo(mechanic *Mechanic) error {
	if err := guard.NotNil(mechanic, "mechanic"); err != nil {
		return err
	}

	next, err := w.status.Assign()
	if err != nil {
		return err
	}

	linkAssigns(mechanic, w)
	w.status = next
	return nil
}

// Unassign moves an ASSIGNED order back to OPEN and releases its mechanic.
func (w *WorkOrder) Unassign() error {
	next, err := w.status.Unassign()
	if err != nil {
		return err
	}

	unlinkAssigns(w)
	w.status = next
	return nil
}

// MarkAsFinished moves an ASSIGNED order to FINISHED, releases the mechanic
// and computes the amount. The vehicle must be classified by a vehicle type.
func (w *WorkOrder) MarkAsFinished() error {
	next, err := w.status.Finish()
	if err != nil {
		return err
	}
	if w.vehicle.vehicleType == nil {
		return errs.NewStateConflictErrorWithCause("work order", w.status.String(), "finish",
			fmt.Errorf("vehicle %s has no vehicle type", w.vehicle.plateNumber))
	}

	amount := w.computeAmount()
	unlinkAssigns(w)
	w.amount = amount
	w.status = next
	return nil
}

// Reopen moves a FINISHED order back to OPEN so that it can take more work.
// The amount is cleared and recomputed on the next MarkAsFinished.
func (w *WorkOrder) Reopen() error {
	next, err := w.status.Reopen()
	if err != nil {
		return err
	}

	w.amount = decimal.Zero
	w.status = next
	return nil
}

// MarkAsInvoiced moves a FINISHED order to INVOICED. The order must already
// be linked to an invoice; Invoice.AddWorkOrder does both.
func (w *WorkOrder) MarkAsInvoiced() error {
	next, err := w.status.Invoice()
	if err != nil {
		return err
	}
	if w.invoice == nil {
		return errs.NewStateConflictErrorWithCause("work order", w.status.String(), "invoice",
			errors.New("work order is not linked to an invoice"))
	}

	w.status = next
	return nil
}

// MarkBackToFinished moves an INVOICED order back to FINISHED, as done by
// Invoice.RemoveWorkOrder.
func (w *WorkOrder) MarkBackToFinished() error {
	next, err := w.status.BackToFinished()
	if err != nil {
		return err
	}

	w.status = next
	return nil
}

func (w *WorkOrder) computeAmount() decimal.Decimal {
	total := decimal.Zero
	for _, i := range w.interventions.Snapshot() {
		total = total.Add(i.Amount())
	}
	return kernel.Cents(total)
}

func (w *WorkOrder) String() string {
	return fmt.Sprintf("WorkOrder{vehicle=%s, date=%s, status=%s, amount=%s}",
		w.vehicle.plateNumber, w.date.Format(time.RFC3339), w.status, w.amount)
}
