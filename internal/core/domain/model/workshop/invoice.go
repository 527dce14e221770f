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

var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// Invoice bills finished work orders and is settled by charges against
// payment means. It is identified by its number.
//
// Totals are never cached independently of the graph: every change of the
// billed work orders recomputes them from the orders still linked.
//
//	vat    = cents(sum(work order amounts) × rate on the invoice date)
//	amount = cents(sum(work order amounts)) + vat
type Invoice struct {
	number int64
	date   time.Time
	amount decimal.Decimal
	vat    decimal.Decimal
	status InvoiceStatus

	vatSchedule VATSchedule

	workOrders relation.Set[WorkOrderKey, *WorkOrder]
	charges    relation.Set[kernel.UUID, *Charge]

	guard guard.ConstructorGuard
}

// InvoiceOption customizes a new Invoice.
type InvoiceOption func(*Invoice)

// WithVATSchedule replaces the default VAT schedule.
func WithVATSchedule(schedule VATSchedule) InvoiceOption {
	return func(i *Invoice) {
		i.vatSchedule = schedule
	}
}

// NewInvoice creates an unpaid invoice and bills workOrders, which may be
// empty. Every work order must be FINISHED; they are all checked before the
// first one is billed.
func NewInvoice(number int64, date time.Time, workOrders []*WorkOrder, opts ...InvoiceOption) (*Invoice, error) {
	if err := errors.Join(
		guard.NotNegative(number, "number"),
		guard.NotZeroTime(date, "date"),
	); err != nil {
		return nil, err
	}

	seen := make(map[WorkOrderKey]struct{}, len(workOrders))
	for _, wo := range workOrders {
		if err := validateBillable(wo); err != nil {
			return nil, err
		}
		if _, dup := seen[wo.Key()]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause("work orders", fmt.Errorf("%s is listed twice", wo))
		}
		seen[wo.Key()] = struct{}{}
	}

	invoice := &Invoice{
		number:      number,
		date:        kernel.DateOf(date),
		amount:      decimal.Zero,
		vat:         decimal.Zero,
		status:      InvoiceNotYetPaid,
		vatSchedule: DefaultVATSchedule(),
		guard:       guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(invoice)
	}

	for n, wo := range workOrders {
		if err := invoice.bill(wo); err != nil {
			errList := []error{err}
			for _, billed := range workOrders[:n] {
				unlinkBills(invoice, billed)
				errList = append(errList, billed.MarkBackToFinished())
			}
			return nil, errors.Join(errList...)
		}
	}
	invoice.recompute()
	return invoice, nil
}

func (i *Invoice) Validate() error {
	if i == nil {
		return ErrInvoiceIsNotConstructed
	}
	return i.guard.Validate(ErrInvoiceIsNotConstructed)
}

func (i *Invoice) Key() int64 { return i.number }

func (i *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && i.number == other.number
}

func (i *Invoice) Number() int64 { return i.number }
func (i *Invoice) Date() time.Time { return i.date }
func (i *Invoice) Amount() decimal.Decimal { return i.amount }
func (i *Invoice) VAT() decimal.Decimal { return i.vat }
func (i *Invoice) Status() InvoiceStatus { return i.status }
func (i *Invoice) IsSettled() bool { return i.status == InvoicePaid }

// VATRate returns the rate applied to this invoice.
func (i *Invoice) VATRate() decimal.Decimal {
	return i.vatSchedule.RateOn(i.date)
}

func (i *Invoice) WorkOrders() []*WorkOrder {
	return i.workOrders.Snapshot()
}

func (i *Invoice) Charges() []*Charge {
	return i.charges.Snapshot()
}

// ChargedAmount is the sum of the charges currently linked.
func (i *Invoice) ChargedAmount() decimal.Decimal {
	total := decimal.Zero
	for _, c := range i.charges.Snapshot() {
		total = total.Add(c.amount)
	}
	return total
}

// AddWorkOrder bills a FINISHED work order and moves it to INVOICED.
func (i *Invoice) AddWorkOrder(wo *WorkOrder) error {
	if err := guard.NotNil(wo, "work order"); err != nil {
		return err
	}
	if err := i.status.ValidateChange("add a work order to"); err != nil {
		return err
	}
	if err := validateBillable(wo); err != nil {
		return err
	}

	if err := i.bill(wo); err != nil {
		return err
	}
	i.recompute()
	return nil
}

// RemoveWorkOrder takes a work order off an unpaid invoice and moves it back
// to FINISHED.
func (i *Invoice) RemoveWorkOrder(wo *WorkOrder) error {
	if err := guard.NotNil(wo, "work order"); err != nil {
		return err
	}
	if wo.invoice != i || !i.workOrders.Contains(wo) {
		return errs.NewValueIsInvalidErrorWithCause("work order",
			fmt.Errorf("%s is not billed by invoice %d", wo, i.number))
	}
	if err := i.status.ValidateChange("remove a work order from"); err != nil {
		return err
	}

	if err := wo.MarkBackToFinished(); err != nil {
		return err
	}
	unlinkBills(i, wo)
	i.recompute()
	return nil
}

// Settle marks the invoice PAID once its charges cover the amount.
func (i *Invoice) Settle() error {
	next, err := i.status.Settle()
	if err != nil {
		return err
	}
	if charged := i.ChargedAmount(); charged.LessThan(i.amount) {
		return errs.NewStateConflictErrorWithCause("invoice", i.status.String(), "settle",
			fmt.Errorf("charges of %s do not cover %s", charged.StringFixed(2), i.amount.StringFixed(2)))
	}

	i.status = next
	return nil
}

// bill links wo and moves it to INVOICED. The link is undone if the
// transition fails.
func (i *Invoice) bill(wo *WorkOrder) error {
	linkBills(i, wo)
	if err := wo.MarkAsInvoiced(); err != nil {
		unlinkBills(i, wo)
		return fmt.Errorf("bill %s: %w", wo, err)
	}
	return nil
}

func (i *Invoice) recompute() {
	preTax := decimal.Zero
	for _, wo := range i.workOrders.Snapshot() {
		preTax = preTax.Add(wo.amount)
	}
	i.vat = kernel.Cents(preTax.Mul(i.VATRate()))
	i.amount = kernel.Cents(preTax).Add(i.vat)
}

func validateBillable(wo *WorkOrder) error {
	if wo == nil {
		return errs.NewValueIsRequiredError("work order")
	}
	if wo.status != WorkOrderFinished {
		return errs.NewStateConflictError("work order", wo.status.String(), "invoice")
	}
	return nil
}

func (i *Invoice) String() string {
	return fmt.Sprintf("Invoice{number=%d, date=%s, amount=%s, status=%s}",
		i.number, i.date.Format(time.DateOnly), i.amount.StringFixed(2), i.status)
}
