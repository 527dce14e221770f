package workshop

import (
	"errors"
	"fmt"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPayrollIsNotConstructed = errors.New("Payroll must be created via NewPayroll constructor")

var (
	monthsPerYear     = decimal.NewFromInt(12)
	yearsPerTriennium = 3
)

// Payroll is the pay slip of a contract for one calendar month. Every
// component is computed once, at construction, without rounding.
type Payroll struct {
	id                  kernel.UUID
	key                 PayrollKey
	date                time.Time
	monthlyWage         decimal.Decimal
	extraWage           decimal.Decimal
	productivityEarning decimal.Decimal
	trienniumEarning    decimal.Decimal
	incomeTax           decimal.Decimal
	socialSecurity      decimal.Decimal

	contract *Contract

	guard guard.ConstructorGuard
}

// PayrollOption customizes a new Payroll.
type PayrollOption func(*payrollOptions)

type payrollOptions struct {
	rules PayrollRules
}

func WithPayrollRules(rules PayrollRules) PayrollOption {
	return func(o *payrollOptions) {
		o.rules = rules
	}
}

// NewPayroll computes the payroll of contract for the month of date. The
// date must fall within the contract period and the contract cannot already
// have a payroll for that month.
func NewPayroll(contract *Contract, date time.Time, opts ...PayrollOption) (*Payroll, error) {
	options := payrollOptions{rules: DefaultPayrollRules()}
	for _, opt := range opts {
		opt(&options)
	}

	if err := errors.Join(
		guard.NotNil(contract, "contract"),
		guard.NotZeroTime(date, "date"),
	); err != nil {
		return nil, err
	}
	if err := options.rules.Validate(); err != nil {
		return nil, err
	}

	day := kernel.DateOf(date)
	if day.Before(contract.startDate) {
		return nil, errs.NewValueIsInvalidErrorWithCause("date",
			fmt.Errorf("%s precedes the contract start %s", day.Format(time.DateOnly), contract.startDate.Format(time.DateOnly)))
	}
	if end, ok := contract.EndDate(); ok && day.After(end) {
		return nil, errs.NewValueIsInvalidErrorWithCause("date",
			fmt.Errorf("%s is after the contract end %s", day.Format(time.DateOnly), end.Format(time.DateOnly)))
	}
	key := PayrollKey{Contract: contract.id, Year: day.Year(), Month: day.Month()}
	if _, exists := contract.payrolls.Find(key); exists {
		return nil, errs.NewStateConflictErrorWithCause("contract", contract.status.String(), "add a payroll to",
			fmt.Errorf("a payroll for %d-%02d already exists", key.Year, key.Month))
	}

	rules := options.rules
	monthly := contract.annualBaseSalary.Div(decimal.NewFromInt(int64(rules.PaymentsPerYear)))
	extra := decimal.Zero
	if rules.isExtraPaymentMonth(day.Month()) {
		extra = monthly
	}
	group := contract.professionalGroup
	productivity := group.productivityRate.Mul(invoicedWorkInMonth(contract.mechanic, day))
	triennia := contract.ServiceYearsAt(day) / yearsPerTriennium
	triennium := group.trienniumSalary.Mul(decimal.NewFromInt(int64(triennia)))

	p := &Payroll{
		id:                  kernel.NewUUID(),
		key:                 key,
		date:                day,
		monthlyWage:         monthly,
		extraWage:           extra,
		productivityEarning: productivity,
		trienniumEarning:    triennium,
		guard:               guard.NewConstructorGuard(),
	}
	p.incomeTax = rules.TaxBrackets.RateFor(contract.annualBaseSalary).Mul(p.Gross())
	p.socialSecurity = contract.annualBaseSalary.Div(monthsPerYear).Mul(rules.SocialSecurityRate)

	linkAccrues(contract, p)
	return p, nil
}

// invoicedWorkInMonth sums the amounts of the invoiced work orders the
// mechanic intervened in during the month of date. Each work order counts
// once.
func invoicedWorkInMonth(mechanic *Mechanic, date time.Time) decimal.Decimal {
	seen := make(map[WorkOrderKey]struct{})
	total := decimal.Zero
	for _, i := range mechanic.interventions.Snapshot() {
		wo := i.workOrder
		if wo == nil || !wo.IsInvoiced() || !kernel.SameMonth(i.date, date) {
			continue
		}
		if _, ok := seen[wo.Key()]; ok {
			continue
		}
		seen[wo.Key()] = struct{}{}
		total = total.Add(wo.amount)
	}
	return total
}

func (p *Payroll) Validate() error {
	if p == nil {
		return ErrPayrollIsNotConstructed
	}
	return p.guard.Validate(ErrPayrollIsNotConstructed)
}

func (p *Payroll) Key() PayrollKey { return p.key }

func (p *Payroll) ID() kernel.UUID { return p.id }
func (p *Payroll) Date() time.Time { return p.date }

// Contract returns the owning contract, or nil once unlinked.
func (p *Payroll) Contract() *Contract { return p.contract }
func (p *Payroll) MonthlyWage() decimal.Decimal { return p.monthlyWage }
func (p *Payroll) ExtraWage() decimal.Decimal { return p.extraWage }
func (p *Payroll) ProductivityEarning() decimal.Decimal { return p.productivityEarning }
func (p *Payroll) TrienniumEarning() decimal.Decimal { return p.trienniumEarning }
func (p *Payroll) IncomeTax() decimal.Decimal { return p.incomeTax }
func (p *Payroll) SocialSecurity() decimal.Decimal { return p.socialSecurity }

func (p *Payroll) Gross() decimal.Decimal {
	return kernel.Sum(p.monthlyWage, p.extraWage, p.productivityEarning, p.trienniumEarning)
}

func (p *Payroll) TotalDeductions() decimal.Decimal {
	return p.incomeTax.Add(p.socialSecurity)
}

func (p *Payroll) Net() decimal.Decimal {
	return p.Gross().Sub(p.TotalDeductions())
}

func (p *Payroll) String() string {
	return fmt.Sprintf("Payroll{date=%s, gross=%s, net=%s}", p.date.Format(time.DateOnly), p.Gross(), p.Net())
}
