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

var ErrContractIsNotConstructed = errors.New("Contract must be created via NewContract constructor")

var daysPerYear = decimal.NewFromInt(365)

// Contract is the employment of a mechanic under a contract type and a
// professional group.
//
// Dates are normalized: the start date is the first day of the signing month
// and an end date, when present, is the last day of its month. Only
// fixed-term contracts carry an end date from the start; any contract gets
// one when terminated.
//
// Terminating a contract computes its settlement:
//
//	years      = full months from start to end / 12
//	settlement = cents(years × annual salary / 365 × compensation days per year)
type Contract struct {
	id               kernel.UUID
	signingDate      time.Time
	startDate        time.Time
	endDate          time.Time
	annualBaseSalary decimal.Decimal
	settlement       decimal.Decimal
	status           ContractStatus

	mechanic          *Mechanic
	contractType      *ContractType
	professionalGroup *ProfessionalGroup
	payrolls          relation.Set[PayrollKey, *Payroll]

	guard guard.ConstructorGuard
}

// ContractOption customizes a new Contract.
type ContractOption func(*contractOptions)

type contractOptions struct {
	endDate time.Time
}

// WithEndDate sets the end date of a fixed-term contract. It is ignored for
// open-ended contract types.
func WithEndDate(endDate time.Time) ContractOption {
	return func(o *contractOptions) {
		o.endDate = endDate
	}
}

// NewContract hires mechanic. If the mechanic already has a contract in
// force, that contract is terminated the day before the new one starts, or
// at its own end date if that comes first, but never before its start date.
func NewContract(
	mechanic *Mechanic,
	contractType *ContractType,
	group *ProfessionalGroup,
	signingDate time.Time,
	annualBaseSalary decimal.Decimal,
	opts ...ContractOption,
) (*Contract, error) {
	var options contractOptions
	for _, opt := range opts {
		opt(&options)
	}

	if err := errors.Join(
		guard.NotNil(mechanic, "mechanic"),
		guard.NotNil(contractType, "contract type"),
		guard.NotNil(group, "professional group"),
		guard.NotZeroTime(signingDate, "signing date"),
		guard.NotNegativeAmount(annualBaseSalary, "annual base salary"),
	); err != nil {
		return nil, err
	}

	c := &Contract{
		id:               kernel.NewUUID(),
		signingDate:      kernel.DateOf(signingDate),
		startDate:        kernel.FirstDayOfMonth(signingDate),
		annualBaseSalary: annualBaseSalary,
		settlement:       decimal.Zero,
		status:           ContractInForce,
		guard:            guard.NewConstructorGuard(),
	}
	if contractType.fixedTerm {
		if err := c.setFixedTermEndDate(options.endDate); err != nil {
			return nil, err
		}
	}

	if previous, ok := mechanic.ContractInForce(); ok {
		end := c.startDate.AddDate(0, 0, -1)
		if prevEnd, ok := previous.EndDate(); ok && prevEnd.Before(end) {
			end = prevEnd
		}
		if end.Before(previous.startDate) {
			end = previous.startDate
		}
		if err := previous.Terminate(end); err != nil {
			return nil, fmt.Errorf("terminate previous contract: %w", err)
		}
	}

	linkHires(mechanic, c, contractType, group)
	return c, nil
}

func (c *Contract) setFixedTermEndDate(endDate time.Time) error {
	if endDate.IsZero() {
		return errs.NewValueIsRequiredErrorWithCause("end date", errors.New("fixed-term contracts need an end date"))
	}
	if kernel.DateOf(endDate).Before(c.signingDate) {
		return errs.NewValueIsInvalidErrorWithCause("end date",
			fmt.Errorf("%s precedes the signing date %s", endDate.Format(time.DateOnly), c.signingDate.Format(time.DateOnly)))
	}
	c.endDate = kernel.LastDayOfMonth(endDate)
	return nil
}

func (c *Contract) Validate() error {
	if c == nil {
		return ErrContractIsNotConstructed
	}
	return c.guard.Validate(ErrContractIsNotConstructed)
}

func (c *Contract) Key() kernel.UUID { return c.id }

func (c *Contract) IsEqual(other *Contract) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Contract) ID() kernel.UUID { return c.id }
func (c *Contract) SigningDate() time.Time { return c.signingDate }
func (c *Contract) StartDate() time.Time { return c.startDate }
func (c *Contract) AnnualBaseSalary() decimal.Decimal { return c.annualBaseSalary }
func (c *Contract) Settlement() decimal.Decimal { return c.settlement }
func (c *Contract) Status() ContractStatus { return c.status }
func (c *Contract) Mechanic() *Mechanic { return c.mechanic }
func (c *Contract) ContractType() *ContractType { return c.contractType }
func (c *Contract) ProfessionalGroup() *ProfessionalGroup { return c.professionalGroup }
func (c *Contract) IsInForce() bool { return c.status == ContractInForce }

// EndDate returns the end date and whether the contract has one.
func (c *Contract) EndDate() (time.Time, bool) {
	return c.endDate, !c.endDate.IsZero()
}

// Payrolls returns the payroll history in creation order.
func (c *Contract) Payrolls() []*Payroll {
	return c.payrolls.Snapshot()
}

// Covers reports whether date falls between the start date and, if set, the
// end date.
func (c *Contract) Covers(date time.Time) bool {
	day := kernel.DateOf(date)
	if day.Before(c.startDate) {
		return false
	}
	return c.endDate.IsZero() || !day.After(c.endDate)
}

// ServiceYearsAt counts the full years of service from the start date to date.
func (c *Contract) ServiceYearsAt(date time.Time) int {
	return max(kernel.YearsBetween(c.startDate, kernel.DateOf(date)), 0)
}

// Terminate ends the contract at the last day of date's month and computes
// the settlement. Only full years of service are compensated.
func (c *Contract) Terminate(date time.Time) error {
	if err := guard.NotZeroTime(date, "termination date"); err != nil {
		return err
	}
	if kernel.DateOf(date).Before(c.startDate) {
		return errs.NewValueIsInvalidErrorWithCause("termination date",
			fmt.Errorf("%s precedes the start date %s", date.Format(time.DateOnly), c.startDate.Format(time.DateOnly)))
	}
	next, err := c.status.Terminate()
	if err != nil {
		return err
	}

	end := kernel.LastDayOfMonth(date)
	years := kernel.MonthsBetween(c.startDate, end.AddDate(0, 0, 1)) / 12
	c.settlement = kernel.Cents(decimal.NewFromInt(int64(years)).
		Mul(c.annualBaseSalary).
		Mul(c.contractType.compensationDaysPerYear).
		Div(daysPerYear))
	c.endDate = end
	c.status = next
	return nil
}

func (c *Contract) String() string {
	return fmt.Sprintf("Contract{mechanic=%s, start=%s, status=%s}",
		c.mechanic.nif, c.startDate.Format(time.DateOnly), c.status)
}
