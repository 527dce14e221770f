// Package queries contains the read side: handlers that read stored rows
// directly and return flat responses instead of domain entities.
package queries

import (
	"errors"
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetPayrollsQueryIsNotConstructed = errors.New(
		"GetPayrollsQuery must be created via NewGetPayrollsQuery constructor",
	)
	ErrNIFIsRequired    = errors.New("nif is required")
	ErrPeriodIsRequired = errors.New("from and to are required")
	ErrPeriodIsReversed = errors.New("from must not be after to")
)

// GetPayrollsQuery lists the stored payrolls of one mechanic between two
// months, both included.
//
// Example:
//
//	query, err := NewGetPayrollsQuery("12345678Z", from, to)
//	if err != nil {
//	    return fmt.Errorf("invalid payroll query: %w", err)
//	}
//	payrolls, err := handler.Handle(ctx, query)
type GetPayrollsQuery struct { //nolint:recvcheck //using for validation
	nif  string
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetPayrollsQuery accepts any day of the first and last months.
func NewGetPayrollsQuery(nif string, from, to time.Time) (GetPayrollsQuery, error) {
	query := GetPayrollsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setNIF(nif),
		query.setPeriod(from, to),
	); err != nil {
		return GetPayrollsQuery{}, err
	}

	return query, nil
}

func (q GetPayrollsQuery) Validate() error {
	return q.guard.Validate(ErrGetPayrollsQueryIsNotConstructed)
}

func (q GetPayrollsQuery) NIF() string {
	return q.nif
}

// From returns the first day of the first month.
func (q GetPayrollsQuery) From() time.Time {
	return q.from
}

// To returns the first day of the last month.
func (q GetPayrollsQuery) To() time.Time {
	return q.to
}

func (q *GetPayrollsQuery) setNIF(nif string) error {
	if strings.TrimSpace(nif) == "" {
		return ErrNIFIsRequired
	}

	q.nif = nif
	return nil
}

func (q *GetPayrollsQuery) setPeriod(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return ErrPeriodIsRequired
	}
	from, to = kernel.FirstDayOfMonth(from), kernel.FirstDayOfMonth(to)
	if from.After(to) {
		return ErrPeriodIsReversed
	}

	q.from = from
	q.to = to
	return nil
}

// GetPayrollsQueryResponse is one stored payroll.
type GetPayrollsQueryResponse struct {
	ID                  kernel.UUID
	ContractID          kernel.UUID
	PaidOn              time.Time
	MonthlyWage         decimal.Decimal
	ExtraWage           decimal.Decimal
	ProductivityEarning decimal.Decimal
	TrienniumEarning    decimal.Decimal
	IncomeTax           decimal.Decimal
	SocialSecurity      decimal.Decimal
}

func (r GetPayrollsQueryResponse) Gross() decimal.Decimal {
	return kernel.Sum(r.MonthlyWage, r.ExtraWage, r.ProductivityEarning, r.TrienniumEarning)
}

func (r GetPayrollsQueryResponse) Net() decimal.Decimal {
	return r.Gross().Sub(r.IncomeTax).Sub(r.SocialSecurity)
}
