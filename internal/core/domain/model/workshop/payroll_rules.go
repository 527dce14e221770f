package workshop

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// TaxBracket applies Rate to annual salaries up to and including UpTo. A
// zero UpTo marks the open-ended top bracket.
type TaxBracket struct {
	UpTo decimal.Decimal
	Rate decimal.Decimal
}

// TaxBrackets selects the income tax rate of a payroll from the annual base
// salary of its contract.
type TaxBrackets struct {
	brackets []TaxBracket
}

var defaultTaxBrackets = []TaxBracket{
	{UpTo: decimal.NewFromInt(12450), Rate: decimal.RequireFromString("0.19")},
	{UpTo: decimal.NewFromInt(20200), Rate: decimal.RequireFromString("0.24")},
	{UpTo: decimal.NewFromInt(35200), Rate: decimal.RequireFromString("0.30")},
	{UpTo: decimal.NewFromInt(60000), Rate: decimal.RequireFromString("0.37")},
	{UpTo: decimal.NewFromInt(300000), Rate: decimal.RequireFromString("0.45")},
	{Rate: decimal.RequireFromString("0.47")},
}

func DefaultTaxBrackets() TaxBrackets {
	return TaxBrackets{brackets: slices.Clone(defaultTaxBrackets)}
}

// NewTaxBrackets sorts brackets by upper bound. Exactly one bracket must be
// open-ended and the upper bounds must be distinct.
func NewTaxBrackets(brackets ...TaxBracket) (TaxBrackets, error) {
	if len(brackets) == 0 {
		return TaxBrackets{}, errs.NewValueIsRequiredError("tax brackets")
	}

	sorted := slices.Clone(brackets)
	openEnded := 0
	for _, b := range sorted {
		if err := validateRate(b.Rate, "tax rate"); err != nil {
			return TaxBrackets{}, err
		}
		if b.UpTo.IsNegative() {
			return TaxBrackets{}, errs.NewValueIsInvalidErrorWithCause("tax brackets",
				fmt.Errorf("upper bound %s is negative", b.UpTo))
		}
		if b.UpTo.IsZero() {
			openEnded++
		}
	}
	if openEnded != 1 {
		return TaxBrackets{}, errs.NewValueIsInvalidErrorWithCause("tax brackets",
			fmt.Errorf("expected one open-ended bracket, got %d", openEnded))
	}

	slices.SortFunc(sorted, func(a, b TaxBracket) int {
		switch {
		case a.UpTo.IsZero():
			return 1
		case b.UpTo.IsZero():
			return -1
		}
		return a.UpTo.Cmp(b.UpTo)
	})
	for i := 1; i < len(sorted)-1; i++ {
		if sorted[i].UpTo.Equal(sorted[i-1].UpTo) {
			return TaxBrackets{}, errs.NewValueIsInvalidErrorWithCause("tax brackets",
				fmt.Errorf("upper bound %s appears twice", sorted[i].UpTo))
		}
	}
	return TaxBrackets{brackets: sorted}, nil
}

// RateFor returns the rate of the first bracket whose upper bound is not
// below annualSalary.
func (t TaxBrackets) RateFor(annualSalary decimal.Decimal) decimal.Decimal {
	brackets := t.brackets
	if len(brackets) == 0 {
		brackets = defaultTaxBrackets
	}
	for _, b := range brackets {
		if b.UpTo.IsZero() || annualSalary.LessThanOrEqual(b.UpTo) {
			return b.Rate
		}
	}
	return brackets[len(brackets)-1].Rate
}

func (t TaxBrackets) Brackets() []TaxBracket {
	if len(t.brackets) == 0 {
		return slices.Clone(defaultTaxBrackets)
	}
	return slices.Clone(t.brackets)
}

// PayrollRules are the statutory parameters of payroll computation.
type PayrollRules struct {
	PaymentsPerYear    int
	ExtraPaymentMonths []time.Month
	SocialSecurityRate decimal.Decimal
	TaxBrackets        TaxBrackets
}

// DefaultPayrollRules pays fourteen installments a year, the extra two in
// June and December, and deducts 5% social security.
func DefaultPayrollRules() PayrollRules {
	return PayrollRules{
		PaymentsPerYear:    14,
		ExtraPaymentMonths: []time.Month{time.June, time.December},
		SocialSecurityRate: decimal.RequireFromString("0.05"),
		TaxBrackets:        DefaultTaxBrackets(),
	}
}

func (r PayrollRules) Validate() error {
	var monthErrs []error
	for _, m := range r.ExtraPaymentMonths {
		if m < time.January || m > time.December {
			monthErrs = append(monthErrs, errs.NewValueIsOutOfRangeError("extra payment month", int(m), 1, 12))
		}
	}
	if 12+len(r.ExtraPaymentMonths) != r.PaymentsPerYear {
		monthErrs = append(monthErrs, errs.NewValueIsInvalidErrorWithCause("payments per year",
			fmt.Errorf("%d does not match 12 monthly payments plus %d extra", r.PaymentsPerYear, len(r.ExtraPaymentMonths))))
	}
	return errors.Join(
		errors.Join(monthErrs...),
		validateRate(r.SocialSecurityRate, "social security rate"),
	)
}

func (r PayrollRules) isExtraPaymentMonth(month time.Month) bool {
	return slices.Contains(r.ExtraPaymentMonths, month)
}
