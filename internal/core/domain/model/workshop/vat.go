package workshop

import (
	"fmt"
	"slices"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// VATRate is a VAT rate in force from a date on, until the next rate of the
// schedule takes over.
type VATRate struct {
	From time.Time
	Rate decimal.Decimal
}

// VATSchedule resolves the VAT rate in force on a given date. The zero value
// behaves as DefaultVATSchedule.
type VATSchedule struct {
	rates []VATRate
}

// DefaultVATSchedule charges 18% up to 30 June 2012 and 21% from 1 July 2012.
func DefaultVATSchedule() VATSchedule {
	return VATSchedule{rates: []VATRate{
		{From: time.Time{}, Rate: decimal.RequireFromString("0.18")},
		{From: kernel.Date(2012, time.July, 1), Rate: decimal.RequireFromString("0.21")},
	}}
}

// NewVATSchedule builds a schedule from rates in any order. Rates must lie in
// [0, 1] and start on distinct dates.
func NewVATSchedule(rates ...VATRate) (VATSchedule, error) {
	if len(rates) == 0 {
		return VATSchedule{}, errs.NewValueIsRequiredError("vat rates")
	}

	sorted := make([]VATRate, len(rates))
	for i, r := range rates {
		if err := validateRate(r.Rate, "vat rate"); err != nil {
			return VATSchedule{}, err
		}
		sorted[i] = VATRate{From: kernel.DateOf(r.From), Rate: r.Rate}
	}
	slices.SortFunc(sorted, func(a, b VATRate) int { return a.From.Compare(b.From) })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].From.Equal(sorted[i-1].From) {
			return VATSchedule{}, errs.NewValueIsInvalidErrorWithCause("vat rates",
				fmt.Errorf("two rates start on %s", sorted[i].From.Format(time.DateOnly)))
		}
	}

	return VATSchedule{rates: sorted}, nil
}

// RateOn returns the rate in force on date. Dates before the first entry get
// the first entry's rate.
func (s VATSchedule) RateOn(date time.Time) decimal.Decimal {
	rates := s.rates
	if len(rates) == 0 {
		rates = DefaultVATSchedule().rates
	}

	day := kernel.DateOf(date)
	rate := rates[0].Rate
	for _, r := range rates {
		if r.From.After(day) {
			break
		}
		rate = r.Rate
	}
	return rate
}

// Rates returns the schedule in chronological order.
func (s VATSchedule) Rates() []VATRate {
	if len(s.rates) == 0 {
		return DefaultVATSchedule().Rates()
	}
	return slices.Clone(s.rates)
}
