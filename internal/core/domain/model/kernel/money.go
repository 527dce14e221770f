package kernel

import "github.com/shopspring/decimal"

// Cents rounds an amount half-up to two decimal places.
func Cents(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// Sum adds amounts, returning zero for none.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
