package services

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"
)

// PaidCheck reports whether contract already has a payroll for the month of
// period outside the entity graph, typically in storage.
type PaidCheck func(contract *workshop.Contract, period time.Time) (bool, error)

// PayrollGenerator produces the payrolls of a month.
//
// Business rules:
//   - each payroll is dated the last day of the month
//   - a mechanic gets at most one payroll per month, from the latest contract
//     covering that day
//   - contracts that already have a payroll for the month, in the graph or
//     according to the PaidCheck, are skipped
//
// Example usage:
//
//	generator, _ := NewPayrollGenerator(workshop.DefaultPayrollRules())
//	payrolls, err := generator.Generate(mechanics, kernel.Date(2024, time.March, 1), nil)
type PayrollGenerator struct {
	rules workshop.PayrollRules
}

func NewPayrollGenerator(rules workshop.PayrollRules) (PayrollGenerator, error) {
	if err := rules.Validate(); err != nil {
		return PayrollGenerator{}, err
	}
	return PayrollGenerator{rules: rules}, nil
}

// Generate creates the payrolls of the month containing period. Eligibility
// is decided for every mechanic before the first payroll is created; if a
// payroll cannot be created, the ones already created are unlinked again.
func (g PayrollGenerator) Generate(
	mechanics []*workshop.Mechanic,
	period time.Time,
	paid PaidCheck,
) ([]*workshop.Payroll, error) {
	payday := kernel.LastDayOfMonth(period)

	contracts := make([]*workshop.Contract, 0, len(mechanics))
	for _, m := range mechanics {
		if err := m.Validate(); err != nil {
			return nil, err
		}

		contract, ok := g.payableContract(m, payday)
		if !ok {
			continue
		}
		if paid != nil {
			done, err := paid(contract, payday)
			if err != nil {
				return nil, err
			}
			if done {
				continue
			}
		}
		contracts = append(contracts, contract)
	}

	payrolls := make([]*workshop.Payroll, 0, len(contracts))
	for _, c := range contracts {
		p, err := workshop.NewPayroll(c, payday, workshop.WithPayrollRules(g.rules))
		if err != nil {
			Discard(payrolls)
			return nil, err
		}
		payrolls = append(payrolls, p)
	}
	return payrolls, nil
}

// payableContract picks the most recent contract of mechanic covering payday
// that has no payroll for that month yet.
func (g PayrollGenerator) payableContract(mechanic *workshop.Mechanic, payday time.Time) (*workshop.Contract, bool) {
	contracts := mechanic.Contracts()
	for i := len(contracts) - 1; i >= 0; i-- {
		c := contracts[i]
		if !c.Covers(payday) {
			continue
		}
		for _, p := range c.Payrolls() {
			if kernel.SameMonth(p.Date(), payday) {
				return nil, false
			}
		}
		return c, true
	}
	return nil, false
}

// Discard unlinks payrolls from their contracts, undoing a Generate whose
// result could not be stored.
func Discard(payrolls []*workshop.Payroll) {
	for _, p := range payrolls {
		workshop.UnlinkAccrues(p)
	}
}
