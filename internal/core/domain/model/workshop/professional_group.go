package workshop

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
	"workshop/internal/pkg/relation"

	"github.com/shopspring/decimal"
)

var ErrProfessionalGroupIsNotConstructed = errors.New(
	"ProfessionalGroup must be created via NewProfessionalGroup constructor",
)

// ProfessionalGroup sets the seniority bonus paid per full three years of
// service and the share of invoiced work paid as productivity bonus.
type ProfessionalGroup struct {
	name             string
	trienniumSalary  decimal.Decimal
	productivityRate decimal.Decimal

	contracts relation.Set[kernel.UUID, *Contract]

	guard guard.ConstructorGuard
}

func NewProfessionalGroup(name string, trienniumSalary, productivityRate decimal.Decimal) (*ProfessionalGroup, error) {
	if err := errors.Join(
		guard.NotBlank(name, "name"),
		guard.NotNegativeAmount(trienniumSalary, "triennium salary"),
		validateRate(productivityRate, "productivity rate"),
	); err != nil {
		return nil, err
	}

	return &ProfessionalGroup{
		name:             name,
		trienniumSalary:  trienniumSalary,
		productivityRate: productivityRate,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (g *ProfessionalGroup) Validate() error {
	if g == nil {
		return ErrProfessionalGroupIsNotConstructed
	}
	return g.guard.Validate(ErrProfessionalGroupIsNotConstructed)
}

func (g *ProfessionalGroup) Key() string { return g.name }

func (g *ProfessionalGroup) IsEqual(other *ProfessionalGroup) bool {
	return other != nil && g.name == other.name
}

func (g *ProfessionalGroup) Name() string { return g.name }
func (g *ProfessionalGroup) TrienniumSalary() decimal.Decimal { return g.trienniumSalary }
func (g *ProfessionalGroup) ProductivityRate() decimal.Decimal { return g.productivityRate }

func (g *ProfessionalGroup) Contracts() []*Contract {
	return g.contracts.Snapshot()
}

func validateRate(rate decimal.Decimal, paramName string) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return errs.NewValueIsOutOfRangeError(paramName, rate.String(), 0, 1)
	}
	return nil
}
