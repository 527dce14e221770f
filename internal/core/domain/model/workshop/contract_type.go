package workshop

import (
	"errors"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
	"workshop/internal/pkg/relation"

	"github.com/shopspring/decimal"
)

var ErrContractTypeIsNotConstructed = errors.New("ContractType must be created via NewContractType constructor")

// ContractType names a kind of employment contract and the compensation days
// owed per full year of service on termination. Fixed-term types require an
// end date on their contracts.
type ContractType struct {
	name                    string
	compensationDaysPerYear decimal.Decimal
	fixedTerm               bool

	contracts relation.Set[kernel.UUID, *Contract]

	guard guard.ConstructorGuard
}

func NewContractType(name string, compensationDaysPerYear decimal.Decimal, fixedTerm bool) (*ContractType, error) {
	if err := errors.Join(
		guard.NotBlank(name, "name"),
		guard.NotNegativeAmount(compensationDaysPerYear, "compensation days per year"),
	); err != nil {
		return nil, err
	}

	return &ContractType{
		name:                    name,
		compensationDaysPerYear: compensationDaysPerYear,
		fixedTerm:               fixedTerm,
		guard:                   guard.NewConstructorGuard(),
	}, nil
}

func (t *ContractType) Validate() error {
	if t == nil {
		return ErrContractTypeIsNotConstructed
	}
	return t.guard.Validate(ErrContractTypeIsNotConstructed)
}

func (t *ContractType) Key() string { return t.name }

func (t *ContractType) IsEqual(other *ContractType) bool {
	return other != nil && t.name == other.name
}

func (t *ContractType) Name() string { return t.name }
func (t *ContractType) CompensationDaysPerYear() decimal.Decimal { return t.compensationDaysPerYear }
func (t *ContractType) IsFixedTerm() bool { return t.fixedTerm }

func (t *ContractType) Contracts() []*Contract {
	return t.contracts.Snapshot()
}
