package workshop

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
	"workshop/internal/pkg/relation"
)

var ErrMechanicIsNotConstructed = errors.New("Mechanic must be created via NewMechanic constructor")

// Mechanic is an employee identified by tax id (NIF). It keeps the work
// orders currently assigned to it, every intervention it performed and its
// contract history.
type Mechanic struct {
	nif     string
	name    string
	surname string

	assigned      relation.Set[WorkOrderKey, *WorkOrder]
	interventions relation.Set[InterventionKey, *Intervention]
	contracts     relation.Set[kernel.UUID, *Contract]

	guard guard.ConstructorGuard
}

func NewMechanic(nif, name, surname string) (*Mechanic, error) {
	if err := errors.Join(
		guard.NotBlank(nif, "nif"),
		guard.NotBlank(name, "name"),
		guard.NotBlank(surname, "surname"),
	); err != nil {
		return nil, err
	}

	return &Mechanic{
		nif:     nif,
		name:    name,
		surname: surname,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (m *Mechanic) Validate() error {
	if m == nil {
		return ErrMechanicIsNotConstructed
	}
	return m.guard.Validate(ErrMechanicIsNotConstructed)
}

func (m *Mechanic) Key() string { return m.nif }

func (m *Mechanic) IsEqual(other *Mechanic) bool {
	return other != nil && m.nif == other.nif
}

func (m *Mechanic) NIF() string { return m.nif }
func (m *Mechanic) Name() string { return m.name }
func (m *Mechanic) Surname() string { return m.surname }

func (m *Mechanic) AssignedWorkOrders() []*WorkOrder {
	return m.assigned.Snapshot()
}

func (m *Mechanic) Interventions() []*Intervention {
	return m.interventions.Snapshot()
}

// Contracts returns the contract history in signing order.
func (m *Mechanic) Contracts() []*Contract {
	return m.contracts.Snapshot()
}

// ContractInForce returns the contract currently in force, if any.
func (m *Mechanic) ContractInForce() (*Contract, bool) {
	for _, c := range m.contracts.Snapshot() {
		if c.IsInForce() {
			return c, true
		}
	}
	return nil, false
}

func (m *Mechanic) String() string {
	return fmt.Sprintf("Mechanic{nif=%s, name=%s %s}", m.nif, m.name, m.surname)
}
