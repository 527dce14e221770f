package workshop

import (
	"errors"

	"workshop/internal/pkg/guard"
	"workshop/internal/pkg/relation"

	"github.com/shopspring/decimal"
)

var ErrVehicleTypeIsNotConstructed = errors.New("VehicleType must be created via NewVehicleType constructor")

// VehicleType classifies vehicles and carries the hourly labor rate charged
// for work on them.
type VehicleType struct {
	name         string
	pricePerHour decimal.Decimal

	vehicles relation.Set[VehicleKey, *Vehicle]

	guard guard.ConstructorGuard
}

func NewVehicleType(name string, pricePerHour decimal.Decimal) (*VehicleType, error) {
	if err := errors.Join(
		guard.NotBlank(name, "name"),
		guard.NotNegativeAmount(pricePerHour, "price per hour"),
	); err != nil {
		return nil, err
	}

	return &VehicleType{
		name:         name,
		pricePerHour: pricePerHour,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (t *VehicleType) Validate() error {
	if t == nil {
		return ErrVehicleTypeIsNotConstructed
	}
	return t.guard.Validate(ErrVehicleTypeIsNotConstructed)
}

func (t *VehicleType) Key() string { return t.name }

func (t *VehicleType) IsEqual(other *VehicleType) bool {
	return other != nil && t.name == other.name
}

func (t *VehicleType) Name() string { return t.name }
func (t *VehicleType) PricePerHour() decimal.Decimal { return t.pricePerHour }

func (t *VehicleType) Vehicles() []*Vehicle {
	return t.vehicles.Snapshot()
}
