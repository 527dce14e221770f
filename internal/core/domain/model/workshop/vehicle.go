package workshop

import (
	"errors"
	"fmt"

	"workshop/internal/pkg/guard"
	"workshop/internal/pkg/relation"
)

var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is identified by make, model and plate number. It may belong to a
// client and is classified by a vehicle type, which fixes the labor rate of
// its work orders.
type Vehicle struct {
	plateNumber string
	make        string
	model       string

	client      *Client
	vehicleType *VehicleType
	workOrders  relation.Set[WorkOrderKey, *WorkOrder]

	guard guard.ConstructorGuard
}

func NewVehicle(plateNumber, vehicleMake, model string) (*Vehicle, error) {
	if err := errors.Join(
		guard.NotBlank(plateNumber, "plate number"),
		guard.NotBlank(vehicleMake, "make"),
		guard.NotBlank(model, "model"),
	); err != nil {
		return nil, err
	}

	return &Vehicle{
		plateNumber: plateNumber,
		make:        vehicleMake,
		model:       model,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v *Vehicle) Key() VehicleKey {
	return VehicleKey{Make: v.make, Model: v.model, PlateNumber: v.plateNumber}
}

func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.Key() == other.Key()
}

func (v *Vehicle) PlateNumber() string { return v.plateNumber }
func (v *Vehicle) Make() string { return v.make }
func (v *Vehicle) Model() string { return v.model }

// Client returns the owner, or nil.
func (v *Vehicle) Client() *Client { return v.client }

// VehicleType returns the classification, or nil when none was linked yet.
func (v *Vehicle) VehicleType() *VehicleType { return v.vehicleType }

func (v *Vehicle) WorkOrders() []*WorkOrder {
	return v.workOrders.Snapshot()
}

func (v *Vehicle) String() string {
	return fmt.Sprintf("Vehicle{%s %s, plate=%s}", v.make, v.model, v.plateNumber)
}
