package workshop_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/workshop"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// garage is a small, fully linked graph: a client owning a classified
// vehicle, a mechanic and a spare part.
type garage struct {
	client      *workshop.Client
	vehicleType *workshop.VehicleType
	vehicle     *workshop.Vehicle
	mechanic    *workshop.Mechanic
	sparePart   *workshop.SparePart
}

// invoiceDate is after the 2012 VAT change, so 21% applies.
var invoiceDate = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newGarage(t *testing.T) *garage {
	t.Helper()

	client, err := workshop.NewClient("12345678A", "Ana", "García")
	require.NoError(t, err)
	vehicleType, err := workshop.NewVehicleType("car", dec("50"))
	require.NoError(t, err)
	vehicle, err := workshop.NewVehicle("1234-ABC", "Seat", "Ibiza")
	require.NoError(t, err)
	require.NoError(t, workshop.LinkOwns(client, vehicle))
	require.NoError(t, workshop.LinkClassifies(vehicleType, vehicle))
	mechanic, err := workshop.NewMechanic("87654321B", "Luis", "Pérez")
	require.NoError(t, err)
	sparePart, err := workshop.NewSparePart("SP-1", "oil filter", dec("10"))
	require.NoError(t, err)

	return &garage{
		client:      client,
		vehicleType: vehicleType,
		vehicle:     vehicle,
		mechanic:    mechanic,
		sparePart:   sparePart,
	}
}

// workOrderAt opens a work order dated at.
func (g *garage) workOrderAt(t *testing.T, at time.Time) *workshop.WorkOrder {
	t.Helper()

	wo, err := workshop.NewWorkOrder(g.vehicle, at, "brake check")
	require.NoError(t, err)
	return wo
}

// finishedWorkOrder returns a FINISHED order at the given time with one
// intervention of minutes and, if quantity > 0, a substitution of the spare
// part. With the defaults (50/h, 10 per part) 60 minutes and 2 parts cost 70.
func (g *garage) finishedWorkOrder(t *testing.T, at time.Time, minutes, quantity int) *workshop.WorkOrder {
	t.Helper()

	wo := g.workOrderAt(t, at)
	require.NoError(t, wo.AssignTo(g.mechanic))
	intervention, err := workshop.NewIntervention(g.mechanic, wo, at.Add(time.Hour), minutes)
	require.NoError(t, err)
	if quantity > 0 {
		_, err = workshop.NewSubstitution(g.sparePart, intervention, quantity)
		require.NoError(t, err)
	}
	require.NoError(t, wo.MarkAsFinished())
	return wo
}
