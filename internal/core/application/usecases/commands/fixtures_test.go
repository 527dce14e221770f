package commands_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var invoiceDate = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

// finishedWorkOrders returns n FINISHED work orders of 100 each, owned by
// the returned client.
func finishedWorkOrders(t *testing.T, n int) ([]*workshop.WorkOrder, *workshop.Client) {
	t.Helper()

	client, err := workshop.NewClient("1", "Ana", "García")
	require.NoError(t, err)
	vehicleType, err := workshop.NewVehicleType("car", decimal.NewFromInt(100))
	require.NoError(t, err)
	vehicle, err := workshop.NewVehicle("1234-ABC", "Seat", "Ibiza")
	require.NoError(t, err)
	require.NoError(t, workshop.LinkOwns(client, vehicle))
	require.NoError(t, workshop.LinkClassifies(vehicleType, vehicle))
	mechanic, err := workshop.NewMechanic("2", "Luis", "Pérez")
	require.NoError(t, err)

	orders := make([]*workshop.WorkOrder, 0, n)
	for i := range n {
		at := invoiceDate.Add(time.Duration(i) * time.Minute)
		wo, err := workshop.NewWorkOrder(vehicle, at, "service")
		require.NoError(t, err)
		require.NoError(t, wo.AssignTo(mechanic))
		_, err = workshop.NewIntervention(mechanic, wo, at, 60)
		require.NoError(t, err)
		require.NoError(t, wo.MarkAsFinished())
		orders = append(orders, wo)
	}
	return orders, client
}

// hiredMechanic returns a mechanic with a contract in force since January 2024.
func hiredMechanic(t *testing.T, nif string) (*workshop.Mechanic, *workshop.Contract) {
	t.Helper()

	mechanic, err := workshop.NewMechanic(nif, "Eva", "Ruiz")
	require.NoError(t, err)
	contractType, err := workshop.NewContractType("permanent", decimal.NewFromInt(20), false)
	require.NoError(t, err)
	group, err := workshop.NewProfessionalGroup("I", decimal.NewFromInt(50), decimal.RequireFromString("0.05"))
	require.NoError(t, err)
	contract, err := workshop.NewContract(mechanic, contractType, group, kernel.Date(2024, time.January, 10), decimal.NewFromInt(28000))
	require.NoError(t, err)
	return mechanic, contract
}
