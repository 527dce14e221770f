package roster_test

import (
	"strings"
	"testing"

	"workshop/internal/adapters/in/roster"
	"workshop/internal/adapters/out/memory"
	"workshop/internal/core/domain/model/workshop"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shop = `
[[clients]]
nif = "11111111H"
name = "Ana"
surname = "García"

[[vehicle_types]]
name = "car"
price_per_hour = "50"

[[vehicles]]
plate = "1234-ABC"
make = "Seat"
model = "Ibiza"
owner = "11111111H"
type = "car"

[[spare_parts]]
code = "SP-1"
description = "oil filter"
price = "10"

[[work_orders]]
ref = "WO-1"
vehicle = "1234-ABC"
date = 2024-03-01T09:00:00
description = "oil change"
mechanic = "1"
finished = true

  [[work_orders.interventions]]
  date = 2024-03-01T10:00:00
  minutes = 60

    [[work_orders.interventions.parts]]
    code = "SP-1"
    quantity = 2

[[work_orders]]
ref = "WO-2"
vehicle = "1234-ABC"
date = 2024-03-05T09:00:00
description = "noise"

[[payment_means]]
ref = "CASH-1"
kind = "cash"
client = "11111111H"

[[payment_means]]
ref = "CARD-1"
kind = "card"
client = "11111111H"
number = "4111111111111111"
card_type = "visa"
valid_thru = 2099-12-31

[[payment_means]]
ref = "V-1"
kind = "voucher"
code = "V-1"
description = "loyalty"
available = "50"

[[invoices]]
number = 1
date = 2024-03-10
work_orders = ["WO-1"]
`

type shopRepos struct {
	roster.ShopRepositories

	workOrders   *memory.WorkOrderRepository
	paymentMeans *memory.PaymentMeanRepository
	invoices     *memory.InvoiceRepository
}

// seededMechanics loads the staff of the roster so that work orders can name
// their mechanics.
func seededMechanics(t *testing.T) shopRepos {
	t.Helper()

	r, err := roster.Load(strings.NewReader(staff))
	require.NoError(t, err)
	mechanics := memory.NewMechanicRepository()
	_, err = roster.Seed(t.Context(), r, mechanics)
	require.NoError(t, err)

	repos := shopRepos{
		workOrders:   memory.NewWorkOrderRepository(),
		paymentMeans: memory.NewPaymentMeanRepository(),
		invoices:     memory.NewInvoiceRepository(),
	}
	repos.ShopRepositories = roster.ShopRepositories{
		Mechanics:    mechanics,
		WorkOrders:   repos.workOrders,
		PaymentMeans: repos.paymentMeans,
		Invoices:     repos.invoices,
	}
	return repos
}

func TestSeedShop(t *testing.T) {
	t.Run("should build work orders, payment means and invoices", func(t *testing.T) {
		// Given
		ctx := t.Context()
		repos := seededMechanics(t)
		r, err := roster.Load(strings.NewReader(shop))
		require.NoError(t, err)

		// When
		refs, err := roster.SeedShop(ctx, r, repos.ShopRepositories, workshop.DefaultVATSchedule())

		// Then
		require.NoError(t, err)
		require.Len(t, refs.WorkOrders, 2)
		require.Len(t, refs.PaymentMeans, 3)

		wo1, err := repos.workOrders.Get(ctx, refs.WorkOrders["WO-1"])
		require.NoError(t, err)
		assert.True(t, wo1.IsInvoiced())
		assert.Equal(t, "70.00", wo1.Amount().StringFixed(2))
		wo2, err := repos.workOrders.Get(ctx, refs.WorkOrders["WO-2"])
		require.NoError(t, err)
		assert.True(t, wo2.IsOpen())

		card, err := repos.paymentMeans.Get(ctx, refs.PaymentMeans["CARD-1"])
		require.NoError(t, err)
		require.IsType(t, &workshop.CreditCard{}, card)
		require.NotNil(t, card.Client())
		assert.Equal(t, "11111111H", card.Client().NIF())
		voucher, err := repos.paymentMeans.Get(ctx, refs.PaymentMeans["V-1"])
		require.NoError(t, err)
		assert.Nil(t, voucher.Client())

		invoice, err := repos.invoices.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "84.70", invoice.Amount().StringFixed(2))
	})

	t.Run("should accept a roster without shop sections", func(t *testing.T) {
		repos := seededMechanics(t)
		r, err := roster.Load(strings.NewReader(staff))
		require.NoError(t, err)

		refs, err := roster.SeedShop(t.Context(), r, repos.ShopRepositories, workshop.DefaultVATSchedule())

		require.NoError(t, err)
		assert.Empty(t, refs.WorkOrders)
		assert.Empty(t, refs.PaymentMeans)
	})

	tests := []struct {
		name    string
		toml    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "duplicate work order ref",
			toml:    shop + "\n[[work_orders]]\nref = \"WO-1\"\nvehicle = \"1234-ABC\"\ndate = 2024-03-06T09:00:00\n",
			wantErr: roster.ErrDuplicateName,
		},
		{
			name:    "blank payment mean ref",
			toml:    shop + "\n[[payment_means]]\nkind = \"cash\"\nclient = \"11111111H\"\n",
			wantErr: errs.ErrInvalidArgument,
		},
		{
			name:    "unknown payment mean kind",
			toml:    shop + "\n[[payment_means]]\nref = \"X\"\nkind = \"cheque\"\n",
			wantMsg: `unknown kind "cheque"`,
		},
		{
			name:    "unknown mechanic",
			toml:    shop + "\n[[work_orders]]\nref = \"WO-9\"\nvehicle = \"1234-ABC\"\ndate = 2024-03-06T09:00:00\nmechanic = \"9\"\n",
			wantErr: errs.ErrObjectNotFound,
		},
		{
			name:    "invoice of an open work order",
			toml:    shop + "\n[[invoices]]\nnumber = 2\ndate = 2024-03-10\nwork_orders = [\"WO-2\"]\n",
			wantErr: errs.ErrStateConflict,
		},
		{
			name:    "invoice number listed twice",
			toml:    shop + "\n[[invoices]]\nnumber = 1\ndate = 2024-03-10\nwork_orders = []\n",
			wantErr: roster.ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run("should reject a "+tt.name, func(t *testing.T) {
			// Given
			repos := seededMechanics(t)
			r, err := roster.Load(strings.NewReader(tt.toml))
			require.NoError(t, err)

			// When
			_, err = roster.SeedShop(t.Context(), r, repos.ShopRepositories, workshop.DefaultVATSchedule())

			// Then
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.ErrorContains(t, err, tt.wantMsg)
			}
			finished, err := repos.workOrders.GetAllFinished(t.Context())
			require.NoError(t, err)
			assert.Empty(t, finished)
			_, err = repos.invoices.Get(t.Context(), 1)
			require.ErrorIs(t, err, errs.ErrObjectNotFound)
		})
	}
}
