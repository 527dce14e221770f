package roster

import (
	"context"
	"fmt"
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

type Client struct {
	NIF     string `toml:"nif"`
	Name    string `toml:"name"`
	Surname string `toml:"surname"`
}

type VehicleType struct {
	Name         string          `toml:"name"`
	PricePerHour decimal.Decimal `toml:"price_per_hour"`
}

type Vehicle struct {
	Plate string `toml:"plate"`
	Make  string `toml:"make"`
	Model string `toml:"model"`
	Owner string `toml:"owner"`
	Type  string `toml:"type"`
}

type SparePart struct {
	Code        string          `toml:"code"`
	Description string          `toml:"description"`
	Price       decimal.Decimal `toml:"price"`
}

type WorkOrder struct {
	Ref           string             `toml:"ref"`
	Vehicle       string             `toml:"vehicle"`
	Date          toml.LocalDateTime `toml:"date"`
	Description   string             `toml:"description"`
	Mechanic      string             `toml:"mechanic"`
	Finished      bool               `toml:"finished"`
	Interventions []Intervention     `toml:"interventions"`
}

// Intervention is done by the assigned mechanic unless Mechanic names another.
type Intervention struct {
	Mechanic string             `toml:"mechanic"`
	Date     toml.LocalDateTime `toml:"date"`
	Minutes  int                `toml:"minutes"`
	Parts    []Part             `toml:"parts"`
}

type Part struct {
	Code     string `toml:"code"`
	Quantity int    `toml:"quantity"`
}

// PaymentMean is one of kind "cash", "card" or "voucher". Only the fields of
// its kind are read.
type PaymentMean struct {
	Ref         string          `toml:"ref"`
	Kind        string          `toml:"kind"`
	Client      string          `toml:"client"`
	Number      string          `toml:"number"`
	CardType    string          `toml:"card_type"`
	ValidThru   toml.LocalDate  `toml:"valid_thru"`
	Code        string          `toml:"code"`
	Description string          `toml:"description"`
	Available   decimal.Decimal `toml:"available"`
}

// Invoice bills the work orders named by ref.
type Invoice struct {
	Number     int64          `toml:"number"`
	Date       toml.LocalDate `toml:"date"`
	WorkOrders []string       `toml:"work_orders"`
}

// ShopRepositories receive the seeded shop entities.
type ShopRepositories struct {
	Mechanics    ports.MechanicRepository
	WorkOrders   ports.WorkOrderRepository
	PaymentMeans ports.PaymentMeanRepository
	Invoices     ports.InvoiceRepository
}

// Refs maps the refs of a roster to the IDs of the seeded entities.
type Refs struct {
	WorkOrders   map[string]kernel.UUID
	PaymentMeans map[string]kernel.UUID
}

// shop holds the entities of the shop sections by their natural keys while
// they are built.
type shop struct {
	clients      map[string]*workshop.Client
	vehicleTypes map[string]*workshop.VehicleType
	vehicles     map[string]*workshop.Vehicle
	spareParts   map[string]*workshop.SparePart
	workOrders   map[string]*workshop.WorkOrder
	paymentMeans map[string]workshop.PaymentMean
	invoices     []*workshop.Invoice
}

// SeedShop builds the shop sections of roster and adds the work orders,
// payment means and invoices to repos. Mechanics are looked up in
// repos.Mechanics, so Seed must run first. Nothing is added if any entity is
// invalid.
//
// Work orders and payment means carry a ref, unique within the file, that
// the returned Refs map to their IDs:
//
//	[[clients]]
//	nif = "11111111H"
//	name = "Ana"
//	surname = "García"
//
//	[[vehicle_types]]
//	name = "car"
//	price_per_hour = "50"
//
//	[[vehicles]]
//	plate = "1234-ABC"
//	make = "Seat"
//	model = "Ibiza"
//	owner = "11111111H"
//	type = "car"
//
//	[[work_orders]]
//	ref = "WO-1"
//	vehicle = "1234-ABC"
//	date = 2024-03-01T09:00:00
//	description = "brake check"
//	mechanic = "12345678Z"
//	finished = true
//
//	  [[work_orders.interventions]]
//	  date = 2024-03-01T10:00:00
//	  minutes = 60
//
//	[[payment_means]]
//	ref = "CASH-1"
//	kind = "cash"
//	client = "11111111H"
func SeedShop(ctx context.Context, roster Roster, repos ShopRepositories, vat workshop.VATSchedule) (Refs, error) {
	s := shop{
		clients:      make(map[string]*workshop.Client, len(roster.Clients)),
		vehicleTypes: make(map[string]*workshop.VehicleType, len(roster.VehicleTypes)),
		vehicles:     make(map[string]*workshop.Vehicle, len(roster.Vehicles)),
		spareParts:   make(map[string]*workshop.SparePart, len(roster.SpareParts)),
		workOrders:   make(map[string]*workshop.WorkOrder, len(roster.WorkOrders)),
		paymentMeans: make(map[string]workshop.PaymentMean, len(roster.PaymentMeans)),
	}

	if err := s.buildCustomers(roster); err != nil {
		return Refs{}, err
	}
	for _, wo := range roster.WorkOrders {
		if err := s.buildWorkOrder(ctx, wo, repos.Mechanics); err != nil {
			return Refs{}, fmt.Errorf("work order %q: %w", wo.Ref, err)
		}
	}
	for _, pm := range roster.PaymentMeans {
		if err := s.buildPaymentMean(pm); err != nil {
			return Refs{}, fmt.Errorf("payment mean %q: %w", pm.Ref, err)
		}
	}
	for _, inv := range roster.Invoices {
		if err := s.buildInvoice(inv, vat); err != nil {
			return Refs{}, fmt.Errorf("invoice %d: %w", inv.Number, err)
		}
	}

	refs := Refs{
		WorkOrders:   make(map[string]kernel.UUID, len(s.workOrders)),
		PaymentMeans: make(map[string]kernel.UUID, len(s.paymentMeans)),
	}
	for _, wo := range roster.WorkOrders {
		workOrder := s.workOrders[wo.Ref]
		if err := repos.WorkOrders.Add(ctx, workOrder); err != nil {
			return Refs{}, fmt.Errorf("add work order %q: %w", wo.Ref, err)
		}
		refs.WorkOrders[wo.Ref] = workOrder.ID()
	}
	for _, pm := range roster.PaymentMeans {
		mean := s.paymentMeans[pm.Ref]
		if err := repos.PaymentMeans.Add(ctx, mean); err != nil {
			return Refs{}, fmt.Errorf("add payment mean %q: %w", pm.Ref, err)
		}
		refs.PaymentMeans[pm.Ref] = mean.ID()
	}
	for _, invoice := range s.invoices {
		if err := repos.Invoices.Add(ctx, invoice); err != nil {
			return Refs{}, fmt.Errorf("add invoice %d: %w", invoice.Number(), err)
		}
	}
	return refs, nil
}

func (s *shop) buildCustomers(roster Roster) error {
	for _, c := range roster.Clients {
		if _, dup := s.clients[c.NIF]; dup {
			return fmt.Errorf("client %q: %w", c.NIF, ErrDuplicateName)
		}
		client, err := workshop.NewClient(c.NIF, c.Name, c.Surname)
		if err != nil {
			return fmt.Errorf("client %q: %w", c.NIF, err)
		}
		s.clients[c.NIF] = client
	}

	for _, vt := range roster.VehicleTypes {
		if _, dup := s.vehicleTypes[vt.Name]; dup {
			return fmt.Errorf("vehicle type %q: %w", vt.Name, ErrDuplicateName)
		}
		vehicleType, err := workshop.NewVehicleType(vt.Name, vt.PricePerHour)
		if err != nil {
			return fmt.Errorf("vehicle type %q: %w", vt.Name, err)
		}
		s.vehicleTypes[vt.Name] = vehicleType
	}

	for _, v := range roster.Vehicles {
		if err := s.buildVehicle(v); err != nil {
			return fmt.Errorf("vehicle %q: %w", v.Plate, err)
		}
	}

	for _, sp := range roster.SpareParts {
		if _, dup := s.spareParts[sp.Code]; dup {
			return fmt.Errorf("spare part %q: %w", sp.Code, ErrDuplicateName)
		}
		part, err := workshop.NewSparePart(sp.Code, sp.Description, sp.Price)
		if err != nil {
			return fmt.Errorf("spare part %q: %w", sp.Code, err)
		}
		s.spareParts[sp.Code] = part
	}
	return nil
}

func (s *shop) buildVehicle(v Vehicle) error {
	if _, dup := s.vehicles[v.Plate]; dup {
		return ErrDuplicateName
	}
	vehicle, err := workshop.NewVehicle(v.Plate, v.Make, v.Model)
	if err != nil {
		return err
	}
	if v.Owner != "" {
		owner, ok := s.clients[v.Owner]
		if !ok {
			return fmt.Errorf("unknown client %q", v.Owner)
		}
		if err = workshop.LinkOwns(owner, vehicle); err != nil {
			return err
		}
	}
	if v.Type != "" {
		vehicleType, ok := s.vehicleTypes[v.Type]
		if !ok {
			return fmt.Errorf("unknown vehicle type %q", v.Type)
		}
		if err = workshop.LinkClassifies(vehicleType, vehicle); err != nil {
			return err
		}
	}
	s.vehicles[v.Plate] = vehicle
	return nil
}

func (s *shop) buildWorkOrder(ctx context.Context, wo WorkOrder, mechanics ports.MechanicRepository) error {
	if err := checkRef(wo.Ref, s.workOrders); err != nil {
		return err
	}
	vehicle, ok := s.vehicles[wo.Vehicle]
	if !ok {
		return fmt.Errorf("unknown vehicle %q", wo.Vehicle)
	}
	workOrder, err := workshop.NewWorkOrder(vehicle, asDateTime(wo.Date), wo.Description)
	if err != nil {
		return err
	}

	var assigned *workshop.Mechanic
	if wo.Mechanic != "" {
		if assigned, err = mechanics.Get(ctx, wo.Mechanic); err != nil {
			return err
		}
		if err = workOrder.AssignTo(assigned); err != nil {
			return err
		}
	}

	for i, in := range wo.Interventions {
		mechanic := assigned
		if in.Mechanic != "" {
			if mechanic, err = mechanics.Get(ctx, in.Mechanic); err != nil {
				return fmt.Errorf("intervention %d: %w", i+1, err)
			}
		}
		if err = s.buildIntervention(workOrder, mechanic, in); err != nil {
			return fmt.Errorf("intervention %d: %w", i+1, err)
		}
	}

	if wo.Finished {
		if err = workOrder.MarkAsFinished(); err != nil {
			return err
		}
	}
	s.workOrders[wo.Ref] = workOrder
	return nil
}

func (s *shop) buildIntervention(workOrder *workshop.WorkOrder, mechanic *workshop.Mechanic, in Intervention) error {
	intervention, err := workshop.NewIntervention(mechanic, workOrder, asDateTime(in.Date), in.Minutes)
	if err != nil {
		return err
	}
	for _, p := range in.Parts {
		part, ok := s.spareParts[p.Code]
		if !ok {
			return fmt.Errorf("unknown spare part %q", p.Code)
		}
		if _, err = workshop.NewSubstitution(part, intervention, p.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (s *shop) buildPaymentMean(pm PaymentMean) error {
	if err := checkRef(pm.Ref, s.paymentMeans); err != nil {
		return err
	}

	var client *workshop.Client
	if pm.Client != "" {
		var ok bool
		if client, ok = s.clients[pm.Client]; !ok {
			return fmt.Errorf("unknown client %q", pm.Client)
		}
	}

	var mean workshop.PaymentMean
	switch pm.Kind {
	case "cash":
		cash, err := workshop.NewCash(client)
		if err != nil {
			return err
		}
		s.paymentMeans[pm.Ref] = cash
		return nil
	case "card":
		card, err := workshop.NewCreditCard(pm.Number, pm.CardType, asDate(pm.ValidThru))
		if err != nil {
			return err
		}
		mean = card
	case "voucher":
		voucher, err := workshop.NewVoucher(pm.Code, pm.Description, pm.Available)
		if err != nil {
			return err
		}
		mean = voucher
	default:
		return fmt.Errorf("unknown kind %q: want cash, card or voucher", pm.Kind)
	}

	if client != nil {
		if err := workshop.LinkHolds(client, mean); err != nil {
			return err
		}
	}
	s.paymentMeans[pm.Ref] = mean
	return nil
}

// checkRef fails when ref is blank or already taken in seen.
func checkRef[T any](ref string, seen map[string]T) error {
	if strings.TrimSpace(ref) == "" {
		return errs.NewValueIsRequiredError("ref")
	}
	if _, dup := seen[ref]; dup {
		return fmt.Errorf("ref %q: %w", ref, ErrDuplicateName)
	}
	return nil
}

func (s *shop) buildInvoice(inv Invoice, vat workshop.VATSchedule) error {
	workOrders := make([]*workshop.WorkOrder, 0, len(inv.WorkOrders))
	for _, ref := range inv.WorkOrders {
		wo, ok := s.workOrders[ref]
		if !ok {
			return fmt.Errorf("unknown work order %q", ref)
		}
		workOrders = append(workOrders, wo)
	}
	for _, existing := range s.invoices {
		if existing.Number() == inv.Number {
			return ErrDuplicateName
		}
	}

	invoice, err := workshop.NewInvoice(inv.Number, asDate(inv.Date), workOrders, workshop.WithVATSchedule(vat))
	if err != nil {
		return err
	}
	s.invoices = append(s.invoices, invoice)
	return nil
}

// asDateTime maps a missing date-time to the zero time, which constructors
// reject.
func asDateTime(d toml.LocalDateTime) time.Time {
	if d == (toml.LocalDateTime{}) {
		return time.Time{}
	}
	return d.AsTime(time.UTC)
}
