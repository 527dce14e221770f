// Package roster loads the workshop staff from a TOML file: contract types,
// professional groups, mechanics and their contract history.
//
// Amounts and rates are TOML strings so that they are read exactly:
//
//	[[contract_types]]
//	name = "permanent"
//	compensation_days_per_year = "20"
//
//	[[professional_groups]]
//	name = "I"
//	triennium_salary = "50"
//	productivity_rate = "0.05"
//
//	[[mechanics]]
//	nif = "12345678Z"
//	name = "Eva"
//	surname = "Ruiz"
//
//	  [[mechanics.contracts]]
//	  type = "permanent"
//	  group = "I"
//	  signed = 2024-01-10
//	  annual_base_salary = "28000"
//
// Contracts are signed in the order they are listed, so a later contract
// terminates the one in force before it. The optional shop sections are
// described with SeedShop.
package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"workshop/internal/core/domain/model/workshop"
	"workshop/internal/core/ports"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

var ErrDuplicateName = errors.New("listed twice")

type Roster struct {
	ContractTypes      []ContractType      `toml:"contract_types"`
	ProfessionalGroups []ProfessionalGroup `toml:"professional_groups"`
	Mechanics          []Mechanic          `toml:"mechanics"`

	Clients      []Client      `toml:"clients"`
	VehicleTypes []VehicleType `toml:"vehicle_types"`
	Vehicles     []Vehicle     `toml:"vehicles"`
	SpareParts   []SparePart   `toml:"spare_parts"`
	WorkOrders   []WorkOrder   `toml:"work_orders"`
	PaymentMeans []PaymentMean `toml:"payment_means"`
	Invoices     []Invoice     `toml:"invoices"`
}

type ContractType struct {
	Name                    string          `toml:"name"`
	CompensationDaysPerYear decimal.Decimal `toml:"compensation_days_per_year"`
	FixedTerm               bool            `toml:"fixed_term"`
}

type ProfessionalGroup struct {
	Name             string          `toml:"name"`
	TrienniumSalary  decimal.Decimal `toml:"triennium_salary"`
	ProductivityRate decimal.Decimal `toml:"productivity_rate"`
}

type Mechanic struct {
	NIF       string     `toml:"nif"`
	Name      string     `toml:"name"`
	Surname   string     `toml:"surname"`
	Contracts []Contract `toml:"contracts"`
}

type Contract struct {
	Type             string          `toml:"type"`
	Group            string          `toml:"group"`
	Signed           toml.LocalDate  `toml:"signed"`
	End              *toml.LocalDate `toml:"end"`
	Terminated       *toml.LocalDate `toml:"terminated"`
	AnnualBaseSalary decimal.Decimal `toml:"annual_base_salary"`
}

// Load parses a roster. Unknown keys are rejected.
func Load(r io.Reader) (Roster, error) {
	var roster Roster
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&roster); err != nil {
		return Roster{}, fmt.Errorf("parsing roster: %w", err)
	}
	return roster, nil
}

func LoadFile(path string) (Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return Roster{}, fmt.Errorf("reading roster: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Seed builds the entities of the roster and adds the mechanics to repo. It
// returns the number of mechanics added. Nothing is added if any entity of
// the roster is invalid.
func Seed(ctx context.Context, roster Roster, repo ports.MechanicRepository) (int, error) {
	types := make(map[string]*workshop.ContractType, len(roster.ContractTypes))
	for _, ct := range roster.ContractTypes {
		if _, dup := types[ct.Name]; dup {
			return 0, fmt.Errorf("contract type %q: %w", ct.Name, ErrDuplicateName)
		}
		t, err := workshop.NewContractType(ct.Name, ct.CompensationDaysPerYear, ct.FixedTerm)
		if err != nil {
			return 0, fmt.Errorf("contract type %q: %w", ct.Name, err)
		}
		types[ct.Name] = t
	}

	groups := make(map[string]*workshop.ProfessionalGroup, len(roster.ProfessionalGroups))
	for _, pg := range roster.ProfessionalGroups {
		if _, dup := groups[pg.Name]; dup {
			return 0, fmt.Errorf("professional group %q: %w", pg.Name, ErrDuplicateName)
		}
		g, err := workshop.NewProfessionalGroup(pg.Name, pg.TrienniumSalary, pg.ProductivityRate)
		if err != nil {
			return 0, fmt.Errorf("professional group %q: %w", pg.Name, err)
		}
		groups[pg.Name] = g
	}

	seen := make(map[string]struct{}, len(roster.Mechanics))
	mechanics := make([]*workshop.Mechanic, 0, len(roster.Mechanics))
	for _, m := range roster.Mechanics {
		if _, dup := seen[m.NIF]; dup {
			return 0, fmt.Errorf("mechanic %q: %w", m.NIF, ErrDuplicateName)
		}
		seen[m.NIF] = struct{}{}

		mechanic, err := workshop.NewMechanic(m.NIF, m.Name, m.Surname)
		if err != nil {
			return 0, fmt.Errorf("mechanic %q: %w", m.NIF, err)
		}
		for i, c := range m.Contracts {
			if err = sign(mechanic, c, types, groups); err != nil {
				return 0, fmt.Errorf("mechanic %q contract %d: %w", m.NIF, i+1, err)
			}
		}
		mechanics = append(mechanics, mechanic)
	}

	for i, m := range mechanics {
		if err := repo.Add(ctx, m); err != nil {
			return i, fmt.Errorf("add mechanic %q: %w", m.NIF(), err)
		}
	}
	return len(mechanics), nil
}

func sign(
	mechanic *workshop.Mechanic,
	c Contract,
	types map[string]*workshop.ContractType,
	groups map[string]*workshop.ProfessionalGroup,
) error {
	contractType, ok := types[c.Type]
	if !ok {
		return fmt.Errorf("unknown contract type %q", c.Type)
	}
	group, ok := groups[c.Group]
	if !ok {
		return fmt.Errorf("unknown professional group %q", c.Group)
	}

	var opts []workshop.ContractOption
	if c.End != nil {
		opts = append(opts, workshop.WithEndDate(asDate(*c.End)))
	}
	contract, err := workshop.NewContract(mechanic, contractType, group, asDate(c.Signed), c.AnnualBaseSalary, opts...)
	if err != nil {
		return err
	}

	if c.Terminated != nil {
		return contract.Terminate(asDate(*c.Terminated))
	}
	return nil
}

// asDate maps a missing date to the zero time, which constructors reject.
func asDate(d toml.LocalDate) time.Time {
	if d == (toml.LocalDate{}) {
		return time.Time{}
	}
	return d.AsTime(time.UTC)
}
