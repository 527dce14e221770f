package roster_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"workshop/internal/adapters/in/roster"
	"workshop/internal/adapters/out/memory"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const staff = `
[[contract_types]]
name = "permanent"
compensation_days_per_year = "20"

[[contract_types]]
name = "seasonal"
compensation_days_per_year = "12"
fixed_term = true

[[professional_groups]]
name = "I"
triennium_salary = "50"
productivity_rate = "0.05"

[[mechanics]]
nif = "1"
name = "Eva"
surname = "Ruiz"

  [[mechanics.contracts]]
  type = "seasonal"
  group = "I"
  signed = 2023-06-05
  end = 2023-09-10
  annual_base_salary = "21000"

  [[mechanics.contracts]]
  type = "permanent"
  group = "I"
  signed = 2024-01-10
  annual_base_salary = "28000"

[[mechanics]]
nif = "2"
name = "Luis"
surname = "Pérez"

  [[mechanics.contracts]]
  type = "permanent"
  group = "I"
  signed = 2020-01-01
  terminated = 2021-06-15
  annual_base_salary = "36500"
`

func TestLoad(t *testing.T) {
	t.Run("should parse every section", func(t *testing.T) {
		r, err := roster.Load(strings.NewReader(staff))

		require.NoError(t, err)
		require.Len(t, r.ContractTypes, 2)
		assert.True(t, r.ContractTypes[1].FixedTerm)
		require.Len(t, r.ProfessionalGroups, 1)
		assert.Equal(t, "0.05", r.ProfessionalGroups[0].ProductivityRate.String())
		require.Len(t, r.Mechanics, 2)
		require.Len(t, r.Mechanics[0].Contracts, 2)
		require.NotNil(t, r.Mechanics[0].Contracts[0].End)
		assert.Nil(t, r.Mechanics[0].Contracts[1].End)
		assert.Equal(t, "28000", r.Mechanics[0].Contracts[1].AnnualBaseSalary.String())
	})

	t.Run("should reject unknown keys", func(t *testing.T) {
		_, err := roster.Load(strings.NewReader("[[mechanics]]\nnif = \"1\"\nage = 40\n"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing roster")
	})

	t.Run("should reject malformed amounts", func(t *testing.T) {
		_, err := roster.Load(strings.NewReader("[[contract_types]]\nname = \"x\"\ncompensation_days_per_year = \"twenty\"\n"))

		require.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.toml")
	require.NoError(t, os.WriteFile(path, []byte(staff), 0o600))

	r, err := roster.LoadFile(path)

	require.NoError(t, err)
	assert.Len(t, r.Mechanics, 2)

	_, err = roster.LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSeed(t *testing.T) {
	t.Run("should build the contract history of every mechanic", func(t *testing.T) {
		// Given
		ctx := t.Context()
		r, err := roster.Load(strings.NewReader(staff))
		require.NoError(t, err)
		repo := memory.NewMechanicRepository()

		// When
		n, err := roster.Seed(ctx, r, repo)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		eva, err := repo.Get(ctx, "1")
		require.NoError(t, err)
		contracts := eva.Contracts()
		require.Len(t, contracts, 2)
		end, ok := contracts[0].EndDate()
		require.True(t, ok)
		assert.Equal(t, kernel.Date(2023, time.September, 30), end)
		inForce, ok := eva.ContractInForce()
		require.True(t, ok)
		assert.Same(t, contracts[1], inForce)

		luis, err := repo.Get(ctx, "2")
		require.NoError(t, err)
		_, ok = luis.ContractInForce()
		assert.False(t, ok)
		// one full year of 36500 at 20 days per year
		assert.Equal(t, "2000.00", luis.Contracts()[0].Settlement().StringFixed(2))
	})

	tests := []struct {
		name    string
		roster  roster.Roster
		wantErr error
	}{
		{
			name: "duplicate contract type",
			roster: roster.Roster{ContractTypes: []roster.ContractType{
				{Name: "permanent"}, {Name: "permanent"},
			}},
			wantErr: roster.ErrDuplicateName,
		},
		{
			name: "duplicate mechanic",
			roster: roster.Roster{Mechanics: []roster.Mechanic{
				{NIF: "1", Name: "A", Surname: "B"}, {NIF: "1", Name: "C", Surname: "D"},
			}},
			wantErr: roster.ErrDuplicateName,
		},
		{
			name:    "blank mechanic",
			roster:  roster.Roster{Mechanics: []roster.Mechanic{{NIF: " "}}},
			wantErr: errs.ErrInvalidArgument,
		},
		{
			name: "contract without signing date",
			roster: roster.Roster{
				ContractTypes:      []roster.ContractType{{Name: "permanent"}},
				ProfessionalGroups: []roster.ProfessionalGroup{{Name: "I"}},
				Mechanics: []roster.Mechanic{{
					NIF: "1", Name: "A", Surname: "B",
					Contracts: []roster.Contract{{Type: "permanent", Group: "I"}},
				}},
			},
			wantErr: errs.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := memory.NewMechanicRepository()

			n, err := roster.Seed(t.Context(), tt.roster, repo)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, n)
			all, err := repo.GetAll(t.Context())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}

	t.Run("should name an unknown contract type", func(t *testing.T) {
		r := roster.Roster{Mechanics: []roster.Mechanic{{
			NIF: "1", Name: "A", Surname: "B",
			Contracts: []roster.Contract{{Type: "temp", Group: "I"}},
		}}}

		_, err := roster.Seed(t.Context(), r, memory.NewMechanicRepository())

		require.ErrorContains(t, err, `unknown contract type "temp"`)
	})
}
