// Package config loads the runtime configuration of the workshop from
// workshop.yaml (or .toml), WORKSHOP_* environment variables and a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"workshop/internal/core/domain/model/workshop"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const EnvPrefix = "WORKSHOP"

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PayrollConfig drives the payroll job. Schedule is a cron expression with
// a seconds field; every run generates the payrolls of the previous month.
type PayrollConfig struct {
	Schedule string `mapstructure:"schedule"`
}

type RosterConfig struct {
	File string `mapstructure:"file"`
}

// VATRateConfig is one entry of the VAT schedule. From is a YYYY-MM-DD date;
// an empty From covers everything before the next entry.
type VATRateConfig struct {
	From string `mapstructure:"from"`
	Rate string `mapstructure:"rate"`
}

// TaxBracketConfig is one income tax bracket. An empty or zero UpTo marks the
// open-ended top bracket.
type TaxBracketConfig struct {
	UpTo string `mapstructure:"up_to"`
	Rate string `mapstructure:"rate"`
}

type FiscalConfig struct {
	VATRates           []VATRateConfig    `mapstructure:"vat_rates"`
	TaxBrackets        []TaxBracketConfig `mapstructure:"tax_brackets"`
	SocialSecurityRate string             `mapstructure:"social_security_rate"`
	PaymentsPerYear    int                `mapstructure:"payments_per_year"`
	ExtraPaymentMonths []int              `mapstructure:"extra_payment_months"`
}

// Config holds all runtime configuration of the workshop.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Payroll  PayrollConfig  `mapstructure:"payroll"`
	Roster   RosterConfig   `mapstructure:"roster"`
	Fiscal   FiscalConfig   `mapstructure:"fiscal"`
}

// LoadDotEnv exports the variables of path into the process environment when
// the file exists. Variables already set are not overridden.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ReadFile reads the configuration file into v. An empty path searches for
// workshop.{yaml,toml} in the working directory and then in $HOME/.workshop,
// and a missing file is not an error in that case.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("workshop")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".workshop"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load applies the built-in defaults and environment bindings to v and
// decodes the result.
func Load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "workshop.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("payroll.schedule", "0 0 6 1 * *")
	v.SetDefault("roster.file", "")
	v.SetDefault("fiscal.vat_rates", []map[string]any{
		{"from": "", "rate": "0.18"},
		{"from": "2012-07-01", "rate": "0.21"},
	})
	v.SetDefault("fiscal.tax_brackets", []map[string]any{
		{"up_to": "12450", "rate": "0.19"},
		{"up_to": "20200", "rate": "0.24"},
		{"up_to": "35200", "rate": "0.30"},
		{"up_to": "60000", "rate": "0.37"},
		{"up_to": "300000", "rate": "0.45"},
		{"up_to": "", "rate": "0.47"},
	})
	v.SetDefault("fiscal.social_security_rate", "0.05")
	v.SetDefault("fiscal.payments_per_year", 14)
	v.SetDefault("fiscal.extra_payment_months", []int{6, 12})

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// VATSchedule converts the configured rates into a domain schedule.
func (f FiscalConfig) VATSchedule() (workshop.VATSchedule, error) {
	if len(f.VATRates) == 0 {
		return workshop.DefaultVATSchedule(), nil
	}

	rates := make([]workshop.VATRate, 0, len(f.VATRates))
	for i, r := range f.VATRates {
		rate, err := decimal.NewFromString(r.Rate)
		if err != nil {
			return workshop.VATSchedule{}, fmt.Errorf("fiscal.vat_rates[%d].rate: %w", i, err)
		}
		var from time.Time
		if r.From != "" {
			if from, err = time.Parse(time.DateOnly, r.From); err != nil {
				return workshop.VATSchedule{}, fmt.Errorf("fiscal.vat_rates[%d].from: %w", i, err)
			}
		}
		rates = append(rates, workshop.VATRate{From: from, Rate: rate})
	}
	return workshop.NewVATSchedule(rates...)
}

// PayrollRules converts the configured statutory parameters into domain
// payroll rules.
func (f FiscalConfig) PayrollRules() (workshop.PayrollRules, error) {
	rules := workshop.DefaultPayrollRules()

	if f.PaymentsPerYear != 0 {
		rules.PaymentsPerYear = f.PaymentsPerYear
	}
	if f.ExtraPaymentMonths != nil {
		rules.ExtraPaymentMonths = make([]time.Month, 0, len(f.ExtraPaymentMonths))
		for _, m := range f.ExtraPaymentMonths {
			rules.ExtraPaymentMonths = append(rules.ExtraPaymentMonths, time.Month(m))
		}
	}
	if f.SocialSecurityRate != "" {
		rate, err := decimal.NewFromString(f.SocialSecurityRate)
		if err != nil {
			return workshop.PayrollRules{}, fmt.Errorf("fiscal.social_security_rate: %w", err)
		}
		rules.SocialSecurityRate = rate
	}

	if len(f.TaxBrackets) > 0 {
		brackets := make([]workshop.TaxBracket, 0, len(f.TaxBrackets))
		for i, b := range f.TaxBrackets {
			rate, err := decimal.NewFromString(b.Rate)
			if err != nil {
				return workshop.PayrollRules{}, fmt.Errorf("fiscal.tax_brackets[%d].rate: %w", i, err)
			}
			upTo := decimal.Zero
			if b.UpTo != "" {
				if upTo, err = decimal.NewFromString(b.UpTo); err != nil {
					return workshop.PayrollRules{}, fmt.Errorf("fiscal.tax_brackets[%d].up_to: %w", i, err)
				}
			}
			brackets = append(brackets, workshop.TaxBracket{UpTo: upTo, Rate: rate})
		}
		taxBrackets, err := workshop.NewTaxBrackets(brackets...)
		if err != nil {
			return workshop.PayrollRules{}, err
		}
		rules.TaxBrackets = taxBrackets
	}

	if err := rules.Validate(); err != nil {
		return workshop.PayrollRules{}, err
	}
	return rules, nil
}
