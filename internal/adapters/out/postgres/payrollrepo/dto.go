// Package payrollrepo persists generated payrolls. A stored payroll is a
// flat snapshot of its computed components; the contract it belongs to lives
// in the entity graph and is referenced by ID and mechanic NIF only.
package payrollrepo

import (
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollDTO is the row of the payrolls table. A mechanic has at most one
// row per calendar month. Components are stored rounded to cents.
type PayrollDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ContractID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	MechanicNIF         string          `gorm:"size:32;not null;uniqueIndex:idx_payrolls_mechanic_period"`
	Year                int             `gorm:"not null;uniqueIndex:idx_payrolls_mechanic_period"`
	Month               int             `gorm:"not null;uniqueIndex:idx_payrolls_mechanic_period"`
	PaidOn              time.Time       `gorm:"type:date;not null"`
	MonthlyWage         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ExtraWage           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ProductivityEarning decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TrienniumEarning    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	IncomeTax           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SocialSecurity      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt           time.Time
}

// TableName overrides GORM's default naming convention.
func (PayrollDTO) TableName() string {
	return "payrolls"
}

func fromDomain(payroll *workshop.Payroll) PayrollDTO {
	contract := payroll.Contract()
	date := payroll.Date()

	return PayrollDTO{
		ID:                  payroll.ID().Bytes(),
		ContractID:          contract.ID().Bytes(),
		MechanicNIF:         contract.Mechanic().NIF(),
		Year:                date.Year(),
		Month:               int(date.Month()),
		PaidOn:              date,
		MonthlyWage:         kernel.Cents(payroll.MonthlyWage()),
		ExtraWage:           kernel.Cents(payroll.ExtraWage()),
		ProductivityEarning: kernel.Cents(payroll.ProductivityEarning()),
		TrienniumEarning:    kernel.Cents(payroll.TrienniumEarning()),
		IncomeTax:           kernel.Cents(payroll.IncomeTax()),
		SocialSecurity:      kernel.Cents(payroll.SocialSecurity()),
	}
}
