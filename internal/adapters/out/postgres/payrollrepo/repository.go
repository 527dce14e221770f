package payrollrepo

import (
	"context"
	"errors"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"

	"gorm.io/gorm"
)

// GormPayrollRepository implements PayrollRepository using GORM.
type GormPayrollRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPayrollRepository creates a new GORM payroll repository.
func NewGormPayrollRepository(db *gorm.DB, tracker aggregateTracker) *GormPayrollRepository {
	return &GormPayrollRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add stores a payroll that is still linked to its contract. A second
// payroll of the same mechanic and month is refused with a state conflict.
func (r *GormPayrollRepository) Add(ctx context.Context, payroll *workshop.Payroll) error {
	if err := payroll.Validate(); err != nil {
		return err
	}
	if payroll.Contract() == nil {
		return errs.NewValueIsRequiredError("payroll contract")
	}

	dto := fromDomain(payroll)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewStateConflictErrorWithCause("payroll", "STORED", "add", err)
		}
		return err
	}

	r.tracker.TrackAggregate(payroll.ID(), payroll)
	return nil
}

// ExistsForPeriod reports whether the mechanic has a stored payroll for the
// month.
func (r *GormPayrollRepository) ExistsForPeriod(
	ctx context.Context,
	nif string,
	year int,
	month time.Month,
) (bool, error) {
	if err := guard.NotBlank(nif, "nif"); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollDTO{}).
		Where("mechanic_nif = ? AND year = ? AND month = ?", nif, year, int(month)).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
