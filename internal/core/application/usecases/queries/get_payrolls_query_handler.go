package queries

import (
	"context"
	"time"

	"workshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPayrollsQueryHandler reads the payrolls table.
type GetPayrollsQueryHandler struct {
	db *gorm.DB
}

func NewGetPayrollsQueryHandler(db *gorm.DB) GetPayrollsQueryHandler {
	return GetPayrollsQueryHandler{db: db}
}

// Handle returns the payrolls ordered by pay date. An unknown mechanic
// yields an empty list.
func (h GetPayrollsQueryHandler) Handle(
	ctx context.Context,
	query GetPayrollsQuery,
) ([]GetPayrollsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payrolls := make([]GetPayrollsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			contract_id,
			paid_on,
			monthly_wage,
			extra_wage,
			productivity_earning,
			triennium_earning,
			income_tax,
			social_security
		FROM payrolls
		WHERE mechanic_nif = ?
			AND year * 100 + month BETWEEN ? AND ?
		ORDER BY year, month, contract_id
	`, query.NIF(), period(query.From()), period(query.To())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPayrollsQueryResponse
		var id, contractID uuid.UUID

		err = rows.Scan(
			&id,
			&contractID,
			&resp.PaidOn,
			&resp.MonthlyWage,
			&resp.ExtraWage,
			&resp.ProductivityEarning,
			&resp.TrienniumEarning,
			&resp.IncomeTax,
			&resp.SocialSecurity,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ContractID, err = kernel.UUIDFromBytes(contractID[:]); err != nil {
			return nil, err
		}
		resp.PaidOn = kernel.DateOf(resp.PaidOn)
		payrolls = append(payrolls, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payrolls, nil
}

// period encodes a month as yyyymm, matching year * 100 + month.
func period(t time.Time) int {
	return t.Year()*100 + int(t.Month())
}
