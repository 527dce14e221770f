package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"
)

// PaymentMeanRepository stores payment means of every kind.
type PaymentMeanRepository interface {
	Add(ctx context.Context, paymentMean workshop.PaymentMean) error

	// Get returns the payment mean with the given ID or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (workshop.PaymentMean, error)
}
