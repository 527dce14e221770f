package ports

import (
	"context"

	"workshop/internal/core/domain/model/workshop"
)

// InvoiceRepository stores invoices by number.
type InvoiceRepository interface {
	// Add registers a new invoice. Its number must not be taken.
	Add(ctx context.Context, invoice *workshop.Invoice) error

	// Get returns the invoice with the given number or an errs.ObjectNotFoundError.
	Get(ctx context.Context, number int64) (*workshop.Invoice, error)
}
