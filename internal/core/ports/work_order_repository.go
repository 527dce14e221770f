package ports

import (
	"context"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/workshop"
)

// WorkOrderRepository stores work orders by their surrogate ID.
type WorkOrderRepository interface {
	Add(ctx context.Context, workOrder *workshop.WorkOrder) error

	// Get returns the work order with the given ID or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*workshop.WorkOrder, error)

	// GetAllFinished returns the work orders waiting to be invoiced, oldest first.
	GetAllFinished(ctx context.Context) ([]*workshop.WorkOrder, error)
}
