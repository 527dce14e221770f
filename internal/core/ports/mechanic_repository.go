package ports

import (
	"context"

	"workshop/internal/core/domain/model/workshop"
)

// MechanicRepository stores mechanics together with their contract history.
type MechanicRepository interface {
	// Add registers a new mechanic. The NIF must not be registered yet.
	Add(ctx context.Context, mechanic *workshop.Mechanic) error

	// Get returns the mechanic with the given NIF or an errs.ObjectNotFoundError.
	Get(ctx context.Context, nif string) (*workshop.Mechanic, error)

	// GetAll returns every mechanic ordered by NIF.
	GetAll(ctx context.Context) ([]*workshop.Mechanic, error)
}
