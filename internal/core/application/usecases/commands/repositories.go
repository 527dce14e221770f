// Package commands contains the operations that change workshop state.
// Every command is built by its constructor, which validates the input, and
// is executed by a handler holding the repositories it needs.
package commands

import (
	"context"

	"workshop/internal/core/ports"
)

// Unit of work interfaces give command handlers transactional access to
// payroll storage. The entity graph is reached through the repositories
// injected into each handler.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PayrollRepoFactory provides access to the payroll repository within a
	// transaction.
	PayrollRepoFactory interface {
		PayrollRepository() ports.PayrollRepository
	}

	// PayrollUoW manages transactions for payroll generation.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.PayrollRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	PayrollUoW interface {
		TxManager
		PayrollRepoFactory
	}

	// PayrollUoWFactory creates new payroll unit of work instances.
	PayrollUoWFactory interface {
		Create() PayrollUoW
	}
)
