// Package workshop is the domain model of an automotive repair workshop: vehicles
// and their work orders, the mechanics who carry out interventions, the spare
// parts those interventions consume, invoices settled through payment means, and
// the mechanics' employment contracts with their payroll history.
//
// The package is an in-memory entity graph. Every relationship between two
// entities is navigable from both sides and is only ever changed by the
// functions in associations.go, so that if A references B then B's collection
// contains A and vice versa. Collections handed out by getters are snapshots.
//
// Three state machines drive the graph:
//
//	WorkOrder: OPEN <-> ASSIGNED -> FINISHED -> INVOICED
//	                ^                  |   ^       |
//	                +---- reopen ------+   +-------+ (removed from an unpaid invoice)
//	Invoice:   NOT_YET_PAID -> PAID
//	Contract:  IN_FORCE -> TERMINATED
//
// Operations fail with one of two error kinds from internal/pkg/errs:
// invalid-argument (errs.ErrInvalidArgument) for malformed input, and
// state-conflict (errs.ErrStateConflict) when the entity's state forbids the
// operation. Every operation validates completely before it mutates anything.
//
// Money is represented with shopspring/decimal and rounded half-up to cents
// where it is stored (work order, invoice, settlement and payroll amounts).
package workshop
