// Package ports defines the contracts between the workshop core and its
// adapters.
//
// The entity graph lives in memory and is reached through the Mechanic,
// WorkOrder, Invoice and PaymentMean repositories. Generated payrolls are the
// only persisted records; they are written through a UnitOfWork.
package ports
