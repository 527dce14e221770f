package workshop

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// WorkOrderStatus is the lifecycle state of a WorkOrder.
//
//	OPEN ──assign──> ASSIGNED ──finish──> FINISHED ──invoice──> INVOICED
//	  ^                 │                    │   ^                  │
//	  └────unassign─────┘                    │   └─back to finished─┘
//	  └───────────────reopen─────────────────┘
type WorkOrderStatus int

const (
	WorkOrderUnknown WorkOrderStatus = iota
	WorkOrderOpen
	WorkOrderAssigned
	WorkOrderFinished
	WorkOrderInvoiced
)

var workOrderStatusNames = map[WorkOrderStatus]string{
	WorkOrderOpen:     "OPEN",
	WorkOrderAssigned: "ASSIGNED",
	WorkOrderFinished: "FINISHED",
	WorkOrderInvoiced: "INVOICED",
}

// String returns the persisted name of the status, or "UNKNOWN".
func (s WorkOrderStatus) String() string {
	if name, ok := workOrderStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Validate rejects WorkOrderUnknown and values outside the enum.
func (s WorkOrderStatus) Validate() error {
	if _, ok := workOrderStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid work order status", s))
	}
	return nil
}

// AcceptsLedgerChanges reports whether interventions and substitutions may
// still be added to or removed from a work order in this status.
func (s WorkOrderStatus) AcceptsLedgerChanges() bool {
	return s == WorkOrderOpen || s == WorkOrderAssigned
}

func (s WorkOrderStatus) Assign() (WorkOrderStatus, error) {
	return s.transition(WorkOrderOpen, WorkOrderAssigned, "assign")
}

func (s WorkOrderStatus) Unassign() (WorkOrderStatus, error) {
	return s.transition(WorkOrderAssigned, WorkOrderOpen, "unassign")
}

func (s WorkOrderStatus) Finish() (WorkOrderStatus, error) {
	return s.transition(WorkOrderAssigned, WorkOrderFinished, "finish")
}

func (s WorkOrderStatus) Reopen() (WorkOrderStatus, error) {
	return s.transition(WorkOrderFinished, WorkOrderOpen, "reopen")
}

func (s WorkOrderStatus) Invoice() (WorkOrderStatus, error) {
	return s.transition(WorkOrderFinished, WorkOrderInvoiced, "invoice")
}

func (s WorkOrderStatus) BackToFinished() (WorkOrderStatus, error) {
	return s.transition(WorkOrderInvoiced, WorkOrderFinished, "return to finished")
}

func (s WorkOrderStatus) transition(from, to WorkOrderStatus, operation string) (WorkOrderStatus, error) {
	if s != from {
		return WorkOrderUnknown, errs.NewStateConflictError("work order", s.String(), operation)
	}
	return to, nil
}
