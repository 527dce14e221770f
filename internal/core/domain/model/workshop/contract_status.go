package workshop

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// ContractStatus is the lifecycle state of a Contract. TERMINATED is final.
type ContractStatus int

const (
	ContractUnknown ContractStatus = iota
	ContractInForce
	ContractTerminated
)

var contractStatusNames = map[ContractStatus]string{
	ContractInForce:    "IN_FORCE",
	ContractTerminated: "TERMINATED",
}

func (s ContractStatus) String() string {
	if name, ok := contractStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s ContractStatus) Validate() error {
	if _, ok := contractStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid contract status", s))
	}
	return nil
}

func (s ContractStatus) Terminate() (ContractStatus, error) {
	if s != ContractInForce {
		return ContractUnknown, errs.NewStateConflictError("contract", s.String(), "terminate")
	}
	return ContractTerminated, nil
}
