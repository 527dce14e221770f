package workshop

import (
	"fmt"

	"workshop/internal/pkg/errs"
)

// InvoiceStatus is the settlement state of an Invoice. PAID is final.
type InvoiceStatus int

const (
	InvoiceUnknown InvoiceStatus = iota
	InvoiceNotYetPaid
	InvoicePaid
)

var invoiceStatusNames = map[InvoiceStatus]string{
	InvoiceNotYetPaid: "NOT_YET_PAID",
	InvoicePaid:       "PAID",
}

func (s InvoiceStatus) String() string {
	if name, ok := invoiceStatusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

func (s InvoiceStatus) Validate() error {
	if _, ok := invoiceStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid invoice status", s))
	}
	return nil
}

// ValidateChange fails unless the invoice can still be modified (work orders
// added or removed, charges made or undone).
func (s InvoiceStatus) ValidateChange(operation string) error {
	if s != InvoiceNotYetPaid {
		return errs.NewStateConflictError("invoice", s.String(), operation)
	}
	return nil
}

func (s InvoiceStatus) Settle() (InvoiceStatus, error) {
	if err := s.ValidateChange("settle"); err != nil {
		return InvoiceUnknown, err
	}
	return InvoicePaid, nil
}
