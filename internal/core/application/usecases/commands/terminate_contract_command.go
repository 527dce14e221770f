package commands

import (
	"errors"
	"strings"
	"time"

	"workshop/internal/pkg/guard"
)

var (
	ErrTerminateContractCommandIsNotConstructed = errors.New(
		"TerminateContractCommand must be created via NewTerminateContractCommand constructor",
	)
	ErrNIFIsRequired             = errors.New("nif is required")
	ErrTerminationDateIsRequired = errors.New("termination date is required")
)

// TerminateContractCommand requests the termination of the contract in force
// of a mechanic.
type TerminateContractCommand struct { //nolint:recvcheck //using for validation
	nif  string
	date time.Time

	guard guard.ConstructorGuard
}

func NewTerminateContractCommand(nif string, date time.Time) (TerminateContractCommand, error) {
	cmd := TerminateContractCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNIF(nif),
		cmd.setDate(date),
	); err != nil {
		return TerminateContractCommand{}, err
	}

	return cmd, nil
}

func (c TerminateContractCommand) Validate() error {
	return c.guard.Validate(ErrTerminateContractCommandIsNotConstructed)
}

func (c TerminateContractCommand) NIF() string {
	return c.nif
}

func (c TerminateContractCommand) Date() time.Time {
	return c.date
}

func (c *TerminateContractCommand) setNIF(nif string) error {
	if strings.TrimSpace(nif) == "" {
		return ErrNIFIsRequired
	}

	c.nif = nif
	return nil
}

func (c *TerminateContractCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrTerminationDateIsRequired
	}

	c.date = date
	return nil
}
