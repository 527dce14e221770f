package workshop

import (
	"errors"
	"fmt"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/guard"
	"workshop/internal/pkg/relation"
)

var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

const (
	defaultEmail = "no-email"
	defaultPhone = "no-phone"
)

// Client is a customer of the workshop, identified by tax id (NIF). It owns
// vehicles and holds payment means.
type Client struct {
	nif     string
	name    string
	surname string
	email   string
	phone   string
	address Address

	vehicles     relation.Set[VehicleKey, *Vehicle]
	paymentMeans relation.Set[kernel.UUID, PaymentMean]

	guard guard.ConstructorGuard
}

// ClientOption sets an optional contact field of a Client.
type ClientOption func(*Client) error

func WithEmail(email string) ClientOption {
	return func(c *Client) error {
		if err := guard.NotBlank(email, "email"); err != nil {
			return err
		}
		c.email = email
		return nil
	}
}

func WithPhone(phone string) ClientOption {
	return func(c *Client) error {
		if err := guard.NotBlank(phone, "phone"); err != nil {
			return err
		}
		c.phone = phone
		return nil
	}
}

func WithAddress(address Address) ClientOption {
	return func(c *Client) error {
		c.address = address
		return nil
	}
}

// NewClient creates a client with placeholder email and phone unless options
// supply them.
func NewClient(nif, name, surname string, opts ...ClientOption) (*Client, error) {
	c := &Client{
		nif:     nif,
		name:    name,
		surname: surname,
		email:   defaultEmail,
		phone:   defaultPhone,
		guard:   guard.NewConstructorGuard(),
	}

	checks := []error{
		guard.NotBlank(nif, "nif"),
		guard.NotBlank(name, "name"),
		guard.NotBlank(surname, "surname"),
	}
	for _, opt := range opts {
		checks = append(checks, opt(c))
	}
	if err := errors.Join(checks...); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

func (c *Client) Key() string { return c.nif }

func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.nif == other.nif
}

func (c *Client) NIF() string { return c.nif }
func (c *Client) Name() string { return c.name }
func (c *Client) Surname() string { return c.surname }
func (c *Client) Email() string { return c.email }
func (c *Client) Phone() string { return c.phone }

// Address returns the client's address and whether one is set.
func (c *Client) Address() (Address, bool) {
	return c.address, !c.address.IsZero()
}

func (c *Client) Vehicles() []*Vehicle {
	return c.vehicles.Snapshot()
}

func (c *Client) PaymentMeans() []PaymentMean {
	return c.paymentMeans.Snapshot()
}

func (c *Client) String() string {
	return fmt.Sprintf("Client{nif=%s, name=%s %s}", c.nif, c.name, c.surname)
}
