package workshop

import (
	"errors"

	"workshop/internal/pkg/guard"
)

// Address is a postal address value. The zero value means "no address".
type Address struct {
	street  string
	city    string
	zipCode string
}

func NewAddress(street, city, zipCode string) (Address, error) {
	if err := errors.Join(
		guard.NotBlank(street, "street"),
		guard.NotBlank(city, "city"),
		guard.NotBlank(zipCode, "zip code"),
	); err != nil {
		return Address{}, err
	}
	return Address{street: street, city: city, zipCode: zipCode}, nil
}

func (a Address) Street() string { return a.street }
func (a Address) City() string { return a.city }
func (a Address) ZipCode() string { return a.zipCode }

// IsZero reports whether a is the absent address.
func (a Address) IsZero() bool {
	return a == Address{}
}
