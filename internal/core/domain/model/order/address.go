package order

import (
	"errors"

	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the pickup or delivery endpoint of a shipment: a city, a street
// address, and the contact person at that location. City names must match
// route city names exactly for distance lookup to succeed.
type Address struct { //nolint:recvcheck //using for validation
	city         string
	street       string
	contactName  string
	contactPhone string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. City, street, and contact name are
// required; contact phone must have at least 10 characters when provided
// by clients placing orders.
func NewAddress(city, street, contactName, contactPhone string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setCity(city),
		addr.setStreet(street),
		addr.setContact(contactName, contactPhone),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// Street returns the street address.
func (a Address) Street() string {
	return a.street
}

// ContactName returns the contact person's name.
func (a Address) ContactName() string {
	return a.contactName
}

// ContactPhone returns the contact person's phone number.
func (a Address) ContactPhone() string {
	return a.contactPhone
}

func (a *Address) setCity(city string) error {
	if len(city) < 2 {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setStreet(street string) error {
	if len(street) < 2 {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setContact(name, phone string) error {
	if len(name) < 2 {
		return errs.NewValueIsRequiredError("contactName")
	}
	if len(phone) < 10 {
		return errs.NewValueIsRequiredError("contactPhone")
	}
	a.contactName = name
	a.contactPhone = phone
	return nil
}
