package order

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrShippingAddressIsNotConstructed is returned when using an improperly
// initialized ShippingAddress.
var ErrShippingAddressIsNotConstructed = errors.New(
	"ShippingAddress must be created via NewShippingAddress constructor",
)

// ShippingAddress is the destination an order ships to. All five fields are
// required; construction fails with one joined error naming every missing
// field so callers can surface the full list to the user at once.
type ShippingAddress struct { //nolint:recvcheck //using for validation
	name    string
	address string
	city    string
	state   string
	zip     string

	guard guard.ConstructorGuard
}

// NewShippingAddress creates a validated shipping destination. Each empty
// field contributes a value-is-required error to the joined result.
func NewShippingAddress(name, address, city, state, zip string) (ShippingAddress, error) {
	sa := ShippingAddress{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sa.setName(name),
		sa.setAddress(address),
		sa.setCity(city),
		sa.setState(state),
		sa.setZip(zip),
	); err != nil {
		return ShippingAddress{}, err
	}

	return sa, nil
}

// Validate ensures the address was created through the constructor.
func (sa ShippingAddress) Validate() error {
	return sa.guard.Validate(ErrShippingAddressIsNotConstructed)
}

// Name returns the recipient name.
func (sa ShippingAddress) Name() string {
	return sa.name
}

// Address returns the street address line.
func (sa ShippingAddress) Address() string {
	return sa.address
}

// City returns the destination city.
func (sa ShippingAddress) City() string {
	return sa.city
}

// State returns the destination state.
func (sa ShippingAddress) State() string {
	return sa.state
}

// Zip returns the destination zip code.
func (sa ShippingAddress) Zip() string {
	return sa.zip
}

func (sa *ShippingAddress) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	sa.name = name
	return nil
}

func (sa *ShippingAddress) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	sa.address = address
	return nil
}

func (sa *ShippingAddress) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	sa.city = city
	return nil
}

func (sa *ShippingAddress) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	sa.state = state
	return nil
}

func (sa *ShippingAddress) setZip(zip string) error {
	if zip == "" {
		return errs.NewValueIsRequiredError("zip")
	}
	sa.zip = zip
	return nil
}
