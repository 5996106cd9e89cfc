package customer

import (
	"errors"
	"strings"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a customer
	// without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly
	// initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents a customer in the CRM bounded context. It is an
// aggregate root holding identity, a display name, and the price of the
// customer's most recent order.
//
// The last order price is recorded by the caller (typically the checkout
// domain service) after an order total has been computed; the customer does
// not compute it itself. Since Money is immutable, the recorded value is safe
// to share.
type Customer struct {
	// id uniquely identifies the customer
	id kernel.UUID
	// name is the customer's display name
	name string
	// lastOrderPrice is the total of the most recent order, nil until recorded
	lastOrderPrice *kernel.Money
	// guard ensures the customer was created via NewCustomer
	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with a freshly generated identifier.
//
// Parameters:
//   - name: Display name (must contain at least one non-whitespace character)
//   - ids: Identifier generator used for the customer id
//
// Returns:
//   - *Customer: The created customer with no last order price recorded
//   - error: Validation error if the name is blank or the generator missing
func NewCustomer(name string, ids kernel.IDGenerator) (*Customer, error) {
	if ids == nil {
		return nil, errs.NewValueIsRequiredError("ids")
	}

	customer := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(ids.Next()),
		customer.setName(name),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate ensures the Customer was properly constructed through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// LastOrderPrice returns the recorded total of the customer's most recent
// order, or nil if none has been recorded yet. The returned Money is a copy.
func (c *Customer) LastOrderPrice() *kernel.Money {
	if c.lastOrderPrice == nil {
		return nil
	}

	price := *c.lastOrderPrice
	return &price
}

// SetLastOrderPrice records the total of the customer's most recent order.
// The price must be a constructed Money value; beyond that, consistency with
// an actual order total is the caller's responsibility.
func (c *Customer) SetLastOrderPrice(price kernel.Money) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := price.Validate(); err != nil {
		return err
	}

	c.lastOrderPrice = &price
	return nil
}

// setID validates and sets the customer identifier.
// Private setters are used only during construction.
func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setName validates and sets the display name.
// The name must contain at least one non-whitespace character.
func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
