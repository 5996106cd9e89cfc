package salesorder

import (
	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/errs"
)

// ErrProductIDIsNotConstructed is returned when attempting to use an
// improperly initialized ProductID.
var ErrProductIDIsNotConstructed = errs.NewValueIsRequiredError(
	"productId must be created via NewProductID or ProductIDFromString constructors")

// ProductID is a value object identifying a product referenced by an order
// line. Two ProductID values with the same underlying identifier refer to the
// same product regardless of instance.
//
// The zero value of ProductID is invalid - use the constructors.
type ProductID struct {
	id kernel.UUID
}

// NewProductID creates a ProductID with a freshly generated identifier.
func NewProductID(ids kernel.IDGenerator) (ProductID, error) {
	if ids == nil {
		return ProductID{}, errs.NewValueIsRequiredError("ids")
	}

	return ProductID{id: ids.Next()}, nil
}

// ProductIDFromString creates a ProductID from an existing identifier string,
// for products whose identity is supplied by the caller.
func ProductIDFromString(s string) (ProductID, error) {
	id, err := kernel.UUIDFromString(s)
	if err != nil {
		return ProductID{}, errs.NewValueIsInvalidErrorWithCause("productId", err)
	}

	return ProductID{id: id}, nil
}

// ID returns the underlying identifier.
func (p ProductID) ID() kernel.UUID {
	return p.id
}

// String returns the identifier's string representation.
func (p ProductID) String() string {
	return p.id.String()
}

// IsEqual compares two product ids by identifier value.
func (p ProductID) IsEqual(other ProductID) bool {
	return p.id.IsEqual(other.id)
}

// Validate checks if the ProductID was properly constructed.
func (p ProductID) Validate() error {
	if err := p.id.Validate(); err != nil {
		return ErrProductIDIsNotConstructed
	}
	return nil
}
