package salesorder

import (
	"errors"
	"fmt"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrSalesOrderItemIsNotConstructed is returned when a SalesOrderItem instance
// was not created through the NewSalesOrderItem factory method.
var ErrSalesOrderItemIsNotConstructed = errors.New(
	"SalesOrderItem must be created via NewSalesOrderItem constructor")

// SalesOrderItem represents a single line of a sales order: a product, a
// positive quantity, and the unit price at which it was ordered. Items are
// created exclusively by the SalesOrder that owns them and are immutable
// after construction.
//
// SalesOrderItem follows these invariants:
//   - Must have valid item and order identifiers
//   - Must reference a valid product
//   - Quantity must be positive (greater than 0)
//   - Unit price must be a constructed Money value
type SalesOrderItem struct {
	// id is the unique identifier of the line item
	id kernel.UUID

	// orderID identifies the order this item belongs to
	orderID kernel.UUID

	// productID identifies the ordered product
	productID ProductID

	// quantity is the number of units ordered (always positive)
	quantity int

	// unitPrice is the price of a single unit in the order's currency
	unitPrice kernel.Money

	// guard ensures the item was created via NewSalesOrderItem
	guard guard.ConstructorGuard
}

// NewSalesOrderItem creates a line item with validation. This is the only way
// to create a valid SalesOrderItem; in practice it is called by
// SalesOrder.AddItem, which supplies a freshly generated item identifier.
//
// Parameters:
//   - id: Unique identifier for the item
//   - orderID: Identifier of the owning order
//   - productID: Identifier of the ordered product
//   - quantity: Number of units (must be positive)
//   - unitPrice: Price per unit (must be a constructed Money)
//
// Returns:
//   - *SalesOrderItem: The created item if all validations pass
//   - error: Validation error if any parameter is invalid
func NewSalesOrderItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID ProductID,
	quantity int,
	unitPrice kernel.Money,
) (*SalesOrderItem, error) {
	item := &SalesOrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was properly constructed through NewSalesOrderItem.
func (i *SalesOrderItem) Validate() error {
	if i == nil {
		return ErrSalesOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrSalesOrderItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
func (i *SalesOrderItem) IsEqual(other *SalesOrderItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *SalesOrderItem) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the order this item belongs to.
func (i *SalesOrderItem) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the identifier of the ordered product.
func (i *SalesOrderItem) ProductID() ProductID {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i *SalesOrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i *SalesOrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// CalculateItemTotal returns the line total: unit price multiplied by
// quantity, as a new Money in the unit price's currency. Pure operation.
//
// Example:
//
//	// unit price USD 50.00, quantity 2
//	total, err := item.CalculateItemTotal()
//	// total is USD 100.00
func (i *SalesOrderItem) CalculateItemTotal() (kernel.Money, error) {
	if err := i.Validate(); err != nil {
		return kernel.Money{}, err
	}

	return i.unitPrice.Multiply(decimal.NewFromInt(int64(i.quantity)))
}

// setID validates and sets the item identifier.
// Private setters are used only during construction.
func (i *SalesOrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setOrderID validates and sets the owning order identifier.
func (i *SalesOrderItem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

// setProductID validates and sets the product reference.
func (i *SalesOrderItem) setProductID(productID ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

// setQuantity validates and sets the quantity.
// Quantity must be positive (greater than 0).
func (i *SalesOrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

// setUnitPrice validates and sets the unit price.
func (i *SalesOrderItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
