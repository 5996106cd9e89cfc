package salesorder

import (
	"errors"
	"strings"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrSalesOrderIsNotConstructed is returned when a SalesOrder instance was
	// not created through the NewSalesOrder factory method.
	ErrSalesOrderIsNotConstructed = errors.New("SalesOrder must be created via NewSalesOrder constructor")

	// ErrCustomerIDIsRequired is returned when attempting to create an order
	// without a customer id.
	ErrCustomerIDIsRequired = errs.NewValueIsRequiredError("customerId")
)

// SalesOrder represents a sales order in the system. It is the aggregate root
// that owns the order's line items and manages the order lifecycle from
// creation through confirmation and shipping, or cancellation.
//
// SalesOrder follows these invariants:
//   - Must reference a customer (non-blank customer id)
//   - Must have a valid currency and ordering timestamp
//   - The item list is append-only and only mutable while the status permits
//     adding items; items are owned exclusively by the order that created them
//   - Status transitions follow the state machine defined on Status
//   - Can only be created through the NewSalesOrder constructor
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type SalesOrder struct {
	// id is the unique identifier of the order
	id kernel.UUID

	// customerID references the customer placing the order
	customerID string

	// items are the order lines, in insertion order
	items []*SalesOrderItem

	// orderedAt is the instant the order was placed
	orderedAt kernel.DateTime

	// currency is the currency every item price is denominated in
	currency kernel.Currency

	// status is the current state in the order lifecycle
	status Status

	// ids mints identifiers for the order's line items
	ids kernel.IDGenerator

	// guard ensures the order was created via NewSalesOrder
	guard guard.ConstructorGuard
}

// NewSalesOrder creates a SalesOrder with validation. This is the only way to
// create a valid order, ensuring all business invariants are maintained.
//
// Parameters:
//   - customerID: Identifier of the customer placing the order (must be non-blank)
//   - currency: Currency of the order (must be properly constructed)
//   - orderedAt: When the order was placed (must be properly constructed;
//     use kernel.NewDateTime for "now")
//   - ids: Identifier generator used for the order id and its item ids
//
// Returns:
//   - *SalesOrder: The created order if all validations pass, in Pending
//     status with an empty item list
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	usd, _ := kernel.NewCurrency("USD")
//	orderedAt, _ := kernel.NewDateTime(clock)
//	order, err := NewSalesOrder(customer.ID().String(), usd, orderedAt, ids)
//	if err != nil {
//	    // Handle validation error
//	}
func NewSalesOrder(
	customerID string,
	currency kernel.Currency,
	orderedAt kernel.DateTime,
	ids kernel.IDGenerator,
) (*SalesOrder, error) {
	if ids == nil {
		return nil, errs.NewValueIsRequiredError("ids")
	}

	order := &SalesOrder{
		status: Pending,
		ids:    ids,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(ids.Next()),
		order.setCustomerID(customerID),
		order.setCurrency(currency),
		order.setOrderedAt(orderedAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the SalesOrder was properly constructed through
// NewSalesOrder. This prevents bypassing validation by directly instantiating
// the struct.
func (o *SalesOrder) Validate() error {
	if o == nil {
		return ErrSalesOrderIsNotConstructed
	}
	return o.guard.Validate(ErrSalesOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *SalesOrder) IsEqual(other *SalesOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *SalesOrder) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *SalesOrder) CustomerID() string {
	return o.customerID
}

// Items returns the order's line items in insertion order.
// The returned slice is a copy; the item list itself can only change through
// AddItem.
func (o *SalesOrder) Items() []*SalesOrderItem {
	items := make([]*SalesOrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// OrderedAt returns the instant the order was placed.
func (o *SalesOrder) OrderedAt() kernel.DateTime {
	return o.orderedAt
}

// Currency returns the order's currency.
func (o *SalesOrder) Currency() kernel.Currency {
	return o.currency
}

// Status returns the current status of the order.
func (o *SalesOrder) Status() Status {
	return o.status
}

// CanAddItems reports whether the order still accepts items.
// Items can be added while the order is Pending or Confirmed. Pure query.
func (o *SalesOrder) CanAddItems() bool {
	return o.status.CanAddItems()
}

// AddItem appends a new line item to the order.
//
// This method enforces the following business rules:
//   - The order must be in a status that permits adding items
//     (Pending or Confirmed)
//   - The product id must be valid
//   - The quantity must be positive
//   - The unit price amount must not be negative
//
// The unit price is denominated in the order's currency. All validation
// happens before the item list is touched; on any failure the order is left
// unchanged. Items are appended in insertion order with no deduplication.
//
// Parameters:
//   - productID: The product being ordered
//   - quantity: Number of units (must be positive)
//   - unitPriceAmount: Price per unit in the order's currency (must not be negative)
//
// Returns:
//   - nil on success
//   - error if the status forbids adding items or any argument is invalid
func (o *SalesOrder) AddItem(productID ProductID, quantity int, unitPriceAmount decimal.Decimal) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.CanAddItems() {
		return errs.NewInvalidStateError("add items to", o.status.String())
	}

	if err := productID.Validate(); err != nil {
		return err
	}

	unitPrice, err := kernel.NewMoney(unitPriceAmount, o.currency)
	if err != nil {
		return err
	}

	item, err := NewSalesOrderItem(o.ids.Next(), o.id, productID, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// CalculateTotalAmount returns the order total: the item totals folded
// left-to-right with Add, starting from a zero Money in the order's currency.
// An order without items totals zero. Pure operation.
//
// Example:
//
//	// items: qty 2 @ USD 100.00, qty 20 @ USD 50.00
//	total, err := order.CalculateTotalAmount()
//	// total is USD 1200.00
func (o *SalesOrder) CalculateTotalAmount() (kernel.Money, error) {
	if err := o.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total, err := kernel.NewZeroMoney(o.currency)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range o.items {
		itemTotal, err := item.CalculateItemTotal()
		if err != nil {
			return kernel.Money{}, err
		}

		total, err = total.Add(itemTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// GetFormattedOrderedAt returns the ordering instant in its human-readable
// rendering, e.g. "May 15, 2023 10:30 AM".
func (o *SalesOrder) GetFormattedOrderedAt() string {
	return o.orderedAt.Format()
}

// Confirm transitions the order from Pending to Confirmed.
//
// Returns:
//   - nil on successful confirmation
//   - error if the order is not Pending, including repeated confirmations
func (o *SalesOrder) Confirm() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship transitions the order from Confirmed to Shipped.
//
// Returns:
//   - nil on successful shipment
//   - error if the order has not been confirmed
func (o *SalesOrder) Ship() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Canceled.
//
// Cancellation is only reachable from Confirmed or Shipped; a Pending order
// cannot be canceled, and canceling twice fails.
//
// Returns:
//   - nil on successful cancellation
//   - error if the current status forbids cancellation
func (o *SalesOrder) Cancel() error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order identifier.
// Private setters are used only during construction.
func (o *SalesOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer reference.
// The customer id must contain at least one non-whitespace character.
func (o *SalesOrder) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return ErrCustomerIDIsRequired
	}
	o.customerID = customerID
	return nil
}

// setCurrency validates and sets the order currency.
func (o *SalesOrder) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	o.currency = currency
	return nil
}

// setOrderedAt validates and sets the ordering instant.
func (o *SalesOrder) setOrderedAt(orderedAt kernel.DateTime) error {
	if err := orderedAt.Validate(); err != nil {
		return err
	}
	o.orderedAt = orderedAt
	return nil
}
