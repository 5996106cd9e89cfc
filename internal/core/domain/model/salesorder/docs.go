// Package salesorder provides domain entities and business logic for order
// management in the sales bounded context. It implements the SalesOrder
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - SalesOrder: The aggregate root that owns the order's line items and lifecycle
//   - SalesOrderItem: An immutable line item with a derived line total
//   - ProductID: A value object identifying the ordered product
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must reference a customer and carry a valid currency and timestamp
//   - Order status follows a defined workflow: PENDING -> CONFIRMED -> SHIPPED,
//     with CANCELED reachable from CONFIRMED and SHIPPED only
//   - Items can be added while the order is PENDING or CONFIRMED
//   - The order total is the fold of the item totals in the order's currency
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package salesorder
