package salesorder

import (
	"fmt"

	"salesorders/internal/pkg/errs"
)

// Status represents the lifecycle state of a sales order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Shipped ──> Canceled
//	                │                        ▲
//	                └────────────────────────┘
//
// A pending order cannot be canceled; cancellation is only reachable once an
// order has been confirmed. Shipped and Canceled are terminal for every
// operation except the Shipped -> Canceled transition.
//
// Status is a value object that validates state transitions and provides
// string representations for display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Pending orders accept items and can be confirmed.
	Pending

	// Confirmed indicates the order has been accepted.
	// Confirmed orders still accept items and can be shipped or canceled.
	Confirmed

	// Shipped indicates the order has left the warehouse.
	// Shipped orders accept no more items; cancellation is still possible.
	Shipped

	// Canceled indicates the order was canceled.
	// This is a final state with no further transitions allowed.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Canceled:  "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Canceled:  "CANCELED",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Shipped, Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the display name of the status, e.g. "PENDING".
// Unknown and out-of-range values render as "UNKNOWN". Implements
// fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanAddItems reports whether the status still permits adding items.
// Items can be added while the order is Pending or Confirmed; a Shipped or
// Canceled order is closed for changes. Pure query, no side effects.
func (s Status) CanAddItems() bool {
	return s != Canceled && s != Shipped
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Any other current status, including Confirmed itself, fails with an
// invalid-state error.
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("confirm", s.String())
	}

	return Confirmed, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Confirmed -> Shipped
//
// Returns:
//   - (Shipped, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Ship() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidStateError("ship", s.String())
	}

	return Shipped, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Confirmed -> Canceled
//   - Shipped -> Canceled
//
// A Pending order cannot be canceled, and canceling an already Canceled
// order fails as well.
//
// Returns:
//   - (Canceled, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if s != Confirmed && s != Shipped {
		return 0, errs.NewInvalidStateError("cancel", s.String())
	}

	return Canceled, nil
}
