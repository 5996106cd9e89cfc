package services

import (
	"salesorders/internal/core/domain/model/customer"
	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/salesorder"
)

// Checkout is a domain service that carries an order total across aggregate
// boundaries: it computes the total of a sales order and records it as the
// customer's last order price.
//
// The computation itself belongs to the SalesOrder aggregate, and the
// recording belongs to the Customer aggregate; neither owns the other, so the
// coordination lives here.
//
// Example usage:
//
//	checkout := services.NewCheckout()
//	total, err := checkout.RecordOrderTotal(buyer, order)
//	if err != nil {
//	    // Handle failure; neither aggregate was changed
//	}
//	// buyer.LastOrderPrice() now equals total
type Checkout struct{}

// NewCheckout creates a new Checkout instance.
func NewCheckout() Checkout {
	return Checkout{}
}

// RecordOrderTotal computes the order's total amount and records it on the
// customer.
//
// Parameters:
//   - buyer: The customer to record the total on (must be valid)
//   - order: The order to total (must be valid)
//
// Returns:
//   - kernel.Money: The computed order total
//   - error: Validation error if either aggregate is invalid; on error the
//     customer is left unchanged
func (Checkout) RecordOrderTotal(buyer *customer.Customer, order *salesorder.SalesOrder) (kernel.Money, error) {
	if err := buyer.Validate(); err != nil {
		return kernel.Money{}, err
	}

	if err := order.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total, err := order.CalculateTotalAmount()
	if err != nil {
		return kernel.Money{}, err
	}

	if err = buyer.SetLastOrderPrice(total); err != nil {
		return kernel.Money{}, err
	}

	return total, nil
}
