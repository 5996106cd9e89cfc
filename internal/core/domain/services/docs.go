// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the sales order system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Checkout: A domain service for totaling an order and recording the amount
//     on the customer
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
