// Package kernel provides core domain primitives shared across the sales
// bounded contexts. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Currency: A value object wrapping an ISO 4217 code with locale-aware amount formatting
//   - Money: An immutable (amount, currency) pair with same-currency arithmetic
//   - DateTime: An immutable timestamp that can never lie in the future
//   - IDGenerator and Clock: injectable capabilities for identifier generation
//     and the current time, so the rules above stay deterministic under test
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe to share once constructed.
package kernel
