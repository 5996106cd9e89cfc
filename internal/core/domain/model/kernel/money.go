package kernel

import (
	"errors"
	"fmt"

	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney or NewZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or NewZeroMoney constructors")

// Money is an immutable value object pairing a non-negative decimal amount
// with a currency. All arithmetic returns a new instance and is restricted to
// operands of the same currency.
//
// The zero value of Money is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	usd, _ := kernel.NewCurrency("USD")
//	price, err := kernel.NewMoney(decimal.NewFromInt(100), usd)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(price) // Output: USD 100.00
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency Currency
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money from an amount and a currency.
//
// Parameters:
//   - amount: The monetary amount (must not be negative)
//   - currency: The currency of the amount (must be properly constructed)
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the amount is negative or the currency invalid
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(m.setAmount(amount), m.setCurrency(currency)); err != nil {
		return Money{}, err
	}

	return m, nil
}

// NewZeroMoney creates a Money with a zero amount in the given currency.
// It is the identity element for Add and the starting point for totals.
func NewZeroMoney(currency Currency) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Validate checks if the Money was properly constructed via a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency of the amount.
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns a new Money holding the sum of both amounts.
// Both operands must be properly constructed and denominated in the same
// currency; adding across currencies fails with a CurrencyMismatchError.
//
// Example:
//
//	a, _ := NewMoney(decimal.NewFromInt(100), usd)
//	b, _ := NewMoney(decimal.NewFromInt(50), usd)
//	sum, err := a.Add(b)
//	// sum is USD 150.00, err is nil
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}

	if m.currency.Code() != other.currency.Code() {
		return Money{}, errs.NewCurrencyMismatchError(m.currency.Code(), other.currency.Code())
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Multiply returns a new Money with the amount scaled by factor.
// The factor must not be negative. Multiplying by zero yields a zero amount,
// multiplying by one is the identity.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	if factor.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor",
			fmt.Errorf("%s is negative", factor))
	}

	return NewMoney(m.amount.Mul(factor), m.currency)
}

// IsEqual compares two money values by currency code and amount.
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.currency.Code() == other.currency.Code() && m.amount.Equal(other.amount), nil
}

// Format renders the amount as a localized currency string, delegating to the
// currency. An empty locale means DefaultLocale.
func (m Money) Format(locale string) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}

	return m.currency.FormatAmount(m.amount, locale)
}

// String returns the canonical representation "CODE AMOUNT" with two decimals,
// e.g. "USD 100.00". Not locale-formatted. Implements fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency.Code(), m.amount.StringFixed(2))
}

// setAmount validates and sets the amount.
// Note: pointer receiver for self-encapsulated validation during construction,
// while all public methods use value receivers.
func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	m.amount = amount
	return nil
}

// setCurrency validates and sets the currency.
func (m *Money) setCurrency(currency Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	m.currency = currency
	return nil
}
