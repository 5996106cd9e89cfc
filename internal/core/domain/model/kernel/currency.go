package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is the locale used for amount formatting when the caller does
// not specify one.
const DefaultLocale = "en-US"

// currencyCodePattern accepts ISO-4217-shaped codes: exactly three ASCII
// letters. It is a shape check only, not a registry lookup.
var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// ErrCurrencyIsNotConstructed is returned when attempting to use an improperly
// initialized Currency. Currencies must be created via NewCurrency.
var ErrCurrencyIsNotConstructed = errs.NewValueIsRequiredError(
	"currency must be created via NewCurrency constructor")

// Currency is an immutable value object wrapping a three-letter ISO 4217
// currency code. Beyond carrying the code it knows how to render an amount as
// a localized currency string.
//
// The zero value of Currency is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	usd, err := kernel.NewCurrency("USD")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(usd.Code()) // Output: USD
type Currency struct { //nolint:recvcheck //using for validation
	code  string
	guard guard.ConstructorGuard
}

// NewCurrency creates a Currency from a three-letter code.
// The code must match the ISO 4217 shape (exactly three letters); it is
// normalized to upper case. Returns a validation error for any other input.
//
// Example:
//
//	pen, err := NewCurrency("pen")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(pen.Code()) // Output: PEN
func NewCurrency(code string) (Currency, error) {
	c := Currency{
		guard: guard.NewConstructorGuard(),
	}

	if err := c.setCode(code); err != nil {
		return Currency{}, err
	}

	return c, nil
}

// Validate checks if the Currency was properly constructed via NewCurrency.
func (c Currency) Validate() error {
	return c.guard.Validate(ErrCurrencyIsNotConstructed)
}

// Code returns the upper-case three-letter currency code.
func (c Currency) Code() string {
	return c.code
}

// String returns the currency code. Implements fmt.Stringer.
func (c Currency) String() string {
	return c.code
}

// IsEqual compares two currencies by code.
// Both currencies must be properly constructed for the comparison to succeed.
func (c Currency) IsEqual(other Currency) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return c.code == other.code, nil
}

// FormatAmount renders the given amount as a currency string for the given
// BCP 47 locale, e.g. "$1,234.56" for USD in en-US. An empty locale means
// DefaultLocale. Returns a validation error if the locale cannot be parsed or
// the code is not a currency the formatting tables know about.
//
// Example:
//
//	usd, _ := NewCurrency("USD")
//	s, err := usd.FormatAmount(decimal.NewFromInt(1200), "en-US")
//	if err != nil {
//	    // Handle formatting error
//	}
//	fmt.Println(s) // Output: $1,200.00
func (c Currency) FormatAmount(amount decimal.Decimal, locale string) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("locale", err)
	}

	unit, err := currency.ParseISO(c.code)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("currency code",
			fmt.Errorf("%s is not a formattable currency: %w", c.code, err))
	}

	value, _ := amount.Round(2).Float64()
	printer := message.NewPrinter(tag)
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(value))), nil
}

// setCode validates and sets the currency code.
// Note: pointer receiver for self-encapsulated validation during construction,
// while all public methods use value receivers.
func (c *Currency) setCode(code string) error {
	if !currencyCodePattern.MatchString(code) {
		return errs.NewValueIsInvalidErrorWithCause("currency code",
			fmt.Errorf("%q is not a three-letter ISO 4217 code", code))
	}

	c.code = strings.ToUpper(code)
	return nil
}
