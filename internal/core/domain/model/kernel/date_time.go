package kernel

import (
	"fmt"
	"time"

	"salesorders/internal/pkg/errs"
	"salesorders/internal/pkg/guard"
)

// dateTimeDisplayLayout is the human-readable rendering used by Format.
// Go carries no locale tables for date names, so the layout is fixed English;
// localized rendering in this model is limited to currency amounts.
const dateTimeDisplayLayout = "Jan 2, 2006 3:04 PM"

// ErrDateTimeIsNotConstructed is returned when attempting to use an improperly
// initialized DateTime. DateTimes must be created via one of the constructors.
var ErrDateTimeIsNotConstructed = errs.NewValueIsRequiredError(
	"dateTime must be created via NewDateTime, DateTimeFromTime, or ParseDateTime constructors")

// DateTime is an immutable value object wrapping a timestamp that is
// guaranteed not to lie in the future relative to the clock supplied at
// construction time.
//
// The zero value of DateTime is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	clock := kernel.NewSystemClock()
//	orderedAt, err := kernel.ParseDateTime("2023-05-15T10:30:00Z", clock)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(orderedAt) // Output: 2023-05-15T10:30:00Z
type DateTime struct { //nolint:recvcheck //using for validation
	instant time.Time
	guard   guard.ConstructorGuard
}

// NewDateTime creates a DateTime holding the clock's current instant.
// This is the default when a caller does not supply an explicit timestamp.
func NewDateTime(clock Clock) (DateTime, error) {
	if clock == nil {
		return DateTime{}, errs.NewValueIsRequiredError("clock")
	}

	return DateTime{
		instant: clock.Now(),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// DateTimeFromTime creates a DateTime from an explicit instant.
// The instant must not be after the clock's current time; future timestamps
// fail with a validation error.
func DateTimeFromTime(instant time.Time, clock Clock) (DateTime, error) {
	if clock == nil {
		return DateTime{}, errs.NewValueIsRequiredError("clock")
	}

	d := DateTime{
		guard: guard.NewConstructorGuard(),
	}

	if err := d.setInstant(instant, clock); err != nil {
		return DateTime{}, err
	}

	return d, nil
}

// ParseDateTime creates a DateTime from an RFC 3339 string such as
// "2023-05-15T10:30:00Z". It fails if the string cannot be parsed or if the
// parsed instant lies in the future.
func ParseDateTime(value string, clock Clock) (DateTime, error) {
	instant, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return DateTime{}, errs.NewValueIsInvalidErrorWithCause("instant", err)
	}

	return DateTimeFromTime(instant, clock)
}

// Validate checks if the DateTime was properly constructed via a constructor.
func (d DateTime) Validate() error {
	return d.guard.Validate(ErrDateTimeIsNotConstructed)
}

// Time returns the raw instant.
func (d DateTime) Time() time.Time {
	return d.instant
}

// Format returns a human-readable rendering of the instant,
// e.g. "May 15, 2023 10:30 AM".
func (d DateTime) Format() string {
	return d.instant.Format(dateTimeDisplayLayout)
}

// String returns the canonical ISO-8601 (RFC 3339) representation.
// Implements fmt.Stringer.
func (d DateTime) String() string {
	return d.instant.Format(time.RFC3339)
}

// IsEqual compares two date-times by instant.
// Both values must be properly constructed for the comparison to succeed.
func (d DateTime) IsEqual(other DateTime) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}
	if err := other.Validate(); err != nil {
		return false, err
	}

	return d.instant.Equal(other.instant), nil
}

// setInstant validates and sets the instant.
// Note: pointer receiver for self-encapsulated validation during construction,
// while all public methods use value receivers.
func (d *DateTime) setInstant(instant time.Time, clock Clock) error {
	if instant.After(clock.Now()) {
		return errs.NewValueIsInvalidErrorWithCause("instant",
			fmt.Errorf("%s is in the future", instant.Format(time.RFC3339)))
	}

	d.instant = instant
	return nil
}
