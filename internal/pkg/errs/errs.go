package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the error kinds the domain model can raise.
// Each concrete error type unwraps to its sentinel, so callers can classify
// failures with errors.Is without inspecting messages.
var (
	// ErrValueIsRequired indicates a required value was missing or empty.
	ErrValueIsRequired = errors.New("value is required")
	// ErrValueIsInvalid indicates a value failed a validation rule.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrInvalidState indicates an operation was invoked from a lifecycle
	// state that does not permit it.
	ErrInvalidState = errors.New("invalid state")
	// ErrCurrencyMismatch indicates an arithmetic operation combined money
	// values of different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// sanitize strips line breaks from values embedded in error messages so a
// single error always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError is returned when a required parameter is missing,
// empty, or consists only of whitespace.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) ValueIsRequiredError {
	return ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) ValueIsRequiredError {
	return ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError is returned when a parameter is present but violates a
// validation rule (malformed currency code, negative amount, future date).
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) ValueIsInvalidError {
	return ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause describing the violated rule.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) ValueIsInvalidError {
	return ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// InvalidStateError is returned when a state-machine operation is invoked from
// a state that does not permit it, such as confirming an already shipped order.
type InvalidStateError struct {
	Action string
	State  string
	Cause  error
}

// NewInvalidStateError creates an InvalidStateError for the given action and
// the state that rejected it.
func NewInvalidStateError(action string, state string) InvalidStateError {
	return InvalidStateError{Action: action, State: state}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an
// underlying cause.
func NewInvalidStateErrorWithCause(action string, state string, cause error) InvalidStateError {
	return InvalidStateError{Action: action, State: state, Cause: cause}
}

func (e InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: cannot %s an order that is %s (cause: %s)",
			ErrInvalidState, sanitize(e.Action), sanitize(e.State), e.Cause)
	}
	return fmt.Sprintf("%s: cannot %s an order that is %s", ErrInvalidState, sanitize(e.Action), sanitize(e.State))
}

func (e InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// CurrencyMismatchError is returned when money arithmetic combines operands
// denominated in different currencies.
type CurrencyMismatchError struct {
	LeftCode  string
	RightCode string
}

// NewCurrencyMismatchError creates a CurrencyMismatchError for the two
// currency codes involved.
func NewCurrencyMismatchError(leftCode string, rightCode string) CurrencyMismatchError {
	return CurrencyMismatchError{LeftCode: leftCode, RightCode: rightCode}
}

func (e CurrencyMismatchError) Error() string {
	return fmt.Sprintf("%s: %s vs %s", ErrCurrencyMismatch, sanitize(e.LeftCode), sanitize(e.RightCode))
}

func (e CurrencyMismatchError) Unwrap() error {
	return ErrCurrencyMismatch
}
