package guard_test

import (
	"errors"
	"testing"

	"salesorders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := g.Validate(customError)

		// Then
		require.NoError(t, err)

		// Nil error falls back to the default, still passes for constructed guards
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used by
// the value objects in this repository to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type money struct {
		amount   int
		currency string
		guard    guard.ConstructorGuard
	}

	var errMoneyNotConstructed = errors.New("Money must be created via NewMoney")

	newMoney := func(amount int, currency string) (money, error) {
		if amount < 0 {
			return money{}, errors.New("amount cannot be negative")
		}
		if currency == "" {
			return money{}, errors.New("currency is required")
		}
		return money{
			amount:   amount,
			currency: currency,
			guard:    guard.NewConstructorGuard(),
		}, nil
	}

	validateMoney := func(m money) error {
		return m.guard.Validate(errMoneyNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		m, err := newMoney(100, "USD")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateMoney(m))
		assert.Equal(t, 100, m.amount)
		assert.Equal(t, "USD", m.currency)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		// Given
		var m money // zero value

		// When
		err := validateMoney(m)

		// Then
		require.Error(t, err)
		assert.Equal(t, errMoneyNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newMoney(-100, "USD")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount cannot be negative")

		_, err = newMoney(100, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "currency is required")
	})
}

// TestConstructorGuardCopies verifies that a guard keeps its state when the
// enclosing value object is passed around by value.
func TestConstructorGuardCopies(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	gCopy := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, gCopy.Validate(testError))
}
