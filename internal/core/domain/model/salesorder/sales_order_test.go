package salesorder_test

import (
	"testing"
	"time"

	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/salesorder"
	"salesorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderTestNow = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

type orderFixture struct {
	ids       kernel.IDGenerator
	clock     kernel.Clock
	usd       kernel.Currency
	orderedAt kernel.DateTime
}

func newOrderFixture(t *testing.T) orderFixture {
	t.Helper()

	clock := kernel.NewFixedClock(orderTestNow)
	usd, err := kernel.NewCurrency("USD")
	require.NoError(t, err)
	orderedAt, err := kernel.NewDateTime(clock)
	require.NoError(t, err)

	return orderFixture{
		ids:       kernel.NewRandomIDGenerator(),
		clock:     clock,
		usd:       usd,
		orderedAt: orderedAt,
	}
}

func (f orderFixture) newOrder(t *testing.T) *salesorder.SalesOrder {
	t.Helper()

	o, err := salesorder.NewSalesOrder("customer-1", f.usd, f.orderedAt, f.ids)
	require.NoError(t, err)
	return o
}

func (f orderFixture) newProductID(t *testing.T) salesorder.ProductID {
	t.Helper()

	p, err := salesorder.NewProductID(f.ids)
	require.NoError(t, err)
	return p
}

func TestNewSalesOrder(t *testing.T) {
	f := newOrderFixture(t)

	t.Run("should create valid pending order with empty items", func(t *testing.T) {
		o, err := salesorder.NewSalesOrder("customer-1", f.usd, f.orderedAt, f.ids)

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		require.NoError(t, o.ID().Validate())
		assert.Equal(t, "customer-1", o.CustomerID())
		assert.Equal(t, salesorder.Pending, o.Status())
		assert.Empty(t, o.Items())
		assert.Equal(t, "USD", o.Currency().Code())
		assert.True(t, o.CanAddItems())
	})

	t.Run("should generate unique order identifiers", func(t *testing.T) {
		o1 := f.newOrder(t)
		o2 := f.newOrder(t)

		assert.False(t, o1.IsEqual(o2))
	})

	t.Run("should fail with empty customer id", func(t *testing.T) {
		o, err := salesorder.NewSalesOrder("", f.usd, f.orderedAt, f.ids)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customerId")
	})

	t.Run("should fail with whitespace customer id", func(t *testing.T) {
		o, err := salesorder.NewSalesOrder("   \t", f.usd, f.orderedAt, f.ids)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerId")
	})

	t.Run("should fail with zero value currency", func(t *testing.T) {
		var currency kernel.Currency

		o, err := salesorder.NewSalesOrder("customer-1", currency, f.orderedAt, f.ids)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "currency must be created")
	})

	t.Run("should fail with zero value ordered-at", func(t *testing.T) {
		var orderedAt kernel.DateTime

		o, err := salesorder.NewSalesOrder("customer-1", f.usd, orderedAt, f.ids)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "dateTime must be created")
	})

	t.Run("should fail without an id generator", func(t *testing.T) {
		o, err := salesorder.NewSalesOrder("customer-1", f.usd, f.orderedAt, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "ids")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var currency kernel.Currency
		var orderedAt kernel.DateTime

		o, err := salesorder.NewSalesOrder(" ", currency, orderedAt, f.ids)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerId")
		assert.Contains(t, err.Error(), "currency must be created")
		assert.Contains(t, err.Error(), "dateTime must be created")
	})
}

func TestSalesOrder_Validate(t *testing.T) {
	f := newOrderFixture(t)

	t.Run("should pass validation for constructed order", func(t *testing.T) {
		o := f.newOrder(t)

		require.NoError(t, o.Validate())
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *salesorder.SalesOrder

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, salesorder.ErrSalesOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o salesorder.SalesOrder

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, salesorder.ErrSalesOrderIsNotConstructed, err)
	})
}

func TestSalesOrder_AddItem(t *testing.T) {
	f := newOrderFixture(t)

	t.Run("should add item to pending order", func(t *testing.T) {
		o := f.newOrder(t)
		productID := f.newProductID(t)

		err := o.AddItem(productID, 2, decimal.NewFromInt(100))

		require.NoError(t, err)
		items := o.Items()
		require.Len(t, items, 1)
		assert.True(t, items[0].ProductID().IsEqual(productID))
		assert.Equal(t, 2, items[0].Quantity())
		assert.Equal(t, "USD 100.00", items[0].UnitPrice().String())
		assert.True(t, items[0].OrderID().IsEqual(o.ID()))
	})

	t.Run("should add item to confirmed order", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.Confirm())

		err := o.AddItem(f.newProductID(t), 1, decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should preserve insertion order without dedup", func(t *testing.T) {
		o := f.newOrder(t)
		productID := f.newProductID(t)

		require.NoError(t, o.AddItem(productID, 1, decimal.NewFromInt(10)))
		require.NoError(t, o.AddItem(productID, 2, decimal.NewFromInt(20)))
		require.NoError(t, o.AddItem(productID, 3, decimal.NewFromInt(30)))

		items := o.Items()
		require.Len(t, items, 3)
		assert.Equal(t, 1, items[0].Quantity())
		assert.Equal(t, 2, items[1].Quantity())
		assert.Equal(t, 3, items[2].Quantity())
	})

	t.Run("should generate a fresh identifier per item", func(t *testing.T) {
		o := f.newOrder(t)
		productID := f.newProductID(t)

		require.NoError(t, o.AddItem(productID, 1, decimal.NewFromInt(10)))
		require.NoError(t, o.AddItem(productID, 1, decimal.NewFromInt(10)))

		items := o.Items()
		assert.False(t, items[0].IsEqual(items[1]))
	})

	t.Run("should fail after shipping", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Ship())

		err := o.AddItem(f.newProductID(t), 1, decimal.NewFromInt(10))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "cannot add items to an order that is SHIPPED")
		assert.Empty(t, o.Items())
	})

	t.Run("should fail after cancellation", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Cancel())

		err := o.AddItem(f.newProductID(t), 1, decimal.NewFromInt(10))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should fail with zero value product id", func(t *testing.T) {
		o := f.newOrder(t)
		var productID salesorder.ProductID

		err := o.AddItem(productID, 1, decimal.NewFromInt(10))

		require.Error(t, err)
		assert.Equal(t, salesorder.ErrProductIDIsNotConstructed, err)
		assert.Empty(t, o.Items())
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		o := f.newOrder(t)

		err := o.AddItem(f.newProductID(t), 0, decimal.NewFromInt(10))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
		assert.Empty(t, o.Items())
	})

	t.Run("should fail with negative unit price amount", func(t *testing.T) {
		o := f.newOrder(t)

		err := o.AddItem(f.newProductID(t), 1, decimal.NewFromInt(-10))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount")
		assert.Empty(t, o.Items())
	})

	t.Run("should not expose internal items for mutation", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.AddItem(f.newProductID(t), 1, decimal.NewFromInt(10)))

		items := o.Items()
		items[0] = nil

		require.NotNil(t, o.Items()[0])
	})
}

func TestSalesOrder_CalculateTotalAmount(t *testing.T) {
	f := newOrderFixture(t)

	t.Run("should return zero for empty order", func(t *testing.T) {
		o := f.newOrder(t)

		total, err := o.CalculateTotalAmount()

		require.NoError(t, err)
		assert.Equal(t, "USD 0.00", total.String())
	})

	t.Run("should fold item totals", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.AddItem(f.newProductID(t), 2, decimal.NewFromInt(100)))
		require.NoError(t, o.AddItem(f.newProductID(t), 20, decimal.NewFromInt(50)))

		total, err := o.CalculateTotalAmount()

		require.NoError(t, err)
		assert.Equal(t, "USD 1200.00", total.String())
	})

	t.Run("should be pure and repeatable", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.AddItem(f.newProductID(t), 3, decimal.NewFromInt(7)))

		first, err := o.CalculateTotalAmount()
		require.NoError(t, err)
		second, err := o.CalculateTotalAmount()
		require.NoError(t, err)

		equal, err := first.IsEqual(second)
		require.NoError(t, err)
		assert.True(t, equal)
	})
}

func TestSalesOrder_Confirm(t *testing.T) {
	f := newOrderFixture(t)

	t.Run("should confirm a pending order", func(t *testing.T) {
		o := f.newOrder(t)

		err := o.Confirm()

		require.NoError(t, err)
		assert.Equal(t, salesorder.Confirmed, o.Status())
	})

	t.Run("should fail on repeated confirmation", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.Confirm())

		err := o.Confirm()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "cannot confirm an order that is CONFIRMED")
		assert.Equal(t, salesorder.Confirmed, o.Status())
	})
}

func TestSalesOrder_Ship(t *testing.T) {
	f := newOrderFixture(t)

	t.Run("should fail before confirmation", func(t *testing.T) {
		o := f.newOrder(t)

		err := o.Ship()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "cannot ship an order that is PENDING")
		assert.Equal(t, salesorder.Pending, o.Status())
	})

	t.Run("should ship a confirmed order", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.Confirm())

		err := o.Ship()

		require.NoError(t, err)
		assert.Equal(t, salesorder.Shipped, o.Status())
	})

	t.Run("should fail on repeated shipping", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Ship())

		err := o.Ship()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestSalesOrder_Cancel(t *testing.T) {
	f := newOrderFixture(t)

	t.Run("should fail on a pending order", func(t *testing.T) {
		o := f.newOrder(t)

		err := o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "cannot cancel an order that is PENDING")
		assert.Equal(t, salesorder.Pending, o.Status())
	})

	t.Run("should cancel a confirmed order", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.Confirm())

		err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, salesorder.Canceled, o.Status())
	})

	t.Run("should cancel a shipped order", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Ship())

		err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, salesorder.Canceled, o.Status())
	})

	t.Run("should fail on an already canceled order", func(t *testing.T) {
		o := f.newOrder(t)
		require.NoError(t, o.Confirm())
		require.NoError(t, o.Cancel())

		err := o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "cannot cancel an order that is CANCELED")
	})
}

func TestSalesOrder_OrderedAt(t *testing.T) {
	t.Run("should keep an explicit past timestamp", func(t *testing.T) {
		f := newOrderFixture(t)
		orderedAt, err := kernel.ParseDateTime("2023-05-15T10:30:00Z", f.clock)
		require.NoError(t, err)

		o, err := salesorder.NewSalesOrder("customer-1", f.usd, orderedAt, f.ids)
		require.NoError(t, err)

		assert.Equal(t, "2023-05-15T10:30:00Z", o.OrderedAt().String())
		assert.Equal(t, "May 15, 2023 10:30 AM", o.GetFormattedOrderedAt())
	})
}

func TestSalesOrder_IsEqual(t *testing.T) {
	f := newOrderFixture(t)

	t.Run("should handle nil and self comparison", func(t *testing.T) {
		o := f.newOrder(t)

		assert.False(t, o.IsEqual(nil))
		assert.True(t, o.IsEqual(o))
	})
}
