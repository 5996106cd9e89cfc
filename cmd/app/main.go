package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"salesorders/cmd"
	"salesorders/internal/core/domain/model/customer"
	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/salesorder"
)

func main() {
	configs := getConfigs()

	app := cmd.NewCompositionRoot(
		configs,
	)

	if err := runScenarios(&app); err != nil {
		log.Errorf("Error: %v", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Infof("No .env file found, using defaults")
	}

	config := cmd.Config{
		DefaultLocale:     envOrDefault("DEFAULT_LOCALE", kernel.DefaultLocale),
		ManualOrderLocale: envOrDefault("MANUAL_ORDER_LOCALE", "es-PE"),
		CustomerName:      envOrDefault("CUSTOMER_NAME", "John Doe"),
	}
	return config
}

func envOrDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func runScenarios(app *cmd.CompositionRoot) error {
	clock := app.Clock()
	ids := app.IDGenerator()
	checkout := app.CreateCheckoutService()

	buyer, err := customer.NewCustomer(app.Config().CustomerName, ids)
	if err != nil {
		return err
	}

	// Scenario 1: an order placed right now, confirmed and totaled.
	usd, err := kernel.NewCurrency("USD")
	if err != nil {
		return err
	}

	now, err := kernel.NewDateTime(clock)
	if err != nil {
		return err
	}

	realTime, err := salesorder.NewSalesOrder(buyer.ID().String(), usd, now, ids)
	if err != nil {
		return err
	}

	if err = addItem(realTime, ids, 2, decimal.NewFromInt(100)); err != nil {
		return err
	}
	if err = addItem(realTime, ids, 20, decimal.NewFromInt(50)); err != nil {
		return err
	}

	if err = realTime.Confirm(); err != nil {
		return err
	}

	realTimeTotal, err := checkout.RecordOrderTotal(buyer, realTime)
	if err != nil {
		return err
	}

	realTimeFormatted, err := realTimeTotal.Format(app.Config().DefaultLocale)
	if err != nil {
		return err
	}

	fmt.Println(orderLine("Real-time Order", buyer, realTime, realTimeFormatted))

	// Scenario 2: an order backfilled with a past timestamp, shipped and
	// totaled in a different currency and locale.
	pen, err := kernel.NewCurrency("PEN")
	if err != nil {
		return err
	}

	orderedAt, err := kernel.ParseDateTime("2023-05-15T10:30:00Z", clock)
	if err != nil {
		return err
	}

	manual, err := salesorder.NewSalesOrder(buyer.ID().String(), pen, orderedAt, ids)
	if err != nil {
		return err
	}

	if err = addItem(manual, ids, 1, decimal.NewFromInt(150)); err != nil {
		return err
	}

	if err = manual.Confirm(); err != nil {
		return err
	}
	if err = manual.Ship(); err != nil {
		return err
	}

	manualTotal, err := checkout.RecordOrderTotal(buyer, manual)
	if err != nil {
		return err
	}

	manualFormatted, err := manualTotal.Format(app.Config().ManualOrderLocale)
	if err != nil {
		return err
	}

	fmt.Println(orderLine("Manual Order", buyer, manual, manualFormatted))

	// Confirming a shipped order is rejected by the state machine.
	return manual.Confirm()
}

// orderLine renders one demo report line. The ID slot carries the customer's
// identifier, not the order's.
func orderLine(label string, buyer *customer.Customer, order *salesorder.SalesOrder, formattedTotal string) string {
	return fmt.Sprintf("%s - Customer: %s, ID: %s, Ordered At: %s, State: %s, Total: %s",
		label, buyer.Name(), buyer.ID(), order.GetFormattedOrderedAt(), order.Status(), formattedTotal)
}

func addItem(order *salesorder.SalesOrder, ids kernel.IDGenerator, quantity int, unitPrice decimal.Decimal) error {
	productID, err := salesorder.NewProductID(ids)
	if err != nil {
		return err
	}
	return order.AddItem(productID, quantity, unitPrice)
}
