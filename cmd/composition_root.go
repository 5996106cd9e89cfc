package cmd

import (
	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/services"
)

type CompositionRoot struct {
	config Config
	clock  kernel.Clock
	ids    kernel.IDGenerator
}

func NewCompositionRoot(config Config) CompositionRoot {
	return CompositionRoot{
		config: config,
		clock:  kernel.NewSystemClock(),
		ids:    kernel.NewRandomIDGenerator(),
	}
}

func (c *CompositionRoot) Config() Config {
	return c.config
}

func (c *CompositionRoot) Clock() kernel.Clock {
	return c.clock
}

func (c *CompositionRoot) IDGenerator() kernel.IDGenerator {
	return c.ids
}

func (c *CompositionRoot) CreateCheckoutService() services.Checkout {
	return services.NewCheckout()
}
