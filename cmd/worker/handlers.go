package main

import (
	"github.com/hibiken/asynq"

	checkoutJob "storefront-backend/internal/domains/checkout/job"
	"storefront-backend/internal/shared"
	"storefront-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	recoverySweep *checkoutJob.RecoverySweepHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		recoverySweep: checkoutJob.NewRecoverySweepHandler(c.CheckoutService),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Checkout
	mux.Handle(shared.TypeAbandonedRecoverySweep, h.recoverySweep)
}
