package http

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterHTTPEndpoints(f *fiber.App, h *Handler) {
	router := f.Group("api")

	router.Get("/healthcheck", h.HealthCheck)
	router.Get("/market-data", h.MarketData)
	router.Get("/orders", h.Orders)
	router.Get("/open-orders", h.OpenOrders)
	router.Get("/account", h.Account)
	router.Get("/price-history", h.PriceHistory)
	router.Post("/place-order", h.PlaceOrder)
	router.Post("/cancel-order", h.CancelOrder)
}
