package http

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/amanagarwal13/Binanace-Trading/internal/controllers"
	"github.com/amanagarwal13/Binanace-Trading/internal/exchange/structs"
	"github.com/amanagarwal13/Binanace-Trading/internal/repository/postgres"
	"github.com/amanagarwal13/Binanace-Trading/models"
)

const (
	defaultHistoryLimit = 50
	defaultHistoryHours = 24
)

//go:generate mockery --case=snake --name=ExchangeClient

type ExchangeClient interface {
	PlaceOrder(ctx context.Context, req *structs.OrderRequest) (*structs.Order, error)
	CancelOrder(ctx context.Context, symbol string, orderID int64, origClientOrderID string) (*structs.Order, error)
	OpenOrders(ctx context.Context, symbol string) ([]structs.Order, error)
	OrderHistory(ctx context.Context, symbol string, limit int) ([]structs.Order, error)
	Account(ctx context.Context) (*structs.Account, error)
	Ticker24h(ctx context.Context, symbol string) (*structs.Ticker24h, error)
	MarketData(ctx context.Context, symbols []string) ([]structs.Ticker24h, error)
}

type Handler struct {
	exchange ExchangeClient

	priceRepo postgres.PriceRepo  // optional
	tgm       controllers.TgmCtrl // optional
	metrics   *Metrics            // optional

	symbols []string

	logger *logrus.Logger
}

func NewHandler(
	exchange ExchangeClient,
	priceRepo postgres.PriceRepo,
	tgm controllers.TgmCtrl,
	metrics *Metrics,
	symbols []string,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		exchange:  exchange,
		priceRepo: priceRepo,
		tgm:       tgm,
		metrics:   metrics,
		symbols:   symbols,
		logger:    logger,
	}
}

func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	body := struct {
		Status bool `json:"status"`
	}{
		Status: true,
	}

	return c.JSON(body)
}

func (h *Handler) PlaceOrder(c *fiber.Ctx) error {
	var req structs.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return errResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Symbol == "" || req.Side == "" || req.Type == "" || req.Quantity == "" {
		return errResponse(c, fiber.StatusBadRequest, "Missing required parameters")
	}

	order, err := h.exchange.PlaceOrder(c.Context(), &req)
	if err != nil {
		h.logger.WithError(err).Error("place order failed")
		if h.metrics != nil {
			h.metrics.OrderFailures.Inc()
		}

		return errResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	if h.metrics != nil {
		h.metrics.OrdersPlaced.Inc()
	}

	h.logger.
		WithField("symbol", order.Symbol).
		WithField("orderId", order.OrderId).
		Info("order placed")

	h.notify(fmt.Sprintf("[ Order Placed ]\n%s\n%s %s\nqty:\t%s\nid:\t%d",
		order.Symbol, order.Side, order.Type, order.OrigQty, order.OrderId))

	return c.JSON(order)
}

func (h *Handler) CancelOrder(c *fiber.Ctx) error {
	var req structs.CancelRequest
	if err := c.BodyParser(&req); err != nil {
		return errResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Symbol == "" || req.OrderId == 0 {
		return errResponse(c, fiber.StatusBadRequest, "Missing required parameters")
	}

	order, err := h.exchange.CancelOrder(c.Context(), req.Symbol, req.OrderId, "")
	if err != nil {
		h.logger.WithError(err).Error("cancel order failed")
		return errResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	if h.metrics != nil {
		h.metrics.OrdersCancelled.Inc()
	}

	h.logger.
		WithField("symbol", req.Symbol).
		WithField("orderId", req.OrderId).
		Info("order cancelled")

	h.notify(fmt.Sprintf("[ Order Cancelled ]\n%s\nid:\t%d", req.Symbol, req.OrderId))

	return c.JSON(order)
}

// MarketData serves one 24h snapshot when a symbol is given, or the
// snapshot for every supported symbol otherwise.
func (h *Handler) MarketData(c *fiber.Ctx) error {
	symbol := c.Query("symbol")

	if symbol != "" {
		ticker, err := h.exchange.Ticker24h(c.Context(), symbol)
		if err != nil {
			h.logger.WithError(err).Error("market data failed")
			return errResponse(c, fiber.StatusInternalServerError, err.Error())
		}

		h.storePrice(ticker)

		return c.JSON(ticker)
	}

	tickers, err := h.exchange.MarketData(c.Context(), h.symbols)
	if err != nil {
		h.logger.WithError(err).Error("market data failed")
		return errResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	for i := range tickers {
		h.storePrice(&tickers[i])
	}

	return c.JSON(tickers)
}

func (h *Handler) Orders(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultHistoryLimit)))
	if err != nil || limit <= 0 {
		limit = defaultHistoryLimit
	}

	orders, err := h.exchange.OrderHistory(c.Context(), c.Query("symbol"), limit)
	if err != nil {
		h.logger.WithError(err).Error("order history failed")
		return errResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(orders)
}

func (h *Handler) OpenOrders(c *fiber.Ctx) error {
	orders, err := h.exchange.OpenOrders(c.Context(), c.Query("symbol"))
	if err != nil {
		h.logger.WithError(err).Error("open orders failed")
		return errResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(orders)
}

// PriceHistory serves the stored market-data snapshots: the latest one by
// default, or the window covering the past N hours when hours is given.
func (h *Handler) PriceHistory(c *fiber.Ctx) error {
	if h.priceRepo == nil {
		return errResponse(c, fiber.StatusNotFound, "Price history is not available")
	}

	symbol := c.Query("symbol")
	if symbol == "" {
		return errResponse(c, fiber.StatusBadRequest, "Missing required parameters")
	}

	if raw := c.Query("hours"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			hours = defaultHistoryHours
		}

		eTime := time.Now()
		sTime := eTime.Add(-time.Duration(hours) * time.Hour)

		prices, err := h.priceRepo.GetByCreatedByInterval(symbol, sTime, eTime)
		if err != nil {
			h.logger.WithError(err).Error("price history failed")
			return errResponse(c, fiber.StatusInternalServerError, err.Error())
		}

		return c.JSON(prices)
	}

	price, err := h.priceRepo.GetLast(symbol)
	if err != nil {
		h.logger.WithError(err).Error("price history failed")
		return errResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(price)
}

func (h *Handler) Account(c *fiber.Ctx) error {
	account, err := h.exchange.Account(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("account info failed")
		return errResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(account)
}

func (h *Handler) storePrice(ticker *structs.Ticker24h) {
	if h.priceRepo == nil {
		return
	}

	price, err := strconv.ParseFloat(ticker.LastPrice, 64)
	if err != nil {
		return
	}

	changePercent, _ := strconv.ParseFloat(ticker.PriceChangePercent, 64)

	if err := h.priceRepo.Store(&models.Price{
		Symbol:             ticker.Symbol,
		Price:              price,
		PriceChangePercent: changePercent,
	}); err != nil {
		h.logger.WithError(err).Debug("store price snapshot failed")
	}
}

func (h *Handler) notify(text string) {
	if h.tgm == nil {
		return
	}

	if err := h.tgm.Send(text); err != nil {
		h.logger.WithError(err).Debug("telegram notify failed")
	}
}

func errResponse(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}
