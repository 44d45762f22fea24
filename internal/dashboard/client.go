package dashboard

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/amanagarwal13/Binanace-Trading/internal/exchange/structs"
)

// Fallback messages shown when a call fails without a usable error body.
const (
	MsgPlaceOrderFailed = "Failed to place order"
	MsgCancelFailed     = "Failed to cancel order"
	MsgMarketDataFailed = "Failed to load market data"
	MsgOrdersFailed     = "Failed to load orders"
	MsgOpenOrdersFailed = "Failed to load open orders"
	MsgBalanceFailed    = "Failed to load balance data"
)

//go:generate mockery --case=snake --name=API

// API is the dashboard's view of the trading service.
type API interface {
	PlaceOrder(ctx context.Context, req *structs.OrderRequest) (*structs.Order, error)
	CancelOrder(ctx context.Context, symbol string, orderID int64) error
	MarketData(ctx context.Context, symbol string) (*structs.Ticker24h, error)
	Orders(ctx context.Context) ([]structs.Order, error)
	OpenOrders(ctx context.Context) ([]structs.Order, error)
	Account(ctx context.Context) (*structs.Account, error)
}

type apiError struct {
	Message string `json:"error"`
}

// Client talks to the dashboard API server.
type Client struct {
	rest   *resty.Client
	logger *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		rest:   rest,
		logger: logger,
	}
}

// callErr turns a transport or application failure into the user-facing
// message: the response body's error field when present, the per-call
// fallback otherwise.
func (c *Client) callErr(resp *resty.Response, err error, fallback string) error {
	if err != nil {
		c.logger.WithError(err).Debug(fallback)
		return errors.New(fallback)
	}

	if apiErr, ok := resp.Error().(*apiError); ok && apiErr != nil && apiErr.Message != "" {
		return errors.New(apiErr.Message)
	}

	c.logger.
		WithField("status", resp.StatusCode()).
		Debug(fallback)

	return errors.New(fallback)
}

func (c *Client) PlaceOrder(ctx context.Context, req *structs.OrderRequest) (*structs.Order, error) {
	var out structs.Order

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/api/place-order")
	if err != nil || resp.IsError() {
		return nil, c.callErr(resp, err, MsgPlaceOrderFailed)
	}

	return &out, nil
}

func (c *Client) CancelOrder(ctx context.Context, symbol string, orderID int64) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(&structs.CancelRequest{Symbol: symbol, OrderId: orderID}).
		SetError(&apiError{}).
		Post("/api/cancel-order")
	if err != nil || resp.IsError() {
		return c.callErr(resp, err, MsgCancelFailed)
	}

	return nil
}

func (c *Client) MarketData(ctx context.Context, symbol string) (*structs.Ticker24h, error) {
	var out structs.Ticker24h

	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("symbol", symbol).
		SetResult(&out).
		SetError(&apiError{}).
		Get("/api/market-data")
	if err != nil || resp.IsError() {
		return nil, c.callErr(resp, err, MsgMarketDataFailed)
	}

	return &out, nil
}

func (c *Client) Orders(ctx context.Context) ([]structs.Order, error) {
	var out []structs.Order

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiError{}).
		Get("/api/orders")
	if err != nil || resp.IsError() {
		return nil, c.callErr(resp, err, MsgOrdersFailed)
	}

	return out, nil
}

func (c *Client) OpenOrders(ctx context.Context) ([]structs.Order, error) {
	var out []structs.Order

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiError{}).
		Get("/api/open-orders")
	if err != nil || resp.IsError() {
		return nil, c.callErr(resp, err, MsgOpenOrdersFailed)
	}

	return out, nil
}

func (c *Client) Account(ctx context.Context) (*structs.Account, error) {
	var out structs.Account

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiError{}).
		Get("/api/account")
	if err != nil || resp.IsError() {
		return nil, c.callErr(resp, err, MsgBalanceFailed)
	}

	return &out, nil
}
