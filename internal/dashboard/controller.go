package dashboard

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/amanagarwal13/Binanace-Trading/internal/exchange/structs"
)

// ErrCancelNotConfirmed is returned when a cancel is requested without the
// user's confirmation; no request is sent in that case.
var ErrCancelNotConfirmed = errors.New("cancel not confirmed")

// MarketUpdate is delivered for every market-data fetch: a fresh snapshot
// or the failure that replaced it.
type MarketUpdate struct {
	Symbol   string
	Snapshot *structs.Ticker24h
	Err      error
}

// OrderTables are the three order display regions.
type OrderTables struct {
	All    Table
	Filled Table
	Open   Table
}

// Tables is every data region of the dashboard.
type Tables struct {
	OrderTables
	Balances Table
}

// Controller drives the dashboard: it owns the view state and the poller,
// and maps user actions onto API calls and rendered regions.
type Controller struct {
	api    API
	state  *State
	poller *Poller

	updates chan MarketUpdate

	logger *logrus.Logger
}

func NewController(api API, pollInterval time.Duration, logger *logrus.Logger) *Controller {
	c := &Controller{
		api:     api,
		state:   NewState(),
		updates: make(chan MarketUpdate, 8),
		logger:  logger,
	}

	c.poller = NewPoller(pollInterval, c.fetchMarket, logger)

	return c
}

// Updates delivers market snapshots as the poller fetches them.
func (c *Controller) Updates() <-chan MarketUpdate {
	return c.updates
}

func (c *Controller) State() *State {
	return c.state
}

func (c *Controller) Poller() *Poller {
	return c.poller
}

// SelectSymbol switches the dashboard to a symbol: any running poll is
// cancelled first, then an immediate fetch and a fresh poll loop start.
// An empty symbol clears the selection and stops polling without fetching.
func (c *Controller) SelectSymbol(symbol string) {
	c.state.Select(symbol)
	c.poller.Select(symbol)
}

// RefreshMarket is the manual refresh entry point. It is a one-shot fetch
// for the selected symbol and a no-op when nothing is selected.
func (c *Controller) RefreshMarket() {
	symbol := c.state.Symbol()
	if symbol == "" {
		return
	}

	go c.fetchMarket(context.Background(), symbol)
}

func (c *Controller) fetchMarket(ctx context.Context, symbol string) {
	snapshot, err := c.api.MarketData(ctx, symbol)
	if err != nil {
		c.logger.WithError(err).Debug("market data fetch failed")
	} else if !c.state.ApplySnapshot(snapshot) {
		// Stale response for a symbol that is no longer selected.
		return
	}

	select {
	case c.updates <- MarketUpdate{Symbol: symbol, Snapshot: snapshot, Err: err}:
	default:
	}
}

// RefreshOrders reloads the order-history and open-orders regions. Each
// region fails independently into its own placeholder.
func (c *Controller) RefreshOrders(ctx context.Context) OrderTables {
	var out OrderTables

	history, err := c.api.Orders(ctx)
	if err != nil {
		out.All = FailedTable(orderActionsColumns, err.Error())
		out.Filled = FailedTable(orderColumns, err.Error())
	} else {
		out.All, out.Filled = OrderHistoryTables(history)
	}

	open, err := c.api.OpenOrders(ctx)
	if err != nil {
		out.Open = FailedTable(orderActionsColumns, err.Error())
	} else {
		out.Open = OpenOrdersTable(open)
	}

	return out
}

// RefreshBalances reloads the account-balance region.
func (c *Controller) RefreshBalances(ctx context.Context) Table {
	account, err := c.api.Account(ctx)
	if err != nil {
		return FailedTable(balanceColumns, err.Error())
	}

	return BalanceTable(account)
}

// RefreshAll reloads every region and re-fetches market data when a symbol
// is selected.
func (c *Controller) RefreshAll(ctx context.Context) Tables {
	c.RefreshMarket()

	return Tables{
		OrderTables: c.RefreshOrders(ctx),
		Balances:    c.RefreshBalances(ctx),
	}
}

// PlaceOrder builds and submits the order. Success reloads order history,
// open orders and balances; failure reloads nothing.
func (c *Controller) PlaceOrder(ctx context.Context, form *OrderForm) (*structs.Order, *Tables, error) {
	req, err := form.Build()
	if err != nil {
		return nil, nil, err
	}

	order, err := c.api.PlaceOrder(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	c.logger.
		WithField("symbol", order.Symbol).
		WithField("orderId", order.OrderId).
		Info("order placed")

	tables := Tables{
		OrderTables: c.RefreshOrders(ctx),
		Balances:    c.RefreshBalances(ctx),
	}

	return order, &tables, nil
}

// CancelOrder cancels the order an action points at, but only once the
// user has confirmed. Success reloads the order regions.
func (c *Controller) CancelOrder(ctx context.Context, action *CancelAction, confirmed bool) (*OrderTables, error) {
	if !confirmed {
		return nil, ErrCancelNotConfirmed
	}

	if err := c.api.CancelOrder(ctx, action.Symbol, action.OrderId); err != nil {
		return nil, err
	}

	c.logger.
		WithField("symbol", action.Symbol).
		WithField("orderId", action.OrderId).
		Info("order cancelled")

	tables := c.RefreshOrders(ctx)

	return &tables, nil
}
