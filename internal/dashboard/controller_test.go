package dashboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanagarwal13/Binanace-Trading/internal/exchange/structs"
)

type mockAPI struct {
	mu     sync.Mutex
	counts map[string]int

	placeErr  error
	cancelErr error
	ordersErr error

	lastCancelSymbol string
	lastCancelID     int64

	market    *structs.Ticker24h
	marketErr error
}

func newMockAPI() *mockAPI {
	return &mockAPI{counts: map[string]int{}}
}

func (m *mockAPI) called(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[name]++
}

func (m *mockAPI) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[name]
}

func (m *mockAPI) PlaceOrder(ctx context.Context, req *structs.OrderRequest) (*structs.Order, error) {
	m.called("place")
	if m.placeErr != nil {
		return nil, m.placeErr
	}
	return &structs.Order{
		Symbol:  req.Symbol,
		OrderId: 1,
		Side:    req.Side,
		Type:    req.Type,
		OrigQty: req.Quantity,
		Status:  structs.OrderStatusNew,
	}, nil
}

func (m *mockAPI) CancelOrder(ctx context.Context, symbol string, orderID int64) error {
	m.called("cancel")
	m.mu.Lock()
	m.lastCancelSymbol, m.lastCancelID = symbol, orderID
	m.mu.Unlock()
	return m.cancelErr
}

func (m *mockAPI) MarketData(ctx context.Context, symbol string) (*structs.Ticker24h, error) {
	m.called("market")
	if m.marketErr != nil {
		return nil, m.marketErr
	}
	if m.market != nil {
		return m.market, nil
	}
	return &structs.Ticker24h{Symbol: symbol, LastPrice: "27000", PriceChangePercent: "2.00"}, nil
}

func (m *mockAPI) Orders(ctx context.Context) ([]structs.Order, error) {
	m.called("orders")
	return nil, m.ordersErr
}

func (m *mockAPI) OpenOrders(ctx context.Context) ([]structs.Order, error) {
	m.called("open")
	return nil, nil
}

func (m *mockAPI) Account(ctx context.Context) (*structs.Account, error) {
	m.called("account")
	return &structs.Account{}, nil
}

func newTestController(api API) *Controller {
	return NewController(api, time.Hour, testLogger())
}

func TestPlaceOrderTriggersThreeRefreshes(t *testing.T) {
	api := newMockAPI()
	c := newTestController(api)

	form := &OrderForm{
		Symbol:   "BTCUSDT",
		Side:     structs.SideBuy,
		Type:     structs.OrderTypeMarket,
		Quantity: "0.5",
	}

	order, tables, err := c.PlaceOrder(context.Background(), form)
	require.NoError(t, err)
	require.NotNil(t, order)
	require.NotNil(t, tables)

	assert.Equal(t, 1, api.count("place"))
	assert.Equal(t, 1, api.count("orders"))
	assert.Equal(t, 1, api.count("open"))
	assert.Equal(t, 1, api.count("account"))
}

func TestPlaceOrderFailureRefreshesNothing(t *testing.T) {
	t.Run("rejected by service", func(t *testing.T) {
		api := newMockAPI()
		api.placeErr = errors.New("Insufficient margin")
		c := newTestController(api)

		_, tables, err := c.PlaceOrder(context.Background(), &OrderForm{
			Symbol:   "BTCUSDT",
			Side:     structs.SideBuy,
			Type:     structs.OrderTypeMarket,
			Quantity: "0.5",
		})

		assert.EqualError(t, err, "Insufficient margin")
		assert.Nil(t, tables)
		assert.Zero(t, api.count("orders"))
		assert.Zero(t, api.count("open"))
		assert.Zero(t, api.count("account"))
	})

	t.Run("invalid form never reaches the service", func(t *testing.T) {
		api := newMockAPI()
		c := newTestController(api)

		_, _, err := c.PlaceOrder(context.Background(), &OrderForm{
			Symbol: "BTCUSDT",
			Side:   structs.SideBuy,
			Type:   structs.OrderTypeLimit,
			// quantity and price missing
		})

		assert.Error(t, err)
		assert.Zero(t, api.count("place"))
	})
}

func TestCancelOrderRequiresConfirmation(t *testing.T) {
	api := newMockAPI()
	c := newTestController(api)

	action := &CancelAction{OrderId: 42, Symbol: "ETHUSDT"}

	_, err := c.CancelOrder(context.Background(), action, false)
	assert.ErrorIs(t, err, ErrCancelNotConfirmed)
	assert.Zero(t, api.count("cancel"))

	tables, err := c.CancelOrder(context.Background(), action, true)
	require.NoError(t, err)
	require.NotNil(t, tables)

	assert.Equal(t, 1, api.count("cancel"))
	assert.Equal(t, "ETHUSDT", api.lastCancelSymbol)
	assert.Equal(t, int64(42), api.lastCancelID)

	// Cancelling reloads the order regions but not the balances.
	assert.Equal(t, 1, api.count("orders"))
	assert.Equal(t, 1, api.count("open"))
	assert.Zero(t, api.count("account"))
}

func TestRefreshOrdersRegionFailure(t *testing.T) {
	api := newMockAPI()
	api.ordersErr = errors.New("Failed to load orders")
	c := newTestController(api)

	tables := c.RefreshOrders(context.Background())

	assert.Equal(t, "Failed to load orders", tables.All.Placeholder)
	assert.Equal(t, ClassDanger, tables.All.Class)
	assert.Equal(t, "Failed to load orders", tables.Filled.Placeholder)

	// The open-orders region loads independently of the failed one.
	assert.Equal(t, PlaceholderNoOpenOrders, tables.Open.Placeholder)
	assert.NotEqual(t, ClassDanger, tables.Open.Class)
}

func TestMarketSnapshotLifecycle(t *testing.T) {
	api := newMockAPI()
	c := newTestController(api)

	c.State().Select("BTCUSDT")
	c.fetchMarket(context.Background(), "BTCUSDT")

	snapshot := c.State().Snapshot()
	require.NotNil(t, snapshot)
	assert.Equal(t, "BTCUSDT", snapshot.Symbol)

	update := <-c.Updates()
	assert.Equal(t, "BTCUSDT", update.Symbol)
	assert.NoError(t, update.Err)

	t.Run("stale response is discarded", func(t *testing.T) {
		c.State().Select("ETHUSDT")
		assert.Nil(t, c.State().Snapshot())

		// A slow response for the old symbol may still arrive.
		c.fetchMarket(context.Background(), "BTCUSDT")
		assert.Nil(t, c.State().Snapshot())
	})

	t.Run("clearing selection drops the snapshot", func(t *testing.T) {
		c.fetchMarket(context.Background(), "ETHUSDT")
		require.NotNil(t, c.State().Snapshot())

		c.State().Select("")
		assert.Nil(t, c.State().Snapshot())
	})
}
