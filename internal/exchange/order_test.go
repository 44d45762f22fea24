package exchange_test

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanagarwal13/Binanace-Trading/internal/controllers"
	"github.com/amanagarwal13/Binanace-Trading/internal/exchange"
	"github.com/amanagarwal13/Binanace-Trading/internal/exchange/structs"
)

const testURL = "https://testnet.binancefuture.com"

type fakeClient struct {
	lastMethod string
	lastURL    *url.URL
	useApiKey  bool

	resp []byte
	err  error
}

func (f *fakeClient) Send(ctx context.Context, method string, u *url.URL, body []byte, useApiKey bool) ([]byte, error) {
	f.lastMethod = method
	f.lastURL = u
	f.useApiKey = useApiKey

	if f.err != nil {
		return nil, f.err
	}

	return f.resp, nil
}

func newTestExchange(resp string) (*exchange.Exchange, *fakeClient) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	client := &fakeClient{resp: []byte(resp)}
	crypto := controllers.NewCryptoController("test-secret")

	return exchange.NewExchange(client, crypto, testURL, logger), client
}

func TestPlaceOrderParams(t *testing.T) {
	orderResp := `{"symbol":"BTCUSDT","orderId":123,"status":"NEW"}`

	t.Run("market", func(t *testing.T) {
		e, client := newTestExchange(orderResp)

		order, err := e.PlaceOrder(context.Background(), &structs.OrderRequest{
			Symbol:   "BTCUSDT",
			Side:     structs.SideBuy,
			Type:     structs.OrderTypeMarket,
			Quantity: "0.5",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(123), order.OrderId)

		q := client.lastURL.Query()
		assert.Equal(t, http.MethodPost, client.lastMethod)
		assert.Equal(t, "/fapi/v1/order", client.lastURL.Path)
		assert.Equal(t, "MARKET", q.Get("type"))
		assert.Equal(t, "0.5", q.Get("quantity"))
		assert.Empty(t, q.Get("price"))
		assert.Empty(t, q.Get("timeInForce"))
		assert.True(t, strings.HasPrefix(q.Get("newClientOrderId"), "dash-"))
		assert.NotEmpty(t, q.Get("signature"))
		assert.NotEmpty(t, q.Get("timestamp"))
		assert.True(t, client.useApiKey)
	})

	t.Run("limit", func(t *testing.T) {
		e, client := newTestExchange(orderResp)

		_, err := e.PlaceOrder(context.Background(), &structs.OrderRequest{
			Symbol:   "BTCUSDT",
			Side:     structs.SideSell,
			Type:     structs.OrderTypeLimit,
			Quantity: "0.5",
			Price:    "27000",
		})
		require.NoError(t, err)

		q := client.lastURL.Query()
		assert.Equal(t, "27000", q.Get("price"))
		assert.Equal(t, "GTC", q.Get("timeInForce"))
		assert.Empty(t, q.Get("stopPrice"))
	})

	t.Run("stop carries trigger and limit price", func(t *testing.T) {
		e, client := newTestExchange(orderResp)

		_, err := e.PlaceOrder(context.Background(), &structs.OrderRequest{
			Symbol:    "BTCUSDT",
			Side:      structs.SideSell,
			Type:      structs.OrderTypeStop,
			Quantity:  "0.5",
			Price:     "26800",
			StopPrice: "26900",
		})
		require.NoError(t, err)

		q := client.lastURL.Query()
		assert.Equal(t, "26800", q.Get("price"))
		assert.Equal(t, "26900", q.Get("stopPrice"))
		assert.Equal(t, "GTC", q.Get("timeInForce"))
	})

	t.Run("stop market carries trigger only", func(t *testing.T) {
		e, client := newTestExchange(orderResp)

		_, err := e.PlaceOrder(context.Background(), &structs.OrderRequest{
			Symbol:    "BTCUSDT",
			Side:      structs.SideSell,
			Type:      structs.OrderTypeStopMarket,
			Quantity:  "0.5",
			StopPrice: "26900",
		})
		require.NoError(t, err)

		q := client.lastURL.Query()
		assert.Empty(t, q.Get("price"))
		assert.Equal(t, "26900", q.Get("stopPrice"))
		assert.Empty(t, q.Get("timeInForce"))
	})

	t.Run("missing parameters", func(t *testing.T) {
		e, _ := newTestExchange(orderResp)

		_, err := e.PlaceOrder(context.Background(), &structs.OrderRequest{
			Symbol:   "BTCUSDT",
			Side:     structs.SideBuy,
			Type:     structs.OrderTypeLimit,
			Quantity: "0.5",
		})
		assert.ErrorIs(t, err, exchange.ErrPriceRequired)

		_, err = e.PlaceOrder(context.Background(), &structs.OrderRequest{
			Symbol:   "BTCUSDT",
			Side:     structs.SideBuy,
			Type:     structs.OrderTypeStopMarket,
			Quantity: "0.5",
		})
		assert.ErrorIs(t, err, exchange.ErrStopPriceRequired)

		_, err = e.PlaceOrder(context.Background(), &structs.OrderRequest{
			Symbol:   "BTCUSDT",
			Side:     structs.SideBuy,
			Type:     "ICEBERG",
			Quantity: "0.5",
		})
		assert.ErrorIs(t, err, exchange.ErrUnknownOrderType)
	})
}

func TestCancelOrderParams(t *testing.T) {
	cancelResp := `{"symbol":"BTCUSDT","orderId":55,"status":"CANCELED"}`

	t.Run("by order id", func(t *testing.T) {
		e, client := newTestExchange(cancelResp)

		order, err := e.CancelOrder(context.Background(), "BTCUSDT", 55, "")
		require.NoError(t, err)

		assert.Equal(t, http.MethodDelete, client.lastMethod)
		assert.Equal(t, "55", client.lastURL.Query().Get("orderId"))
		assert.Equal(t, structs.OrderStatusCanceled, order.Status)
	})

	t.Run("by client order id", func(t *testing.T) {
		e, client := newTestExchange(cancelResp)

		_, err := e.CancelOrder(context.Background(), "BTCUSDT", 0, "dash-abc")
		require.NoError(t, err)

		q := client.lastURL.Query()
		assert.Empty(t, q.Get("orderId"))
		assert.Equal(t, "dash-abc", q.Get("origClientOrderId"))
	})

	t.Run("neither id given", func(t *testing.T) {
		e, _ := newTestExchange(cancelResp)

		_, err := e.CancelOrder(context.Background(), "BTCUSDT", 0, "")
		assert.ErrorIs(t, err, exchange.ErrOrderIdRequired)
	})
}

func TestOrderListings(t *testing.T) {
	listResp := `[{"symbol":"BTCUSDT","orderId":1,"status":"FILLED","time":100}]`

	t.Run("history with limit", func(t *testing.T) {
		e, client := newTestExchange(listResp)

		orders, err := e.OrderHistory(context.Background(), "BTCUSDT", 50)
		require.NoError(t, err)
		require.Len(t, orders, 1)

		assert.Equal(t, "/fapi/v1/allOrders", client.lastURL.Path)
		assert.Equal(t, "50", client.lastURL.Query().Get("limit"))
		assert.Equal(t, "BTCUSDT", client.lastURL.Query().Get("symbol"))
	})

	t.Run("history for all symbols omits the param", func(t *testing.T) {
		e, client := newTestExchange(listResp)

		_, err := e.OrderHistory(context.Background(), "", 50)
		require.NoError(t, err)

		_, has := client.lastURL.Query()["symbol"]
		assert.False(t, has)
	})

	t.Run("open orders", func(t *testing.T) {
		e, client := newTestExchange(listResp)

		orders, err := e.OpenOrders(context.Background(), "BTCUSDT")
		require.NoError(t, err)
		require.Len(t, orders, 1)

		assert.Equal(t, "/fapi/v1/openOrders", client.lastURL.Path)
	})
}

func TestPlaceTWAP(t *testing.T) {
	e, client := newTestExchange(`{"symbol":"BTCUSDT","orderId":9,"status":"NEW"}`)

	orders, err := e.PlaceTWAP(context.Background(), "BTCUSDT", structs.SideBuy, "0.9", 3, 0)
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	q := client.lastURL.Query()
	assert.Equal(t, "MARKET", q.Get("type"))
	assert.Equal(t, "0.3", q.Get("quantity"))
}
