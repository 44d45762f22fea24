package exchange

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/amanagarwal13/Binanace-Trading/internal/exchange/structs"
)

var (
	ErrPriceRequired     = errors.New("price is required for this order type")
	ErrStopPriceRequired = errors.New("stop price is required for this order type")
	ErrOrderIdRequired   = errors.New("either order id or client order id is required")
	ErrUnknownOrderType  = errors.New("unknown order type")
)

// PlaceOrder submits a single order. The required parameter set follows the
// order type: LIMIT needs a price, STOP needs both a trigger and a limit
// price, STOP_MARKET and TAKE_PROFIT_MARKET need only the trigger.
func (e *Exchange) PlaceOrder(ctx context.Context, req *structs.OrderRequest) (*structs.Order, error) {
	q := url.Values{}
	q.Set("symbol", req.Symbol)
	q.Set("side", req.Side)
	q.Set("type", req.Type)
	q.Set("quantity", req.Quantity)
	q.Set("newClientOrderId", "dash-"+uuid.NewString())

	switch req.Type {
	case structs.OrderTypeMarket:
	case structs.OrderTypeLimit:
		if req.Price == "" {
			return nil, ErrPriceRequired
		}
		q.Set("price", req.Price)
		q.Set("timeInForce", "GTC")
	case structs.OrderTypeStop, structs.OrderTypeTakeProfit:
		if req.StopPrice == "" {
			return nil, ErrStopPriceRequired
		}
		if req.Price == "" {
			return nil, ErrPriceRequired
		}
		q.Set("stopPrice", req.StopPrice)
		q.Set("price", req.Price)
		q.Set("timeInForce", "GTC")
	case structs.OrderTypeStopMarket, structs.OrderTypeTakeProfitMarket:
		if req.StopPrice == "" {
			return nil, ErrStopPriceRequired
		}
		q.Set("stopPrice", req.StopPrice)
	default:
		return nil, ErrUnknownOrderType
	}

	baseURL, err := e.signedURL(orderUrlPath, q)
	if err != nil {
		return nil, err
	}

	resp, err := e.clientController.Send(ctx, http.MethodPost, baseURL, nil, true)
	if err != nil {
		return nil, errors.Wrap(err, "place order")
	}

	var out structs.Order
	if err := json.Unmarshal(resp, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CancelOrder cancels an open order by exchange order id, falling back to
// the original client order id when orderID is zero.
func (e *Exchange) CancelOrder(ctx context.Context, symbol string, orderID int64, origClientOrderID string) (*structs.Order, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	switch {
	case orderID != 0:
		q.Set("orderId", strconv.FormatInt(orderID, 10))
	case origClientOrderID != "":
		q.Set("origClientOrderId", origClientOrderID)
	default:
		return nil, ErrOrderIdRequired
	}

	baseURL, err := e.signedURL(orderUrlPath, q)
	if err != nil {
		return nil, err
	}

	resp, err := e.clientController.Send(ctx, http.MethodDelete, baseURL, nil, true)
	if err != nil {
		return nil, errors.Wrap(err, "cancel order")
	}

	var out structs.Order
	if err := json.Unmarshal(resp, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// OpenOrders returns the currently open orders, for one symbol or all.
func (e *Exchange) OpenOrders(ctx context.Context, symbol string) ([]structs.Order, error) {
	q := url.Values{}
	if symbol != "" {
		q.Set("symbol", symbol)
	}

	baseURL, err := e.signedURL(orderOpenUrlPath, q)
	if err != nil {
		return nil, err
	}

	resp, err := e.clientController.Send(ctx, http.MethodGet, baseURL, nil, true)
	if err != nil {
		return nil, errors.Wrap(err, "open orders")
	}

	var out []structs.Order
	if err := json.Unmarshal(resp, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// OrderHistory returns up to limit past orders, newest last as the API
// delivers them.
func (e *Exchange) OrderHistory(ctx context.Context, symbol string, limit int) ([]structs.Order, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if symbol != "" {
		q.Set("symbol", symbol)
	}

	baseURL, err := e.signedURL(orderAllUrlPath, q)
	if err != nil {
		return nil, err
	}

	resp, err := e.clientController.Send(ctx, http.MethodGet, baseURL, nil, true)
	if err != nil {
		return nil, errors.Wrap(err, "order history")
	}

	var out []structs.Order
	if err := json.Unmarshal(resp, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// PlaceOCO submits a one-cancels-the-other pair: a limit order and a stop
// limit order, the fill of one cancelling the other.
func (e *Exchange) PlaceOCO(ctx context.Context, req *structs.OCORequest) ([]byte, error) {
	q := url.Values{}
	q.Set("symbol", req.Symbol)
	q.Set("side", req.Side)
	q.Set("quantity", req.Quantity)
	q.Set("price", req.Price)
	q.Set("stopPrice", req.StopPrice)
	q.Set("stopLimitPrice", req.StopLimitPrice)
	q.Set("stopLimitTimeInForce", "GTC")

	baseURL, err := e.signedURL(orderOCOUrlPath, q)
	if err != nil {
		return nil, err
	}

	resp, err := e.clientController.Send(ctx, http.MethodPost, baseURL, nil, true)
	if err != nil {
		return nil, errors.Wrap(err, "place oco order")
	}

	return resp, nil
}

// PlaceTWAP splits totalQty into numOrders market orders spread evenly over
// duration, returning the responses in submission order. It stops early if
// ctx is cancelled between slices.
func (e *Exchange) PlaceTWAP(ctx context.Context, symbol, side, totalQty string, numOrders int, duration time.Duration) ([]structs.Order, error) {
	total, err := decimal.NewFromString(totalQty)
	if err != nil {
		return nil, errors.Wrap(err, "twap quantity")
	}

	sliceQty := total.Div(decimal.NewFromInt(int64(numOrders)))
	interval := duration / time.Duration(numOrders)

	out := make([]structs.Order, 0, numOrders)

	for i := 0; i < numOrders; i++ {
		order, err := e.PlaceOrder(ctx, &structs.OrderRequest{
			Symbol:   symbol,
			Side:     side,
			Type:     structs.OrderTypeMarket,
			Quantity: sliceQty.String(),
		})
		if err != nil {
			return out, errors.Wrapf(err, "twap slice %d/%d", i+1, numOrders)
		}

		out = append(out, *order)

		e.logger.
			WithField("symbol", symbol).
			WithField("slice", i+1).
			Infof("twap slice placed, %d of %d", i+1, numOrders)

		if i < numOrders-1 {
			select {
			case <-ctx.Done():
				return out, ctx.Err()
			case <-time.After(interval):
			}
		}
	}

	return out, nil
}
