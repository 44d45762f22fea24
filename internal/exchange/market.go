package exchange

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/amanagarwal13/Binanace-Trading/internal/exchange/structs"
)

// Ticker24h returns the rolling 24h statistics for one symbol.
func (e *Exchange) Ticker24h(ctx context.Context, symbol string) (*structs.Ticker24h, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	baseURL, err := e.publicURL(ticker24hUrlPath, q)
	if err != nil {
		return nil, err
	}

	resp, err := e.clientController.Send(ctx, http.MethodGet, baseURL, nil, false)
	if err != nil {
		return nil, errors.Wrapf(err, "ticker 24h %s", symbol)
	}

	var out structs.Ticker24h
	if err := json.Unmarshal(resp, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// MarketData fetches the 24h ticker for each of the given symbols, one
// request per symbol.
func (e *Exchange) MarketData(ctx context.Context, symbols []string) ([]structs.Ticker24h, error) {
	out := make([]structs.Ticker24h, 0, len(symbols))

	for _, symbol := range symbols {
		ticker, err := e.Ticker24h(ctx, symbol)
		if err != nil {
			return nil, err
		}

		out = append(out, *ticker)
	}

	return out, nil
}

// Price returns the last traded price for a symbol.
func (e *Exchange) Price(ctx context.Context, symbol string) (*structs.SymbolPrice, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	baseURL, err := e.publicURL(tickerPriceUrlPath, q)
	if err != nil {
		return nil, err
	}

	resp, err := e.clientController.Send(ctx, http.MethodGet, baseURL, nil, false)
	if err != nil {
		return nil, errors.Wrapf(err, "ticker price %s", symbol)
	}

	var out structs.SymbolPrice
	if err := json.Unmarshal(resp, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ExchangeInfo returns the current trading rules and symbol list.
func (e *Exchange) ExchangeInfo(ctx context.Context) (*structs.ExchangeInfo, error) {
	baseURL, err := e.publicURL(exchangeInfoUrlPath, nil)
	if err != nil {
		return nil, err
	}

	resp, err := e.clientController.Send(ctx, http.MethodGet, baseURL, nil, false)
	if err != nil {
		return nil, errors.Wrap(err, "exchange info")
	}

	var out structs.ExchangeInfo
	if err := json.Unmarshal(resp, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
