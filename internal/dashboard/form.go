package dashboard

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/amanagarwal13/Binanace-Trading/internal/exchange/structs"
)

var (
	ErrSymbolRequired   = errors.New("symbol is required")
	ErrSideRequired     = errors.New("side is required")
	ErrQuantityInvalid  = errors.New("quantity must be a positive number")
	ErrPriceInvalid     = errors.New("price must be a positive number")
	ErrStopPriceInvalid = errors.New("stop price must be a positive number")
	ErrOrderTypeUnknown = errors.New("unknown order type")
)

// Field names the order-type dependent form inputs.
type Field string

const (
	FieldPrice     Field = "price"
	FieldStopPrice Field = "stopPrice"
)

// VisibleFields returns the parameter fields a given order type needs. The
// form hides every order-type field first and then shows exactly this set,
// so switching types never leaves a stale field visible.
func VisibleFields(orderType string) []Field {
	switch orderType {
	case structs.OrderTypeLimit:
		return []Field{FieldPrice}
	case structs.OrderTypeStop:
		return []Field{FieldStopPrice, FieldPrice}
	case structs.OrderTypeStopMarket:
		return []Field{FieldStopPrice}
	default:
		return nil
	}
}

// OrderForm holds the raw form state as entered.
type OrderForm struct {
	Symbol    string
	Side      string
	Type      string
	Quantity  string
	Price     string
	StopPrice string
}

// Build assembles the placement request, carrying only the fields the
// selected order type uses: MARKET none, LIMIT the price, STOP the trigger
// plus a limit price, STOP_MARKET the trigger alone.
func (f *OrderForm) Build() (*structs.OrderRequest, error) {
	if f.Symbol == "" {
		return nil, ErrSymbolRequired
	}
	if f.Side != structs.SideBuy && f.Side != structs.SideSell {
		return nil, ErrSideRequired
	}

	qty, err := parsePositive(f.Quantity)
	if err != nil {
		return nil, ErrQuantityInvalid
	}

	req := &structs.OrderRequest{
		Symbol:   f.Symbol,
		Side:     f.Side,
		Type:     f.Type,
		Quantity: qty,
	}

	switch f.Type {
	case structs.OrderTypeMarket:
	case structs.OrderTypeLimit:
		if req.Price, err = parsePositive(f.Price); err != nil {
			return nil, ErrPriceInvalid
		}
	case structs.OrderTypeStop:
		if req.StopPrice, err = parsePositive(f.StopPrice); err != nil {
			return nil, ErrStopPriceInvalid
		}
		if req.Price, err = parsePositive(f.Price); err != nil {
			return nil, ErrPriceInvalid
		}
	case structs.OrderTypeStopMarket:
		if req.StopPrice, err = parsePositive(f.StopPrice); err != nil {
			return nil, ErrStopPriceInvalid
		}
	default:
		return nil, ErrOrderTypeUnknown
	}

	return req, nil
}

// parsePositive normalizes a decimal form input, rejecting missing,
// malformed and non-positive values instead of letting them reach the API.
func parsePositive(s string) (string, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return "", err
	}

	if !d.IsPositive() {
		return "", errors.Errorf("not positive: %s", s)
	}

	return d.String(), nil
}
