package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanagarwal13/Binanace-Trading/internal/exchange/structs"
)

func TestVisibleFields(t *testing.T) {
	cases := map[string][]Field{
		structs.OrderTypeMarket:     nil,
		structs.OrderTypeLimit:      {FieldPrice},
		structs.OrderTypeStop:       {FieldStopPrice, FieldPrice},
		structs.OrderTypeStopMarket: {FieldStopPrice},
		"SOMETHING_ELSE":            nil,
	}

	for orderType, want := range cases {
		assert.Equal(t, want, VisibleFields(orderType), orderType)
	}
}

func TestOrderFormBuild(t *testing.T) {
	base := OrderForm{
		Symbol:   "BTCUSDT",
		Side:     structs.SideBuy,
		Quantity: "0.5",
	}

	t.Run("market carries no price fields", func(t *testing.T) {
		form := base
		form.Type = structs.OrderTypeMarket
		// Leftover values from a previously selected type must not leak.
		form.Price = "27000"
		form.StopPrice = "26000"

		req, err := form.Build()
		require.NoError(t, err)

		assert.Equal(t, &structs.OrderRequest{
			Symbol:   "BTCUSDT",
			Side:     structs.SideBuy,
			Type:     structs.OrderTypeMarket,
			Quantity: "0.5",
		}, req)
	})

	t.Run("limit adds price", func(t *testing.T) {
		form := base
		form.Type = structs.OrderTypeLimit
		form.Price = "27000.50"

		req, err := form.Build()
		require.NoError(t, err)

		assert.Equal(t, "27000.5", req.Price)
		assert.Empty(t, req.StopPrice)
	})

	t.Run("stop adds trigger and limit price", func(t *testing.T) {
		form := base
		form.Type = structs.OrderTypeStop
		form.Price = "27000"
		form.StopPrice = "26500"

		req, err := form.Build()
		require.NoError(t, err)

		assert.Equal(t, "27000", req.Price)
		assert.Equal(t, "26500", req.StopPrice)
	})

	t.Run("stop market adds trigger only", func(t *testing.T) {
		form := base
		form.Type = structs.OrderTypeStopMarket
		form.StopPrice = "26500"

		req, err := form.Build()
		require.NoError(t, err)

		assert.Empty(t, req.Price)
		assert.Equal(t, "26500", req.StopPrice)
	})

	t.Run("validation", func(t *testing.T) {
		form := base
		form.Type = structs.OrderTypeLimit
		_, err := form.Build()
		assert.ErrorIs(t, err, ErrPriceInvalid)

		form = base
		form.Type = structs.OrderTypeStop
		form.Price = "27000"
		_, err = form.Build()
		assert.ErrorIs(t, err, ErrStopPriceInvalid)

		form = base
		form.Type = structs.OrderTypeMarket
		form.Quantity = "0"
		_, err = form.Build()
		assert.ErrorIs(t, err, ErrQuantityInvalid)

		form = base
		form.Type = structs.OrderTypeMarket
		form.Quantity = "abc"
		_, err = form.Build()
		assert.ErrorIs(t, err, ErrQuantityInvalid)

		form = base
		form.Type = structs.OrderTypeMarket
		form.Symbol = ""
		_, err = form.Build()
		assert.ErrorIs(t, err, ErrSymbolRequired)

		form = base
		form.Type = structs.OrderTypeMarket
		form.Side = "HOLD"
		_, err = form.Build()
		assert.ErrorIs(t, err, ErrSideRequired)

		form = base
		form.Type = "TRAILING_STOP"
		_, err = form.Build()
		assert.ErrorIs(t, err, ErrOrderTypeUnknown)
	})
}
