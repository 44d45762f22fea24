package structs

const (
	SideBuy  = "BUY"
	SideSell = "SELL"

	OrderTypeMarket           = "MARKET"
	OrderTypeLimit            = "LIMIT"
	OrderTypeStop             = "STOP"
	OrderTypeStopMarket       = "STOP_MARKET"
	OrderTypeTakeProfit       = "TAKE_PROFIT"
	OrderTypeTakeProfitMarket = "TAKE_PROFIT_MARKET"

	OrderStatusNew             = "NEW"
	OrderStatusPartiallyFilled = "PARTIALLY_FILLED"
	OrderStatusFilled          = "FILLED"
	OrderStatusCanceled        = "CANCELED"
	OrderStatusRejected        = "REJECTED"
	OrderStatusExpired         = "EXPIRED"
)

type Order struct {
	Symbol        string `json:"symbol"`
	OrderId       int64  `json:"orderId"`
	ClientOrderId string `json:"clientOrderId"`
	Price         string `json:"price"`
	AvgPrice      string `json:"avgPrice"`
	OrigQty       string `json:"origQty"`
	ExecutedQty   string `json:"executedQty"`
	CumQuote      string `json:"cumQuote"`
	Status        string `json:"status"`
	TimeInForce   string `json:"timeInForce"`
	Type          string `json:"type"`
	OrigType      string `json:"origType"`
	Side          string `json:"side"`
	PositionSide  string `json:"positionSide"`
	StopPrice     string `json:"stopPrice"`
	WorkingType   string `json:"workingType"`
	ReduceOnly    bool   `json:"reduceOnly"`
	ClosePosition bool   `json:"closePosition"`
	Time          int64  `json:"time"`
	UpdateTime    int64  `json:"updateTime"`
}

// OrderRequest carries the order-placement parameters accepted by the
// dashboard API. Price and StopPrice are set only for the order types
// that need them.
type OrderRequest struct {
	Symbol    string `json:"symbol"`
	Side      string `json:"side"`
	Type      string `json:"order_type"`
	Quantity  string `json:"quantity"`
	Price     string `json:"price,omitempty"`
	StopPrice string `json:"stop_price,omitempty"`
}

type CancelRequest struct {
	Symbol  string `json:"symbol"`
	OrderId int64  `json:"order_id"`
}

type OCORequest struct {
	Symbol         string `json:"symbol"`
	Side           string `json:"side"`
	Quantity       string `json:"quantity"`
	Price          string `json:"price"`
	StopPrice      string `json:"stop_price"`
	StopLimitPrice string `json:"stop_limit_price"`
}
