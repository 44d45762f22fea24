package dashboard

import (
	"sort"
	"strconv"

	"github.com/amanagarwal13/Binanace-Trading/internal/exchange/structs"
)

// Placeholder texts rendered as a single row spanning all columns.
const (
	PlaceholderNoOrders       = "No orders found"
	PlaceholderNoFilledOrders = "No filled orders found"
	PlaceholderNoOpenOrders   = "No open orders"
	PlaceholderNoBalanceData  = "No balance data available"
	PlaceholderNoAssets       = "No assets with balance"
)

type Cell struct {
	Text  string
	Class string
}

// CancelAction carries the identifiers a cancel control needs.
type CancelAction struct {
	OrderId int64
	Symbol  string
}

type Row struct {
	Cells  []Cell
	Cancel *CancelAction
}

// Table is one display region: either rows, or a placeholder when there is
// nothing to show.
type Table struct {
	Columns     []string
	Rows        []Row
	Placeholder string
	Class       string
}

var (
	orderColumns        = []string{"Symbol", "Side", "Type", "Price", "Stop Price", "Quantity", "Status", "Time"}
	orderActionsColumns = append(append([]string{}, orderColumns...), "Actions")
	balanceColumns      = []string{"Asset", "Wallet Balance", "Unrealized PNL", "Available"}
)

func statusClass(status string) string {
	switch status {
	case structs.OrderStatusFilled:
		return ClassSuccess
	case structs.OrderStatusCanceled, structs.OrderStatusRejected, structs.OrderStatusExpired:
		return ClassDanger
	case structs.OrderStatusNew, structs.OrderStatusPartiallyFilled:
		return ClassPrimary
	default:
		return ClassSecondary
	}
}

func sideClass(side string) string {
	if side == structs.SideBuy {
		return ClassSuccess
	}

	return ClassDanger
}

// OrderRow renders one order. With showActions the row carries an actions
// cell, holding a cancel control only while the order is still working;
// without it the actions column is omitted entirely.
func OrderRow(order structs.Order, showActions bool) Row {
	row := Row{
		Cells: []Cell{
			{Text: order.Symbol},
			{Text: order.Side, Class: sideClass(order.Side)},
			{Text: order.Type},
			{Text: OrderPrice(order.Price)},
			{Text: StopPrice(order.StopPrice)},
			{Text: Quantity(order.OrigQty)},
			{Text: order.Status, Class: statusClass(order.Status)},
			{Text: Timestamp(order.Time)},
		},
	}

	if !showActions {
		return row
	}

	actions := Cell{}
	if order.Status == structs.OrderStatusNew || order.Status == structs.OrderStatusPartiallyFilled {
		actions.Text = "Cancel"
		actions.Class = ClassDanger
		row.Cancel = &CancelAction{
			OrderId: order.OrderId,
			Symbol:  order.Symbol,
		}
	}
	row.Cells = append(row.Cells, actions)

	return row
}

// sortByTimeDesc returns a copy of orders ordered newest first. Rendering
// never mutates the caller's slice.
func sortByTimeDesc(orders []structs.Order) []structs.Order {
	out := make([]structs.Order, len(orders))
	copy(out, orders)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time > out[j].Time
	})

	return out
}

// OrderHistoryTables renders the order-history region and the derived
// filled-only region. The filled subset is an exact status match and falls
// back to its own placeholder independently.
func OrderHistoryTables(orders []structs.Order) (all Table, filled Table) {
	all = Table{Columns: orderActionsColumns}
	filled = Table{Columns: orderColumns}

	if len(orders) == 0 {
		all.Placeholder = PlaceholderNoOrders
		filled.Placeholder = PlaceholderNoFilledOrders
		return all, filled
	}

	sorted := sortByTimeDesc(orders)

	for _, order := range sorted {
		all.Rows = append(all.Rows, OrderRow(order, true))

		if order.Status == structs.OrderStatusFilled {
			filled.Rows = append(filled.Rows, OrderRow(order, false))
		}
	}

	if len(filled.Rows) == 0 {
		filled.Placeholder = PlaceholderNoFilledOrders
	}

	return all, filled
}

// OpenOrdersTable renders the open-orders region, newest first.
func OpenOrdersTable(orders []structs.Order) Table {
	out := Table{Columns: orderActionsColumns}

	if len(orders) == 0 {
		out.Placeholder = PlaceholderNoOpenOrders
		return out
	}

	for _, order := range sortByTimeDesc(orders) {
		out.Rows = append(out.Rows, OrderRow(order, true))
	}

	return out
}

// BalanceTable renders the account assets holding a positive wallet
// balance.
func BalanceTable(account *structs.Account) Table {
	out := Table{Columns: balanceColumns}

	if account == nil || len(account.Assets) == 0 {
		out.Placeholder = PlaceholderNoBalanceData
		return out
	}

	for _, asset := range account.Assets {
		wallet, err := strconv.ParseFloat(asset.WalletBalance, 64)
		if err != nil || wallet <= 0 {
			continue
		}

		pnl, _ := strconv.ParseFloat(asset.UnrealizedProfit, 64)
		pnlClass := ClassSuccess
		if pnl < 0 {
			pnlClass = ClassDanger
		}

		available, _ := strconv.ParseFloat(asset.AvailableBalance, 64)

		out.Rows = append(out.Rows, Row{
			Cells: []Cell{
				{Text: asset.Asset},
				{Text: strconv.FormatFloat(wallet, 'f', 2, 64)},
				{Text: strconv.FormatFloat(pnl, 'f', 2, 64), Class: pnlClass},
				{Text: strconv.FormatFloat(available, 'f', 2, 64)},
			},
		})
	}

	if len(out.Rows) == 0 {
		out.Placeholder = PlaceholderNoAssets
	}

	return out
}

// FailedTable renders a region-level load failure as a danger placeholder.
func FailedTable(columns []string, msg string) Table {
	return Table{
		Columns:     columns,
		Placeholder: msg,
		Class:       ClassDanger,
	}
}
