package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amanagarwal13/Binanace-Trading/internal/dashboard"
	"github.com/amanagarwal13/Binanace-Trading/internal/exchange/structs"
)

type focusArea int

const (
	focusSymbol focusArea = iota
	focusSide
	focusType
	focusQuantity
	focusPrice
	focusStopPrice
)

var sides = []string{structs.SideBuy, structs.SideSell}

type marketMsg dashboard.MarketUpdate

type tablesMsg dashboard.Tables

type placeResultMsg struct {
	order  *structs.Order
	tables *dashboard.Tables
	err    error
}

type cancelResultMsg struct {
	tables *dashboard.OrderTables
	err    error
}

type model struct {
	ctrl    *dashboard.Controller
	symbols []string

	// order form
	symbolIdx int // -1 means no selection
	sideIdx   int
	typeIdx   int
	quantity  string
	price     string
	stopPrice string
	focus     int

	busy bool

	tables        dashboard.Tables
	marketVisible bool

	selectedOpen int
	confirm      *dashboard.CancelAction

	status      string
	statusClass string

	width int
}

func newModel(ctrl *dashboard.Controller, symbols []string) model {
	return model{
		ctrl:      ctrl,
		symbols:   symbols,
		symbolIdx: -1,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		refreshAllCmd(m.ctrl),
		waitForMarket(m.ctrl),
	)
}

// focusOrder is the tab cycle over the currently visible form inputs; the
// price and stop-price slots appear only for the order types that use them.
func (m model) focusOrder() []focusArea {
	out := []focusArea{focusSymbol, focusSide, focusType, focusQuantity}

	for _, f := range dashboard.VisibleFields(m.orderType()) {
		switch f {
		case dashboard.FieldPrice:
			out = append(out, focusPrice)
		case dashboard.FieldStopPrice:
			out = append(out, focusStopPrice)
		}
	}

	return out
}

func (m model) orderType() string {
	return orderTypes[m.typeIdx]
}

func (m model) symbol() string {
	if m.symbolIdx < 0 {
		return ""
	}

	return m.symbols[m.symbolIdx]
}

func (m model) focused() focusArea {
	order := m.focusOrder()
	return order[m.focus%len(order)]
}

func (m *model) input() *string {
	switch m.focused() {
	case focusQuantity:
		return &m.quantity
	case focusPrice:
		return &m.price
	case focusStopPrice:
		return &m.stopPrice
	default:
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case marketMsg:
		if msg.Err != nil {
			m.setStatus(msg.Err.Error(), dashboard.ClassDanger)
		}
		return m, waitForMarket(m.ctrl)

	case tablesMsg:
		m.tables = dashboard.Tables(msg)
		m.clampSelection()
		return m, nil

	case placeResultMsg:
		m.busy = false
		if msg.err != nil {
			m.setStatus("Order Failed: "+msg.err.Error(), dashboard.ClassDanger)
			return m, nil
		}

		m.setStatus(orderSummary(msg.order), dashboard.ClassSuccess)
		m.quantity, m.price, m.stopPrice = "", "", ""
		if msg.tables != nil {
			m.tables = *msg.tables
			m.clampSelection()
		}
		return m, nil

	case cancelResultMsg:
		if msg.err != nil {
			m.setStatus("Error: "+msg.err.Error(), dashboard.ClassDanger)
			return m, nil
		}

		m.setStatus("Order cancelled successfully", dashboard.ClassSuccess)
		if msg.tables != nil {
			m.tables.OrderTables = *msg.tables
			m.clampSelection()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending cancel confirmation swallows everything except y/n.
	if m.confirm != nil {
		switch msg.String() {
		case "y", "Y":
			action := m.confirm
			m.confirm = nil
			return m, cancelOrderCmd(m.ctrl, action)
		case "n", "N", "esc":
			m.confirm = nil
			m.setStatus("", "")
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.ctrl.SelectSymbol("")
		return m, tea.Quit

	case "tab":
		m.focus = (m.focus + 1) % len(m.focusOrder())
		return m, nil

	case "shift+tab":
		order := m.focusOrder()
		m.focus = (m.focus + len(order) - 1) % len(order)
		return m, nil

	case "left", "right":
		return m.cycle(msg.String() == "right"), nil

	case "up":
		if m.selectedOpen > 0 {
			m.selectedOpen--
		}
		return m, nil

	case "down":
		if m.selectedOpen < len(m.tables.Open.Rows)-1 {
			m.selectedOpen++
		}
		return m, nil

	case "enter":
		if m.busy {
			return m, nil
		}

		m.busy = true
		m.setStatus("Processing...", "")

		form := &dashboard.OrderForm{
			Symbol:    m.symbol(),
			Side:      sides[m.sideIdx],
			Type:      m.orderType(),
			Quantity:  m.quantity,
			Price:     m.price,
			StopPrice: m.stopPrice,
		}

		return m, placeOrderCmd(m.ctrl, form)

	case "ctrl+r":
		return m, refreshAllCmd(m.ctrl)

	case "ctrl+x":
		if m.selectedOpen < len(m.tables.Open.Rows) {
			if action := m.tables.Open.Rows[m.selectedOpen].Cancel; action != nil {
				m.confirm = action
				m.setStatus(fmt.Sprintf("Cancel order %d on %s? (y/n)", action.OrderId, action.Symbol), dashboard.ClassDanger)
			}
		}
		return m, nil

	case "backspace":
		if in := m.input(); in != nil && len(*in) > 0 {
			*in = (*in)[:len(*in)-1]
		}
		return m, nil

	default:
		if in := m.input(); in != nil && len(msg.Runes) == 1 {
			r := msg.Runes[0]
			if (r >= '0' && r <= '9') || r == '.' {
				*in += string(r)
			}
		}
		return m, nil
	}
}

// cycle steps the value under the non-text form inputs. Moving the symbol
// selection re-targets the poller; clearing it hides the market panel and
// stops polling without fetching.
func (m model) cycle(forward bool) model {
	step := -1
	if forward {
		step = 1
	}

	switch m.focused() {
	case focusSymbol:
		n := len(m.symbols) + 1 // the extra slot is "no selection"
		m.symbolIdx = ((m.symbolIdx+1+step)%n+n)%n - 1

		m.ctrl.SelectSymbol(m.symbol())
		m.marketVisible = m.symbol() != ""

	case focusSide:
		n := len(sides)
		m.sideIdx = ((m.sideIdx+step)%n + n) % n

	case focusType:
		n := len(orderTypes)
		m.typeIdx = ((m.typeIdx+step)%n + n) % n
		// The visible field set just changed; keep focus on the type input.
		m.focus = 2
	}

	return m
}

func (m *model) setStatus(text, class string) {
	m.status = text
	m.statusClass = class
}

func (m *model) clampSelection() {
	if m.selectedOpen >= len(m.tables.Open.Rows) {
		m.selectedOpen = 0
	}
}

func orderSummary(order *structs.Order) string {
	return fmt.Sprintf("Order Placed Successfully: %s %s %s qty %s price %s id %d",
		order.Symbol,
		order.Side,
		order.Type,
		dashboard.Quantity(order.OrigQty),
		dashboard.OrderPrice(order.Price),
		order.OrderId,
	)
}

func waitForMarket(ctrl *dashboard.Controller) tea.Cmd {
	return func() tea.Msg {
		return marketMsg(<-ctrl.Updates())
	}
}

func refreshAllCmd(ctrl *dashboard.Controller) tea.Cmd {
	return func() tea.Msg {
		return tablesMsg(ctrl.RefreshAll(context.Background()))
	}
}

func placeOrderCmd(ctrl *dashboard.Controller, form *dashboard.OrderForm) tea.Cmd {
	return func() tea.Msg {
		order, tables, err := ctrl.PlaceOrder(context.Background(), form)
		return placeResultMsg{order: order, tables: tables, err: err}
	}
}

func cancelOrderCmd(ctrl *dashboard.Controller, action *dashboard.CancelAction) tea.Cmd {
	return func() tea.Msg {
		tables, err := ctrl.CancelOrder(context.Background(), action, true)
		return cancelResultMsg{tables: tables, err: err}
	}
}
