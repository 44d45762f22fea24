package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amanagarwal13/Binanace-Trading/internal/dashboard"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	focusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	// classStyles maps the renderer's style classes onto terminal colors.
	classStyles = map[string]lipgloss.Style{
		dashboard.ClassSuccess:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		dashboard.ClassDanger:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		dashboard.ClassPrimary:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		dashboard.ClassSecondary: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
)

func classed(text, class string) string {
	if style, ok := classStyles[class]; ok && class != "" {
		return style.Render(text)
	}

	return text
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Binance Futures Trading Dashboard"))
	b.WriteString("\n\n")

	b.WriteString(m.viewMarket())
	b.WriteString(m.viewForm())

	if m.status != "" {
		b.WriteString(classed(m.status, m.statusClass))
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render("Open Orders"))
	b.WriteString("\n")
	b.WriteString(renderTable(m.tables.Open, m.selectedOpen))
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Order History"))
	b.WriteString("\n")
	b.WriteString(renderTable(m.tables.All, -1))
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Filled Orders"))
	b.WriteString("\n")
	b.WriteString(renderTable(m.tables.Filled, -1))
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Account Balance"))
	b.WriteString("\n")
	b.WriteString(renderTable(m.tables.Balances, -1))
	b.WriteString("\n")

	b.WriteString(dimStyle.Render("tab focus · ←/→ change · enter place · ↑/↓ select · ctrl+x cancel · ctrl+r refresh · q quit"))
	b.WriteString("\n")

	return b.String()
}

// viewMarket shows the market-data panel, only while a symbol is selected.
func (m model) viewMarket() string {
	if !m.marketVisible {
		return ""
	}

	snapshot := m.ctrl.State().Snapshot()
	if snapshot == nil {
		return borderStyle.Render(fmt.Sprintf("%s: loading market data...", m.symbol())) + "\n\n"
	}

	price := dashboard.OrderPrice(snapshot.LastPrice)
	change, class := dashboard.ChangeString(snapshot.PriceChangePercent)

	panel := fmt.Sprintf("%s  %s  %s",
		titleStyle.Render(snapshot.Symbol),
		price,
		classed(change, class),
	)

	return borderStyle.Render(panel) + "\n\n"
}

func (m model) viewForm() string {
	label := func(area focusArea, name, value string) string {
		if value == "" {
			value = "-"
		}
		text := fmt.Sprintf("%s: %s", name, value)
		if m.focused() == area {
			return focusStyle.Render("[" + text + "]")
		}
		return dimStyle.Render(" " + text + " ")
	}

	fields := []string{
		label(focusSymbol, "Symbol", m.symbol()),
		label(focusSide, "Side", sides[m.sideIdx]),
		label(focusType, "Type", m.orderType()),
		label(focusQuantity, "Quantity", m.quantity),
	}

	for _, f := range dashboard.VisibleFields(m.orderType()) {
		switch f {
		case dashboard.FieldPrice:
			fields = append(fields, label(focusPrice, "Price", m.price))
		case dashboard.FieldStopPrice:
			fields = append(fields, label(focusStopPrice, "Stop Price", m.stopPrice))
		}
	}

	submit := "Place Order"
	if m.busy {
		submit = "Processing..."
	}
	fields = append(fields, dimStyle.Render("("+submit+")"))

	return borderStyle.Render(strings.Join(fields, "  ")) + "\n\n"
}

func renderTable(t dashboard.Table, selected int) string {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = len(col)
	}
	for _, row := range t.Rows {
		for i, cell := range row.Cells {
			if i < len(widths) && len(cell.Text) > widths[i] {
				widths[i] = len(cell.Text)
			}
		}
	}

	var b strings.Builder

	b.WriteString("  ")
	for i, col := range t.Columns {
		b.WriteString(dimStyle.Render(pad(col, widths[i])))
		b.WriteString("  ")
	}
	b.WriteString("\n")

	if t.Placeholder != "" {
		b.WriteString(classed(t.Placeholder, t.Class))
		b.WriteString("\n")
		return b.String()
	}

	for r, row := range t.Rows {
		marker := "  "
		if r == selected {
			marker = focusStyle.Render("> ")
		}
		b.WriteString(marker)

		for i, cell := range row.Cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			b.WriteString(classed(pad(cell.Text, w), cell.Class))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}

	return s + strings.Repeat(" ", w-len(s))
}
