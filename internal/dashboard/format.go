package dashboard

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Style classes shared by the formatter and the row renderer. The terminal
// front end maps them to lipgloss styles; they mirror the badge buckets of
// the web dashboard this replaces.
const (
	ClassSuccess   = "success"
	ClassDanger    = "danger"
	ClassPrimary   = "primary"
	ClassSecondary = "secondary"
)

const (
	ArrowUp   = "↑"
	ArrowDown = "↓"
)

// Currency renders v as a dollar amount with thousands separators and
// exactly two decimal places.
func Currency(v float64) string {
	return "$" + groupThousands(strconv.FormatFloat(v, 'f', 2, 64))
}

// OrderPrice renders an order price field. Zero or unparseable means the
// order executes at market.
func OrderPrice(s string) string {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return "Market"
	}

	return Currency(v)
}

// StopPrice renders a stop-price field, "-" when the order has none.
func StopPrice(s string) string {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return "-"
	}

	return Currency(v)
}

// Quantity renders a quantity with four fixed decimals.
func Quantity(s string) string {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		v = 0
	}

	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Change renders a signed percentage change as a direction glyph plus the
// absolute value, and picks the style class by the same sign test.
func Change(pct float64) (string, string) {
	arrow, class := ArrowUp, ClassSuccess
	if pct < 0 {
		arrow, class = ArrowDown, ClassDanger
		pct = -pct
	}

	return fmt.Sprintf("%s %.2f%%", arrow, pct), class
}

// ChangeString parses a percent-change field and renders it via Change.
// Unparseable input counts as zero change.
func ChangeString(s string) (string, string) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		v = 0
	}

	return Change(v)
}

// Timestamp converts epoch milliseconds to the viewer's local date-time.
func Timestamp(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04:05")
}

// groupThousands inserts commas into the integer part of a fixed-point
// decimal string.
func groupThousands(s string) string {
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}

	if len(intPart) > 3 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}

	if neg {
		intPart = "-" + intPart
	}

	return intPart + fracPart
}
