package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/kirana"
)

// NoStock is the text displayed instead of an empty stock listing.
const NoStock = "No stock available."

// LowStockFlag is appended to items below their threshold.
const LowStockFlag = "(Insufficient! Please order more stock.)"

// StockMarkdown renders the stock report as a markdown list.
func StockMarkdown(r kirana.StockReport) string {
	if r.Empty() {
		return NoStock + "\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Available Stock\n\n")
	for _, e := range r.Entries {
		fmt.Fprintf(&b, "* %s: %d units", escape(e.Item), e.Quantity)
		if e.IsLow() {
			fmt.Fprintf(&b, " %s", LowStockFlag)
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}

// AlertsMarkdown renders a list of alerts, or nothing when there is none.
func AlertsMarkdown(alerts []kirana.AlertEvent) string {
	if len(alerts) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# Stock Alerts\n\n")
	for _, a := range alerts {
		fmt.Fprintf(&b, "* **%s**: %d units left, limit is %d\n", escape(a.Item), a.Quantity, a.Threshold)
	}
	return b.String()
}

// markdownEscaper escapes the characters that would turn an item name into markup.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	"#", `\#`,
	"\n", " ",
)

func escape(s string) string { return markdownEscaper.Replace(s) }
