package popup

import (
	"fmt"
	"strings"
)

// Render formats a popup as plain text for chat front-ends.
func Render(p Popup, updatedLayout string) string {
	rows := make([]string, 0, len(p.Lines)+3)
	if p.ErrorMessage != "" {
		rows = append(rows, p.ErrorMessage)
	}
	for _, line := range p.Lines {
		rows = append(rows, fmt.Sprintf("%s %s = %s %s", line.From, line.FromCurrency, line.To, line.ToCurrency))
	}
	if p.LastUpdated != nil {
		rows = append(rows, "Updated: "+p.LastUpdated.Format(updatedLayout))
	}
	if p.UsageText != "" {
		rows = append(rows, p.UsageText)
	}
	return strings.Join(rows, "\n")
}
