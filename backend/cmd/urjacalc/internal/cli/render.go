package cli

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"

	"urjaportal/backend/libs/i18n"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// renderPairs prints a two-column label/value table.
func renderPairs(w io.Writer, tag language.Tag, rows [][2]string) {
	table := newTable(w, i18n.Message(tag, i18n.KeyLabelItem), i18n.Message(tag, i18n.KeyLabelValue))
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, r := range rows {
		table.Append([]string{r[0], r[1]})
	}
	table.Render()
}

func label(tag language.Tag, key string) string {
	return i18n.Message(tag, key)
}

func number(tag language.Tag, v float64) string {
	return i18n.Printer(tag).Sprintf("%.2f", v)
}

func inr(tag language.Tag, v float64) string {
	return i18n.FormatINR(tag, v)
}
