package doclist

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// RenderTable writes s as a text table followed by the record count footer.
func RenderTable(w io.Writer, s Snapshot) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	header := make([]string, 0, len(s.Columns))
	for _, h := range s.Columns {
		label := h.Label
		if h.IsSorted {
			if h.IsSortedDescending {
				label += " ▼"
			} else {
				label += " ▲"
			}
		}
		header = append(header, label)
	}
	table.SetHeader(header)

	for _, row := range s.Rows {
		line := make([]string, 0, len(row.Cells))
		for _, c := range row.Cells {
			if len(c.Actions) > 0 {
				line = append(line, strings.Join(c.Actions, " | "))
				continue
			}
			line = append(line, c.Text)
		}
		table.Append(line)
	}
	table.Render()

	_, err := fmt.Fprintln(w, s.Footer)
	return err
}
