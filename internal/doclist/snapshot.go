package doclist

import (
	"fmt"

	"docstatus/internal/model"
)

// HeaderCell is the rendered state of one column header.
type HeaderCell struct {
	Key                string `json:"key"`
	Label              string `json:"label"`
	MinWidth           int    `json:"min_width"`
	MaxWidth           int    `json:"max_width"`
	Sortable           bool   `json:"sortable"`
	IsSorted           bool   `json:"is_sorted"`
	IsSortedDescending bool   `json:"is_sorted_descending"`
	SortLabel          string `json:"sort_label,omitempty"`
}

// Row is one rendered record.
type Row struct {
	Key   string `json:"key"`
	Cells []Cell `json:"cells"`
}

// Snapshot is a point-in-time rendering of a view.
type Snapshot struct {
	Columns []HeaderCell          `json:"columns"`
	Rows    []Row                 `json:"rows"`
	Count   int                   `json:"count"`
	Footer  string                `json:"footer"`
	Sort    SortState             `json:"sort"`
	Target  *model.DocumentRecord `json:"target,omitempty"`
	Phase   Phase                 `json:"phase"`
}

// Snapshot renders the header and one row per record in the current order.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	records := v.records
	state := v.sort
	phase := v.phase
	var target *model.DocumentRecord
	if v.target != nil {
		t := *v.target
		target = &t
	}
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		cells := make([]Cell, 0, len(Columns))
		for _, c := range Columns {
			cells = append(cells, c.Render(r))
		}
		rows = append(rows, Row{Key: r.Key, Cells: cells})
	}
	v.mu.Unlock()

	headers := make([]HeaderCell, 0, len(Columns))
	for _, c := range Columns {
		h := HeaderCell{
			Key:                c.Key,
			Label:              c.Label,
			MinWidth:           c.MinWidth,
			MaxWidth:           c.MaxWidth,
			Sortable:           c.Kind() != KindNone,
			IsSorted:           state.Key == c.Key,
			IsSortedDescending: state.descendingFor(c.Key),
		}
		if h.IsSorted {
			h.SortLabel = c.SortLabel(h.IsSortedDescending)
		}
		headers = append(headers, h)
	}

	return Snapshot{
		Columns: headers,
		Rows:    rows,
		Count:   len(rows),
		Footer:  Footer(len(rows)),
		Sort:    state,
		Target:  target,
		Phase:   phase,
	}
}

// Footer is the record count line shown under the table.
func Footer(n int) string {
	return fmt.Sprintf("(%d) records.", n)
}
