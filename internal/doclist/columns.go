package doclist

import (
	"strings"
	"time"

	"docstatus/internal/model"
)

// Kind is the comparator a column sorts with, inferred from its bound field.
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindTime
)

// iconBaseURL serves the 16px item-type icons referenced by DocumentRecord.IconName.
const iconBaseURL = "https://res-1.cdn.office.net/files/fabric-cdn-prod_20221209.001/assets/item-types/16/"

// Cell is one rendered table cell.
type Cell struct {
	Text    string   `json:"text"`
	Tooltip string   `json:"tooltip,omitempty"`
	IconURL string   `json:"icon_url,omitempty"`
	Actions []string `json:"actions,omitempty"`
}

// Row actions offered in the Actions column.
const (
	ActionDelete  = "delete"
	ActionReindex = "reindex"
)

// Column is one static entry of the column table.
type Column struct {
	Key      string
	Label    string
	Field    string
	MinWidth int
	MaxWidth int
	Render   func(model.DocumentRecord) Cell
}

// Kind reports the comparator kind of the column's bound field.
func (c Column) Kind() Kind {
	if f, ok := fields[c.Field]; ok {
		return f.kind
	}
	return KindNone
}

// SortLabel describes the ordering produced by the column in the given direction.
func (c Column) SortLabel(descending bool) string {
	switch c.Kind() {
	case KindString:
		if descending {
			return "Sorted Z to A"
		}
		return "Sorted A to Z"
	case KindTime:
		if descending {
			return "Sorted Newest to Oldest"
		}
		return "Sorted Oldest to Newest"
	}
	return ""
}

type field struct {
	kind Kind
	str  func(model.DocumentRecord) string
	time func(model.DocumentRecord) time.Time
}

// fields binds sortable field names to record accessors.
var fields = map[string]field{
	"name":               {kind: KindString, str: func(r model.DocumentRecord) string { return r.Name }},
	"fileType":           {kind: KindString, str: func(r model.DocumentRecord) string { return r.FileType }},
	"state":              {kind: KindString, str: func(r model.DocumentRecord) string { return r.State }},
	"upload_timestamp":   {kind: KindTime, time: func(r model.DocumentRecord) time.Time { return r.UploadTimestamp }},
	"modified_timestamp": {kind: KindTime, time: func(r model.DocumentRecord) time.Time { return r.ModifiedTimestamp }},
}

// Column keys.
const (
	ColumnFileType    = "column1"
	ColumnName        = "column2"
	ColumnState       = "column3"
	ColumnSubmittedOn = "column4"
	ColumnLastUpdated = "column5"
	ColumnActions     = "column6"
)

// Columns is the column table of the document list, in display order.
var Columns = []Column{
	{
		Key:      ColumnFileType,
		Label:    "File Type",
		Field:    "fileType",
		MinWidth: 16,
		MaxWidth: 16,
		Render: func(r model.DocumentRecord) Cell {
			return Cell{
				Text:    r.FileType,
				Tooltip: r.FileType + " file",
				IconURL: iconBaseURL + r.IconName + ".svg",
			}
		},
	},
	{
		Key:      ColumnName,
		Label:    "Name",
		Field:    "name",
		MinWidth: 210,
		MaxWidth: 350,
		Render: func(r model.DocumentRecord) Cell {
			return Cell{Text: r.Name}
		},
	},
	{
		Key:      ColumnState,
		Label:    "State",
		Field:    "state",
		MinWidth: 70,
		MaxWidth: 90,
		Render: func(r model.DocumentRecord) Cell {
			return Cell{Text: r.State, Tooltip: r.StateDescription}
		},
	},
	{
		Key:      ColumnSubmittedOn,
		Label:    "Submitted On",
		Field:    "upload_timestamp",
		MinWidth: 70,
		MaxWidth: 90,
		Render: func(r model.DocumentRecord) Cell {
			return Cell{Text: formatTimestamp(r.UploadTimestamp)}
		},
	},
	{
		Key:      ColumnLastUpdated,
		Label:    "Last Updated",
		Field:    "modified_timestamp",
		MinWidth: 70,
		MaxWidth: 90,
		Render: func(r model.DocumentRecord) Cell {
			return Cell{Text: formatTimestamp(r.ModifiedTimestamp)}
		},
	},
	{
		Key:      ColumnActions,
		Label:    "Actions",
		MinWidth: 16,
		MaxWidth: 16,
		Render: func(model.DocumentRecord) Cell {
			return Cell{Actions: []string{ActionDelete, ActionReindex}}
		},
	},
}

// ColumnByKey looks a column up by key.
func ColumnByKey(key string) (Column, bool) {
	for _, c := range Columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnByLabel looks a column up by its label, case-insensitively.
func ColumnByLabel(label string) (Column, bool) {
	for _, c := range Columns {
		if strings.EqualFold(c.Label, label) {
			return c, true
		}
	}
	return Column{}, false
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// compareBy returns a three-way comparator over the column's bound field.
// Columns without a sortable field compare every pair as equal.
func compareBy(c Column, descending bool) func(a, b model.DocumentRecord) int {
	f, ok := fields[c.Field]
	if !ok {
		return func(a, b model.DocumentRecord) int { return 0 }
	}

	var cmp func(a, b model.DocumentRecord) int
	switch f.kind {
	case KindString:
		cmp = func(a, b model.DocumentRecord) int { return strings.Compare(f.str(a), f.str(b)) }
	case KindTime:
		cmp = func(a, b model.DocumentRecord) int { return f.time(a).Compare(f.time(b)) }
	default:
		return func(a, b model.DocumentRecord) int { return 0 }
	}

	if descending {
		return func(a, b model.DocumentRecord) int { return cmp(b, a) }
	}
	return cmp
}

// SortState is the active sort column and its direction.
type SortState struct {
	Key        string `json:"key"`
	Descending bool   `json:"descending"`
}

// DefaultSort shows the newest documents first.
var DefaultSort = SortState{Key: ColumnLastUpdated, Descending: true}

// activate returns the state after a column activation. The active column flips
// direction; any other column becomes active in ascending order.
func (s SortState) activate(key string) SortState {
	if s.Key == key {
		return SortState{Key: key, Descending: !s.Descending}
	}
	return SortState{Key: key, Descending: false}
}

// descendingFor reports the direction flag a column carries under this state.
// Inactive columns rest at descending so their next activation sorts ascending.
func (s SortState) descendingFor(key string) bool {
	if s.Key == key {
		return s.Descending
	}
	return true
}
