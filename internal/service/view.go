package service

import (
	"context"

	"docstatus/internal/doclist"
	"docstatus/internal/model"
	"docstatus/internal/repository"
)

// columnSortFields maps list view columns to the store ordering that matches them.
var columnSortFields = map[string]repository.SortField{
	doclist.ColumnFileType:    repository.SortByFileType,
	doclist.ColumnName:        repository.SortByFilename,
	doclist.ColumnState:       repository.SortByState,
	doclist.ColumnSubmittedOn: repository.SortByCreatedAt,
	doclist.ColumnLastUpdated: repository.SortByUpdatedAt,
}

// SortFieldFor returns the store ordering for a view column. Columns without a
// sortable field fall back to last update.
func SortFieldFor(columnKey string) repository.SortField {
	if f, ok := columnSortFields[columnKey]; ok {
		return f
	}
	return repository.SortByUpdatedAt
}

// NewView loads up to limit documents already ordered by opts.Sort (DefaultSort
// when nil) and builds a list view over them. Missing delete and reindex
// collaborators are filled in from svc.
func NewView(ctx context.Context, svc DocumentService, limit int, opts doclist.Options) (*doclist.View, error) {
	state := doclist.DefaultSort
	if opts.Sort != nil {
		if _, ok := doclist.ColumnByKey(opts.Sort.Key); ok {
			state = *opts.Sort
		}
	}

	res, err := svc.List(ctx, ListOptions{
		Limit:      limit,
		SortField:  SortFieldFor(state.Key),
		Descending: state.Descending,
	})
	if err != nil {
		return nil, err
	}

	actions := NewRecordActions(svc)
	if opts.Deleter == nil {
		opts.Deleter = actions
	}
	if opts.Queue == nil {
		opts.Queue = actions
	}
	opts.Sort = &state

	return doclist.New(model.NewDocumentRecords(res.Items), opts), nil
}
