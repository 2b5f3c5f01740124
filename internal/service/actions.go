package service

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"docstatus/internal/doclist"
	"docstatus/internal/model"
)

// RecordActions exposes a DocumentService as the delete and reindex
// collaborators of a document list view.
type RecordActions struct {
	svc DocumentService
}

var (
	_ doclist.Deleter        = (*RecordActions)(nil)
	_ doclist.EmbeddingQueue = (*RecordActions)(nil)
)

func NewRecordActions(svc DocumentService) *RecordActions {
	return &RecordActions{svc: svc}
}

// DeleteDocument deletes the record's document and reports an HTTP-style status.
func (a *RecordActions) DeleteDocument(ctx context.Context, rec model.DocumentRecord) (doclist.DeleteResult, error) {
	err := a.svc.Delete(ctx, rec.Key)
	return doclist.DeleteResult{Status: statusOf(err)}, err
}

// PushToEmbeddingsQueue submits the record's document for re-embedding.
func (a *RecordActions) PushToEmbeddingsQueue(ctx context.Context, rec model.DocumentRecord) error {
	_, err := a.svc.Reindex(ctx, rec.Key)
	return err
}

func statusOf(err error) string {
	code := http.StatusOK
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ErrIDRequired):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}
	return strconv.Itoa(code)
}
