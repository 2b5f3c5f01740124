package service_test

import (
	"context"
	"errors"
	"testing"

	"docstatus/internal/doclist"
	"docstatus/internal/model"
	"docstatus/internal/service"
	svcMocks "docstatus/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordActions_DeleteDocument(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus string
	}{
		{name: "deleted", err: nil, wantStatus: "200"},
		{name: "not found", err: service.ErrNotFound, wantStatus: "404"},
		{name: "missing id", err: service.ErrIDRequired, wantStatus: "400"},
		{name: "storage failure", err: errors.New("delete storage: timeout"), wantStatus: "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mSvc := new(svcMocks.MockDocumentService)
			mSvc.On("Delete", mock.Anything, "doc-1").Return(tt.err)

			res, err := service.NewRecordActions(mSvc).DeleteDocument(context.Background(), model.DocumentRecord{Key: "doc-1"})

			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.err, err)
			mSvc.AssertExpectations(t)
		})
	}
}

func TestRecordActions_PushToEmbeddingsQueue(t *testing.T) {
	mSvc := new(svcMocks.MockDocumentService)
	mSvc.On("Reindex", mock.Anything, "doc-1").Return(&model.Document{ID: "doc-1"}, nil).Once()
	mSvc.On("Reindex", mock.Anything, "doc-2").Return(nil, errors.New("broker down")).Once()

	a := service.NewRecordActions(mSvc)
	assert.NoError(t, a.PushToEmbeddingsQueue(context.Background(), model.DocumentRecord{Key: "doc-1"}))
	assert.EqualError(t, a.PushToEmbeddingsQueue(context.Background(), model.DocumentRecord{Key: "doc-2"}), "broker down")
	mSvc.AssertExpectations(t)
}

func TestRecordActions_DrivesView(t *testing.T) {
	mSvc := new(svcMocks.MockDocumentService)
	mSvc.On("Delete", mock.Anything, "doc-1").Return(nil).Once()
	mSvc.On("Delete", mock.Anything, "doc-2").Return(service.ErrNotFound).Once()

	a := service.NewRecordActions(mSvc)
	recs := []model.DocumentRecord{{Key: "doc-1"}, {Key: "doc-2"}}
	v := doclist.New(recs, doclist.Options{Deleter: a, Queue: a})

	require.NoError(t, v.Delete(context.Background(), recs[0]))

	err := v.Delete(context.Background(), recs[1])
	var aerr *doclist.ActionError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "404", aerr.Status)
	assert.ErrorIs(t, err, service.ErrNotFound)

	assert.Len(t, v.Records(), 1)
	assert.Equal(t, "doc-2", v.Records()[0].Key)
}
