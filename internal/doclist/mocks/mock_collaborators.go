package mocks

import (
	"context"

	"docstatus/internal/doclist"
	"docstatus/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDeleter struct {
	mock.Mock
}

func (m *MockDeleter) DeleteDocument(ctx context.Context, rec model.DocumentRecord) (doclist.DeleteResult, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(doclist.DeleteResult), args.Error(1)
}

type MockEmbeddingQueue struct {
	mock.Mock
}

func (m *MockEmbeddingQueue) PushToEmbeddingsQueue(ctx context.Context, rec model.DocumentRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
