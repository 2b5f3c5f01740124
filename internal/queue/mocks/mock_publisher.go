package mocks

import (
	"context"

	"docstatus/internal/queue"

	"github.com/stretchr/testify/mock"
)

type MockPublisher struct {
	mock.Mock
}

var _ queue.Publisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ctx context.Context, req queue.EmbeddingRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
