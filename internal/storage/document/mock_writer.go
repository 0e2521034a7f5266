package document

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"
)

// MockIDocumentWriter is a testify mock for IDocumentWriter.
type MockIDocumentWriter struct {
	mock.Mock
}

var _ IDocumentWriter = (*MockIDocumentWriter)(nil)

// NewMockIDocumentWriter registers a cleanup that asserts the expectations set on the mock.
func NewMockIDocumentWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIDocumentWriter {
	m := new(MockIDocumentWriter)
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIDocumentWriter) FindByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*Document)
	return r0, args.Error(1)
}

func (m *MockIDocumentWriter) List(ctx context.Context, filter *DocumentFilter) ([]*Document, error) {
	args := m.Called(ctx, filter)
	r0, _ := args.Get(0).([]*Document)
	return r0, args.Error(1)
}

func (m *MockIDocumentWriter) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIDocumentWriter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Document, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*Document)
	return r0, args.Error(1)
}

func (m *MockIDocumentWriter) Insert(ctx context.Context, create *DocumentCreate) (*Document, error) {
	args := m.Called(ctx, create)
	r0, _ := args.Get(0).(*Document)
	return r0, args.Error(1)
}

func (m *MockIDocumentWriter) Update(ctx context.Context, id uuid.UUID, update *DocumentUpdate) (*Document, error) {
	args := m.Called(ctx, id, update)
	r0, _ := args.Get(0).(*Document)
	return r0, args.Error(1)
}

func (m *MockIDocumentWriter) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(bool), args.Error(1)
}

func (m *MockIDocumentWriter) ClearTransactionLink(ctx context.Context, transactionID uuid.UUID) (int64, error) {
	args := m.Called(ctx, transactionID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIDocumentWriter) ClearCreditLink(ctx context.Context, creditID uuid.UUID) (int64, error) {
	args := m.Called(ctx, creditID)
	return args.Get(0).(int64), args.Error(1)
}
