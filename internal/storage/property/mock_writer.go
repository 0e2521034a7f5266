package property

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
)

// MockIPropertyWriter is a testify mock for IPropertyWriter.
type MockIPropertyWriter struct {
	mock.Mock
}

var _ IPropertyWriter = (*MockIPropertyWriter)(nil)

// NewMockIPropertyWriter registers a cleanup that asserts the expectations set on the mock.
func NewMockIPropertyWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIPropertyWriter {
	m := new(MockIPropertyWriter)
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockIPropertyWriter) FindByID(ctx context.Context, id uuid.UUID) (*Property, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*Property)
	return r0, args.Error(1)
}

func (m *MockIPropertyWriter) List(ctx context.Context, page sqlconfig.Page) ([]*Property, error) {
	args := m.Called(ctx, page)
	r0, _ := args.Get(0).([]*Property)
	return r0, args.Error(1)
}

func (m *MockIPropertyWriter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Property, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*Property)
	return r0, args.Error(1)
}

func (m *MockIPropertyWriter) Insert(ctx context.Context, create *PropertyCreate) (*Property, error) {
	args := m.Called(ctx, create)
	r0, _ := args.Get(0).(*Property)
	return r0, args.Error(1)
}

func (m *MockIPropertyWriter) Update(ctx context.Context, id uuid.UUID, update *PropertyUpdate) (*Property, error) {
	args := m.Called(ctx, id, update)
	r0, _ := args.Get(0).(*Property)
	return r0, args.Error(1)
}

func (m *MockIPropertyWriter) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(bool), args.Error(1)
}
