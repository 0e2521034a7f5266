package credit

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockICreditWriter is a testify mock for ICreditWriter.
type MockICreditWriter struct {
	mock.Mock
}

var _ ICreditWriter = (*MockICreditWriter)(nil)

// NewMockICreditWriter registers a cleanup that asserts the expectations set on the mock.
func NewMockICreditWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockICreditWriter {
	m := new(MockICreditWriter)
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockICreditWriter) FindByID(ctx context.Context, id uuid.UUID) (*Credit, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*Credit)
	return r0, args.Error(1)
}

func (m *MockICreditWriter) List(ctx context.Context, filter *CreditFilter) ([]*Credit, error) {
	args := m.Called(ctx, filter)
	r0, _ := args.Get(0).([]*Credit)
	return r0, args.Error(1)
}

func (m *MockICreditWriter) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockICreditWriter) SumOriginalAmount(ctx context.Context, propertyID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockICreditWriter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Credit, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*Credit)
	return r0, args.Error(1)
}

func (m *MockICreditWriter) Insert(ctx context.Context, create *CreditCreate) (*Credit, error) {
	args := m.Called(ctx, create)
	r0, _ := args.Get(0).(*Credit)
	return r0, args.Error(1)
}

func (m *MockICreditWriter) Update(ctx context.Context, id uuid.UUID, update *CreditUpdate) (*Credit, error) {
	args := m.Called(ctx, id, update)
	r0, _ := args.Get(0).(*Credit)
	return r0, args.Error(1)
}

func (m *MockICreditWriter) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(bool), args.Error(1)
}
