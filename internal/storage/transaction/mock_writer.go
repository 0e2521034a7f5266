package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/property-ledger/internal/domain"
)

// MockITransactionWriter is a testify mock for ITransactionWriter.
type MockITransactionWriter struct {
	mock.Mock
}

var _ ITransactionWriter = (*MockITransactionWriter)(nil)

// NewMockITransactionWriter registers a cleanup that asserts the expectations set on the mock.
func NewMockITransactionWriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockITransactionWriter {
	m := new(MockITransactionWriter)
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockITransactionWriter) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*Transaction)
	return r0, args.Error(1)
}

func (m *MockITransactionWriter) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	args := m.Called(ctx, filter)
	r0, _ := args.Get(0).([]*Transaction)
	return r0, args.Error(1)
}

func (m *MockITransactionWriter) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockITransactionWriter) CountByCredit(ctx context.Context, creditID uuid.UUID) (int64, error) {
	args := m.Called(ctx, creditID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockITransactionWriter) SumByType(ctx context.Context, propertyID uuid.UUID, transactionType domain.TransactionType) (decimal.Decimal, error) {
	args := m.Called(ctx, propertyID, transactionType)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockITransactionWriter) SumCreditPayments(ctx context.Context, propertyID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockITransactionWriter) SumByCredit(ctx context.Context, creditIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	args := m.Called(ctx, creditIDs)
	r0, _ := args.Get(0).(map[uuid.UUID]decimal.Decimal)
	return r0, args.Error(1)
}

func (m *MockITransactionWriter) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	args := m.Called(ctx, id)
	r0, _ := args.Get(0).(*Transaction)
	return r0, args.Error(1)
}

func (m *MockITransactionWriter) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	args := m.Called(ctx, create)
	r0, _ := args.Get(0).(*Transaction)
	return r0, args.Error(1)
}

func (m *MockITransactionWriter) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	args := m.Called(ctx, id, update)
	r0, _ := args.Get(0).(*Transaction)
	return r0, args.Error(1)
}

func (m *MockITransactionWriter) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(bool), args.Error(1)
}
