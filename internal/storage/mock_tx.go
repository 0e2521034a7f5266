package storage

import (
	"context"
	"database/sql"

	"github.com/stephenafamo/scan"
	"github.com/stretchr/testify/mock"
)

// MockTx is a testify mock for Tx. Queries fail; tests replace the Writer's table writers with mocks.
type MockTx struct {
	mock.Mock
}

var _ Tx = (*MockTx)(nil)

func NewMockTx(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTx {
	m := new(MockTx)
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTx) QueryContext(ctx context.Context, query string, args ...any) (scan.Rows, error) {
	return nil, sql.ErrConnDone
}

func (m *MockTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return nil, sql.ErrConnDone
}

func (m *MockTx) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
