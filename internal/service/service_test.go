package service

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/property-ledger/internal/operator/actions"
	"github.com/carson-networks/property-ledger/internal/storage"
	"github.com/carson-networks/property-ledger/internal/storage/credit"
	"github.com/carson-networks/property-ledger/internal/storage/document"
	"github.com/carson-networks/property-ledger/internal/storage/property"
	"github.com/carson-networks/property-ledger/internal/storage/transaction"
)

type readers struct {
	properties   *property.MockIPropertyWriter
	credits      *credit.MockICreditWriter
	transactions *transaction.MockITransactionWriter
	documents    *document.MockIDocumentWriter
}

type fakeStorage struct {
	reader *storage.Reader
}

func (f *fakeStorage) Read() *storage.Reader {
	return f.reader
}

// mockOperator is a mock for actionProcessor. Tests fill in action results with Run.
type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}

// mockStore is a mock for filestore.Store.
type mockStore struct {
	mock.Mock
}

func (m *mockStore) Save(ctx context.Context, propertyID uuid.UUID, originalName string, r io.Reader) (string, int64, error) {
	args := m.Called(ctx, propertyID, originalName, r)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *mockStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	args := m.Called(ctx, path)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

var fixedNow = time.Date(2025, 6, 15, 22, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *readers, *mockOperator, *mockStore) {
	t.Helper()
	r := &readers{
		properties:   property.NewMockIPropertyWriter(t),
		credits:      credit.NewMockICreditWriter(t),
		transactions: transaction.NewMockITransactionWriter(t),
		documents:    document.NewMockIDocumentWriter(t),
	}
	store := &fakeStorage{reader: &storage.Reader{
		Properties:   r.properties,
		Credits:      r.credits,
		Transactions: r.transactions,
		Documents:    r.documents,
	}}
	op := new(mockOperator)
	files := new(mockStore)
	t.Cleanup(func() {
		op.AssertExpectations(t)
		files.AssertExpectations(t)
	})

	svc := NewService(store, op, files, 1024)
	svc.SetClock(func() time.Time { return fixedNow })
	return svc, r, op, files
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type readCloser struct {
	io.Reader
	closed bool
}

func (r *readCloser) Close() error {
	r.closed = true
	return nil
}

func newReadCloser(body string) *readCloser {
	return &readCloser{Reader: bytes.NewBufferString(body)}
}
