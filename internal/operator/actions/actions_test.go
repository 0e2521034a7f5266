package actions

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/property-ledger/internal/storage"
	"github.com/carson-networks/property-ledger/internal/storage/credit"
	"github.com/carson-networks/property-ledger/internal/storage/document"
	"github.com/carson-networks/property-ledger/internal/storage/property"
	"github.com/carson-networks/property-ledger/internal/storage/transaction"
)

type tables struct {
	properties   *property.MockIPropertyWriter
	credits      *credit.MockICreditWriter
	transactions *transaction.MockITransactionWriter
	documents    *document.MockIDocumentWriter
}

func newTestWriter(t *testing.T) (*storage.Writer, *tables) {
	t.Helper()
	m := &tables{
		properties:   property.NewMockIPropertyWriter(t),
		credits:      credit.NewMockICreditWriter(t),
		transactions: transaction.NewMockITransactionWriter(t),
		documents:    document.NewMockIDocumentWriter(t),
	}
	w := storage.NewWriter(storage.NewMockTx(t))
	w.Properties = m.properties
	w.Credits = m.credits
	w.Transactions = m.transactions
	w.Documents = m.documents
	return w, m
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

var (
	ctx   = context.Background()
	today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	errDB = errors.New("connection reset")
)

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T {
	return &v
}

func fileContent() io.Reader {
	return bytes.NewReader([]byte("%PDF-1.4"))
}
