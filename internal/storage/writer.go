package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/property-ledger/internal/storage/credit"
	"github.com/carson-networks/property-ledger/internal/storage/document"
	"github.com/carson-networks/property-ledger/internal/storage/property"
	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
	"github.com/carson-networks/property-ledger/internal/storage/transaction"
)

// Tx is the database transaction a Writer runs in. bob.Tx satisfies it.
type Tx interface {
	bob.Executor
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Writer struct {
	tx           Tx
	Properties   property.IPropertyWriter
	Credits      credit.ICreditWriter
	Transactions transaction.ITransactionWriter
	Documents    document.IDocumentWriter
}

func NewWriter(tx Tx) *Writer {
	return &Writer{
		tx:           tx,
		Properties:   property.NewWriter(tx),
		Credits:      credit.NewWriter(tx),
		Transactions: transaction.NewWriter(tx),
		Documents:    document.NewWriter(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	if err := w.tx.Commit(ctx); err != nil {
		return sqlconfig.TranslateError("commit", err)
	}
	return nil
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
