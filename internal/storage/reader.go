package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/property-ledger/internal/storage/credit"
	"github.com/carson-networks/property-ledger/internal/storage/document"
	"github.com/carson-networks/property-ledger/internal/storage/property"
	"github.com/carson-networks/property-ledger/internal/storage/transaction"
)

type Reader struct {
	Properties   property.IPropertyReader
	Credits      credit.ICreditReader
	Transactions transaction.ITransactionReader
	Documents    document.IDocumentReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Properties:   property.NewReader(exec),
		Credits:      credit.NewReader(exec),
		Transactions: transaction.NewReader(exec),
		Documents:    document.NewReader(exec),
	}
}
