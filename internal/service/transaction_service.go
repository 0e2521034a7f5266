package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/operator/actions"
	"github.com/carson-networks/property-ledger/internal/storage/transaction"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	deps
}

// List returns transactions newest first. The page is clamped to the allowed window.
func (s *TransactionService) List(ctx context.Context, query TransactionQuery) ([]Transaction, error) {
	rows, err := s.storage.Read().Transactions.List(ctx, &transaction.TransactionFilter{
		PropertyID: query.PropertyID,
		CreditID:   query.CreditID,
		Type:       query.Type,
		Category:   query.Category,
		DateFrom:   query.DateFrom,
		DateTo:     query.DateTo,
		Page:       query.Page.Normalize(),
	})
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}

func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Read().Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound("Transaction", id)
	}

	converted := transactionFromStorage(row)
	return &converted, nil
}

func (s *TransactionService) Create(ctx context.Context, t NewTransaction) (*Transaction, error) {
	action := &actions.CreateTransaction{
		PropertyID:  t.PropertyID,
		CreditID:    t.CreditID,
		Date:        t.Date,
		Type:        t.Type,
		Category:    t.Category,
		Amount:      t.Amount,
		Description: t.Description,
		Recurring:   t.Recurring,
		Today:       s.today(),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	created := transactionFromStorage(action.Created)
	return &created, nil
}

func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, changes TransactionChanges) (*Transaction, error) {
	action := &actions.UpdateTransaction{ID: id, Update: changes, Today: s.today()}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	updated := transactionFromStorage(action.Updated)
	return &updated, nil
}

func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteTransaction{ID: id})
}
