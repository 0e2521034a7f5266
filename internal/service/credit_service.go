package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/operator/actions"
	"github.com/carson-networks/property-ledger/internal/storage/credit"
	"github.com/carson-networks/property-ledger/internal/storage/transaction"
)

// CreditService handles credit business logic.
type CreditService struct {
	deps
}

// List returns credits, optionally of one property, with their current balances.
func (s *CreditService) List(ctx context.Context, propertyID *uuid.UUID) ([]Credit, error) {
	reader := s.storage.Read()
	return listCredits(ctx, reader.Credits, reader.Transactions, &credit.CreditFilter{PropertyID: propertyID})
}

func (s *CreditService) Get(ctx context.Context, id uuid.UUID) (*Credit, error) {
	reader := s.storage.Read()

	row, err := reader.Credits.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound("Credit", id)
	}

	return s.withBalance(ctx, reader.Transactions, row)
}

func (s *CreditService) Create(ctx context.Context, c NewCredit) (*Credit, error) {
	action := &actions.CreateCredit{
		PropertyID:     c.PropertyID,
		Name:           c.Name,
		OriginalAmount: c.OriginalAmount,
		InterestRate:   c.InterestRate,
		MonthlyPayment: c.MonthlyPayment,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Today:          s.today(),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	created := creditFromStorage(action.Created, decimal.Zero)
	return &created, nil
}

func (s *CreditService) Update(ctx context.Context, id uuid.UUID, changes CreditChanges) (*Credit, error) {
	action := &actions.UpdateCredit{ID: id, Update: changes, Today: s.today()}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	return s.withBalance(ctx, s.storage.Read().Transactions, action.Updated)
}

func (s *CreditService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteCredit{ID: id})
}

func (s *CreditService) withBalance(ctx context.Context, transactions transaction.ITransactionReader, row *credit.Credit) (*Credit, error) {
	paid, err := transactions.SumByCredit(ctx, []uuid.UUID{row.ID})
	if err != nil {
		return nil, err
	}

	converted := creditFromStorage(row, paid[row.ID])
	return &converted, nil
}

// listCredits loads the credits and their payments with one grouped query.
func listCredits(ctx context.Context, credits credit.ICreditReader, transactions transaction.ITransactionReader, filter *credit.CreditFilter) ([]Credit, error) {
	rows, err := credits.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []Credit{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	paid, err := transactions.SumByCredit(ctx, ids)
	if err != nil {
		return nil, err
	}

	converted := make([]Credit, len(rows))
	for i, row := range rows {
		converted[i] = creditFromStorage(row, paid[row.ID])
	}
	return converted, nil
}
