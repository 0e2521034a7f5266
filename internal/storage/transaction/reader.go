package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
)

type Reader struct {
	exec bob.Executor
}

var _ ITransactionReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID returns nil, nil when no transaction has the id.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return r.findOne(ctx, id)
}

// List returns transactions newest date first. Nil filter returns the first page of all transactions.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	if filter == nil {
		filter = &TransactionFilter{}
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(sqlconfig.TransactionsTable),
	}
	if filter.PropertyID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("property_id").EQ(psql.Arg(*filter.PropertyID))))
	}
	if filter.CreditID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("credit_id").EQ(psql.Arg(*filter.CreditID))))
	}
	if filter.Type != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(*filter.Type))))
	}
	if filter.Category != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
	}
	if filter.DateFrom != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").GTE(psql.Arg(*filter.DateFrom))))
	}
	if filter.DateTo != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("date").LTE(psql.Arg(*filter.DateTo))))
	}
	queryMods = append(queryMods,
		sm.OrderBy("date").Desc(),
		sm.OrderBy("id").Desc(),
	)
	queryMods = append(queryMods, filter.Page.SelectMods()...)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, sqlconfig.TranslateError("list transactions", err)
	}
	return rows, nil
}

func (r *Reader) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	return sqlconfig.Count(ctx, r.exec, sqlconfig.TransactionsTable,
		sm.Where(psql.Quote("property_id").EQ(psql.Arg(propertyID))))
}

func (r *Reader) CountByCredit(ctx context.Context, creditID uuid.UUID) (int64, error) {
	return sqlconfig.Count(ctx, r.exec, sqlconfig.TransactionsTable,
		sm.Where(psql.Quote("credit_id").EQ(psql.Arg(creditID))))
}

func (r *Reader) SumByType(ctx context.Context, propertyID uuid.UUID, transactionType domain.TransactionType) (decimal.Decimal, error) {
	return sqlconfig.Sum(ctx, r.exec, sqlconfig.TransactionsTable, "amount",
		sm.Where(psql.Quote("property_id").EQ(psql.Arg(propertyID))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(transactionType))),
	)
}

// SumCreditPayments sums the property's transactions that are linked to any credit.
func (r *Reader) SumCreditPayments(ctx context.Context, propertyID uuid.UUID) (decimal.Decimal, error) {
	return sqlconfig.Sum(ctx, r.exec, sqlconfig.TransactionsTable, "amount",
		sm.Where(psql.Quote("property_id").EQ(psql.Arg(propertyID))),
		sm.Where(psql.Quote("credit_id").IsNotNull()),
	)
}

// SumByCredit returns the paid amount per credit. Credits without payments are absent from the map.
func (r *Reader) SumByCredit(ctx context.Context, creditIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	paid := make(map[uuid.UUID]decimal.Decimal, len(creditIDs))
	if len(creditIDs) == 0 {
		return paid, nil
	}

	ids := make([]any, len(creditIDs))
	for i, id := range creditIDs {
		ids[i] = id
	}

	query := psql.Select(
		sm.Columns("credit_id", psql.Raw("COALESCE(SUM(amount), 0) AS paid")),
		sm.From(sqlconfig.TransactionsTable),
		sm.Where(psql.Quote("credit_id").In(psql.Arg(ids...))),
		sm.GroupBy("credit_id"),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[creditPayments]())
	if err != nil {
		return nil, sqlconfig.TranslateError("sum credit payments", err)
	}
	for _, row := range rows {
		paid[row.CreditID] = row.Paid
	}
	return paid, nil
}

func (r *Reader) findOne(ctx context.Context, id uuid.UUID, extra ...bob.Mod[*dialect.SelectQuery]) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(sqlconfig.TransactionsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	queryMods = append(queryMods, extra...)

	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Transaction]())
	if sqlconfig.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, sqlconfig.TranslateError("find transaction", err)
	}
	return row, nil
}
