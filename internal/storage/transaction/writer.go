package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
)

type Writer struct {
	tx bob.Executor
	Reader
}

var _ ITransactionWriter = (*Writer)(nil)

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate locks the row until the transaction ends.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return w.findOne(ctx, id, sm.ForUpdate())
}

func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	query := psql.Insert(
		im.Into(sqlconfig.TransactionsTable,
			"id", "property_id", "credit_id", "date", "type", "category", "amount", "description", "recurring"),
		im.Values(psql.Arg(
			create.ID, create.PropertyID, create.CreditID, create.Date, create.Type, create.Category,
			create.Amount, create.Description, create.Recurring,
		)),
		im.Returning(columns...),
	)

	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[*Transaction]())
	if err != nil {
		return nil, sqlconfig.TranslateError("create transaction", err)
	}
	return row, nil
}

// Update returns nil, nil when the row no longer exists.
func (w *Writer) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(sqlconfig.TransactionsTable),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if !update.CreditID.IsUnset() {
		queryMods = append(queryMods, um.SetCol("credit_id").ToArg(update.CreditID.MustPtr()))
	}
	if v, ok := update.Date.Get(); ok {
		queryMods = append(queryMods, um.SetCol("date").ToArg(v))
	}
	if v, ok := update.Type.Get(); ok {
		queryMods = append(queryMods, um.SetCol("type").ToArg(v))
	}
	if v, ok := update.Category.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category").ToArg(v))
	}
	if v, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(v))
	}
	if !update.Description.IsUnset() {
		queryMods = append(queryMods, um.SetCol("description").ToArg(update.Description.MustPtr()))
	}
	if v, ok := update.Recurring.Get(); ok {
		queryMods = append(queryMods, um.SetCol("recurring").ToArg(v))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(columns...),
	)

	row, err := bob.One(ctx, w.tx, psql.Update(queryMods...), scan.StructMapper[*Transaction]())
	if sqlconfig.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, sqlconfig.TranslateError("update transaction", err)
	}
	return row, nil
}

// Delete reports whether a row was removed.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := bob.Exec(ctx, w.tx, psql.Delete(
		dm.From(sqlconfig.TransactionsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	))
	if err != nil {
		return false, sqlconfig.TranslateError("delete transaction", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, sqlconfig.TranslateError("delete transaction", err)
	}
	return affected > 0, nil
}
