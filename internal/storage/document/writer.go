package document

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

var _ IDocumentWriter = (*Writer)(nil)

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate locks the row until the transaction ends.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Document, error) {
	return w.findOne(ctx, id, sm.ForUpdate())
}

func (w *Writer) Insert(ctx context.Context, create *DocumentCreate) (*Document, error) {
	query := psql.Insert(
		im.Into(sqlconfig.DocumentsTable,
			"id", "property_id", "transaction_id", "credit_id", "filename", "filepath",
			"document_date", "category", "description"),
		im.Values(psql.Arg(
			create.ID, create.PropertyID, create.TransactionID, create.CreditID, create.Filename, create.Filepath,
			create.DocumentDate, create.Category, create.Description,
		)),
		im.Returning(columns...),
	)

	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[*Document]())
	if err != nil {
		return nil, sqlconfig.TranslateError("create document", err)
	}
	return row, nil
}

// Update returns nil, nil when the row no longer exists.
func (w *Writer) Update(ctx context.Context, id uuid.UUID, update *DocumentUpdate) (*Document, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(sqlconfig.DocumentsTable),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if v, ok := update.TransactionID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("transaction_id").ToArg(v))
	}
	if v, ok := update.CreditID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("credit_id").ToArg(v))
	}
	if v, ok := update.DocumentDate.Get(); ok {
		queryMods = append(queryMods, um.SetCol("document_date").ToArg(v))
	}
	if v, ok := update.Category.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category").ToArg(v))
	}
	if v, ok := update.Description.Get(); ok {
		queryMods = append(queryMods, um.SetCol("description").ToArg(v))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(columns...),
	)

	row, err := bob.One(ctx, w.tx, psql.Update(queryMods...), scan.StructMapper[*Document]())
	if sqlconfig.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, sqlconfig.TranslateError("update document", err)
	}
	return row, nil
}

// Delete reports whether a row was removed. The stored file is the caller's concern.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := bob.Exec(ctx, w.tx, psql.Delete(
		dm.From(sqlconfig.DocumentsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	))
	if err != nil {
		return false, sqlconfig.TranslateError("delete document", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, sqlconfig.TranslateError("delete document", err)
	}
	return affected > 0, nil
}

// ClearTransactionLink detaches every document from the transaction and returns how many were touched.
func (w *Writer) ClearTransactionLink(ctx context.Context, transactionID uuid.UUID) (int64, error) {
	return w.clearLink(ctx, "transaction_id", transactionID)
}

// ClearCreditLink detaches every document from the credit and returns how many were touched.
func (w *Writer) ClearCreditLink(ctx context.Context, creditID uuid.UUID) (int64, error) {
	return w.clearLink(ctx, "credit_id", creditID)
}

func (w *Writer) clearLink(ctx context.Context, column string, id uuid.UUID) (int64, error) {
	result, err := bob.Exec(ctx, w.tx, psql.Update(
		um.Table(sqlconfig.DocumentsTable),
		um.SetCol(column).To(psql.Raw("NULL")),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote(column).EQ(psql.Arg(id))),
	))
	if err != nil {
		return 0, sqlconfig.TranslateError("clear document "+column, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, sqlconfig.TranslateError("clear document "+column, err)
	}
	return affected, nil
}
