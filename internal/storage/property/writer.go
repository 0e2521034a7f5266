package property

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

var _ IPropertyWriter = (*Writer)(nil)

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate locks the row until the transaction ends.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Property, error) {
	return w.findOne(ctx, id, sm.ForUpdate())
}

func (w *Writer) Insert(ctx context.Context, create *PropertyCreate) (*Property, error) {
	query := psql.Insert(
		im.Into(sqlconfig.PropertiesTable, "id", "name", "address", "purchase_date", "purchase_price", "notes"),
		im.Values(psql.Arg(create.ID, create.Name, create.Address, create.PurchaseDate, create.PurchasePrice, create.Notes)),
		im.Returning(columns...),
	)

	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[*Property]())
	if err != nil {
		return nil, sqlconfig.TranslateError("create property", err)
	}
	return row, nil
}

// Update returns nil, nil when the row no longer exists.
func (w *Writer) Update(ctx context.Context, id uuid.UUID, update *PropertyUpdate) (*Property, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(sqlconfig.PropertiesTable),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if v, ok := update.Name.Get(); ok {
		queryMods = append(queryMods, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Address.Get(); ok {
		queryMods = append(queryMods, um.SetCol("address").ToArg(v))
	}
	if !update.PurchaseDate.IsUnset() {
		queryMods = append(queryMods, um.SetCol("purchase_date").ToArg(update.PurchaseDate.MustPtr()))
	}
	if !update.PurchasePrice.IsUnset() {
		queryMods = append(queryMods, um.SetCol("purchase_price").ToArg(update.PurchasePrice.MustPtr()))
	}
	if !update.Notes.IsUnset() {
		queryMods = append(queryMods, um.SetCol("notes").ToArg(update.Notes.MustPtr()))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(columns...),
	)

	row, err := bob.One(ctx, w.tx, psql.Update(queryMods...), scan.StructMapper[*Property]())
	if sqlconfig.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, sqlconfig.TranslateError("update property", err)
	}
	return row, nil
}

// Delete reports whether a row was removed.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := bob.Exec(ctx, w.tx, psql.Delete(
		dm.From(sqlconfig.PropertiesTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	))
	if err != nil {
		return false, sqlconfig.TranslateError("delete property", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, sqlconfig.TranslateError("delete property", err)
	}
	return affected > 0, nil
}
