package document

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
)

type Reader struct {
	exec bob.Executor
}

var _ IDocumentReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID returns nil, nil when no document has the id.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	return r.findOne(ctx, id)
}

// List returns the most recently uploaded documents first.
func (r *Reader) List(ctx context.Context, filter *DocumentFilter) ([]*Document, error) {
	if filter == nil {
		filter = &DocumentFilter{}
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(sqlconfig.DocumentsTable),
	}
	if filter.PropertyID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("property_id").EQ(psql.Arg(*filter.PropertyID))))
	}
	if filter.TransactionID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transaction_id").EQ(psql.Arg(*filter.TransactionID))))
	}
	if filter.CreditID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("credit_id").EQ(psql.Arg(*filter.CreditID))))
	}
	if filter.Category != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
	}
	queryMods = append(queryMods,
		sm.OrderBy("upload_date").Desc(),
		sm.OrderBy("id").Desc(),
	)
	queryMods = append(queryMods, filter.Page.SelectMods()...)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Document]())
	if err != nil {
		return nil, sqlconfig.TranslateError("list documents", err)
	}
	return rows, nil
}

func (r *Reader) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	return sqlconfig.Count(ctx, r.exec, sqlconfig.DocumentsTable,
		sm.Where(psql.Quote("property_id").EQ(psql.Arg(propertyID))))
}

func (r *Reader) findOne(ctx context.Context, id uuid.UUID, extra ...bob.Mod[*dialect.SelectQuery]) (*Document, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(sqlconfig.DocumentsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	queryMods = append(queryMods, extra...)

	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Document]())
	if sqlconfig.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, sqlconfig.TranslateError("find document", err)
	}
	return row, nil
}
