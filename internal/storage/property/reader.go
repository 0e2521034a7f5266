package property

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

var _ IPropertyReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID returns nil, nil when no property has the id.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Property, error) {
	return r.findOne(ctx, id)
}

func (r *Reader) List(ctx context.Context, page sqlconfig.Page) ([]*Property, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(sqlconfig.PropertiesTable),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	}
	queryMods = append(queryMods, page.SelectMods()...)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Property]())
	if err != nil {
		return nil, sqlconfig.TranslateError("list properties", err)
	}
	return rows, nil
}

func (r *Reader) findOne(ctx context.Context, id uuid.UUID, extra ...bob.Mod[*dialect.SelectQuery]) (*Property, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(sqlconfig.PropertiesTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	queryMods = append(queryMods, extra...)

	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Property]())
	if sqlconfig.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, sqlconfig.TranslateError("find property", err)
	}
	return row, nil
}
