package credit

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
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

var _ ICreditReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID returns nil, nil when no credit has the id.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (*Credit, error) {
	return r.findOne(ctx, id)
}

// List returns credits newest start date first. Nil filter returns all.
func (r *Reader) List(ctx context.Context, filter *CreditFilter) ([]*Credit, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(sqlconfig.CreditsTable),
	}
	if filter != nil && filter.PropertyID != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("property_id").EQ(psql.Arg(*filter.PropertyID))))
	}
	queryMods = append(queryMods,
		sm.OrderBy("start_date").Desc(),
		sm.OrderBy("id").Desc(),
	)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Credit]())
	if err != nil {
		return nil, sqlconfig.TranslateError("list credits", err)
	}
	return rows, nil
}

func (r *Reader) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	return sqlconfig.Count(ctx, r.exec, sqlconfig.CreditsTable,
		sm.Where(psql.Quote("property_id").EQ(psql.Arg(propertyID))))
}

// SumOriginalAmount is the principal of all credits on the property.
func (r *Reader) SumOriginalAmount(ctx context.Context, propertyID uuid.UUID) (decimal.Decimal, error) {
	return sqlconfig.Sum(ctx, r.exec, sqlconfig.CreditsTable, "original_amount",
		sm.Where(psql.Quote("property_id").EQ(psql.Arg(propertyID))))
}

func (r *Reader) findOne(ctx context.Context, id uuid.UUID, extra ...bob.Mod[*dialect.SelectQuery]) (*Credit, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(sqlconfig.CreditsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	queryMods = append(queryMods, extra...)

	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[*Credit]())
	if sqlconfig.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, sqlconfig.TranslateError("find credit", err)
	}
	return row, nil
}
