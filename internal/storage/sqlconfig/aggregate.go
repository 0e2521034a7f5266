package sqlconfig

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Sum is COALESCE(SUM(column), 0) over the rows of table matching where.
func Sum(ctx context.Context, exec bob.Executor, table, column string, where ...bob.Mod[*dialect.SelectQuery]) (decimal.Decimal, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw("COALESCE(SUM(" + column + "), 0)")),
		sm.From(table),
	}
	queryMods = append(queryMods, where...)

	total, err := bob.One(ctx, exec, psql.Select(queryMods...), scan.SingleColumnMapper[decimal.Decimal])
	if err != nil {
		return decimal.Zero, TranslateError("sum "+table+"."+column, err)
	}
	return total, nil
}

// Count is the number of rows of table matching where.
func Count(ctx context.Context, exec bob.Executor, table string, where ...bob.Mod[*dialect.SelectQuery]) (int64, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From(table),
	}
	queryMods = append(queryMods, where...)

	count, err := bob.One(ctx, exec, psql.Select(queryMods...), scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, TranslateError("count "+table, err)
	}
	return count, nil
}
