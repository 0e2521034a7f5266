package credit

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

var _ ICreditWriter = (*Writer)(nil)

func NewWriter(tx bob.Executor) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

// FindByIDForUpdate locks the row until the transaction ends.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Credit, error) {
	return w.findOne(ctx, id, sm.ForUpdate())
}

func (w *Writer) Insert(ctx context.Context, create *CreditCreate) (*Credit, error) {
	query := psql.Insert(
		im.Into(sqlconfig.CreditsTable,
			"id", "property_id", "name", "original_amount", "interest_rate", "monthly_payment", "start_date", "end_date"),
		im.Values(psql.Arg(
			create.ID, create.PropertyID, create.Name, create.OriginalAmount, create.InterestRate,
			create.MonthlyPayment, create.StartDate, create.EndDate,
		)),
		im.Returning(columns...),
	)

	row, err := bob.One(ctx, w.tx, query, scan.StructMapper[*Credit]())
	if err != nil {
		return nil, sqlconfig.TranslateError("create credit", err)
	}
	return row, nil
}

// Update returns nil, nil when the row no longer exists.
func (w *Writer) Update(ctx context.Context, id uuid.UUID, update *CreditUpdate) (*Credit, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(sqlconfig.CreditsTable),
		um.SetCol("updated_at").To(psql.Raw("now()")),
	}
	if v, ok := update.Name.Get(); ok {
		queryMods = append(queryMods, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.OriginalAmount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("original_amount").ToArg(v))
	}
	if v, ok := update.InterestRate.Get(); ok {
		queryMods = append(queryMods, um.SetCol("interest_rate").ToArg(v))
	}
	if v, ok := update.MonthlyPayment.Get(); ok {
		queryMods = append(queryMods, um.SetCol("monthly_payment").ToArg(v))
	}
	if v, ok := update.StartDate.Get(); ok {
		queryMods = append(queryMods, um.SetCol("start_date").ToArg(v))
	}
	if !update.EndDate.IsUnset() {
		queryMods = append(queryMods, um.SetCol("end_date").ToArg(update.EndDate.MustPtr()))
	}
	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(columns...),
	)

	row, err := bob.One(ctx, w.tx, psql.Update(queryMods...), scan.StructMapper[*Credit]())
	if sqlconfig.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, sqlconfig.TranslateError("update credit", err)
	}
	return row, nil
}

// Delete reports whether a row was removed.
func (w *Writer) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := bob.Exec(ctx, w.tx, psql.Delete(
		dm.From(sqlconfig.CreditsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	))
	if err != nil {
		return false, sqlconfig.TranslateError("delete credit", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, sqlconfig.TranslateError("delete credit", err)
	}
	return affected > 0, nil
}
