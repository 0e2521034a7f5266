package sqlconfig

import (
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
)

const (
	PropertiesTable   = "properties"
	CreditsTable      = "credits"
	TransactionsTable = "transactions"
	DocumentsTable    = "documents"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// Page is a skip/limit window over an ordered list.
type Page struct {
	Skip  int
	Limit int
}

// Normalize applies the default limit and clamps the window to the allowed range.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p Page) SelectMods() []bob.Mod[*dialect.SelectQuery] {
	p = p.Normalize()
	mods := []bob.Mod[*dialect.SelectQuery]{sm.Limit(p.Limit)}
	if p.Skip > 0 {
		mods = append(mods, sm.Offset(p.Skip))
	}
	return mods
}
