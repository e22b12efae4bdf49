package dto

import (
	"time"

	"github.com/SscSPs/pasale_ledger/internal/utils"
	"github.com/SscSPs/pasale_ledger/internal/utils/nepalidate"
	"github.com/shopspring/decimal"
)

// Presenter renders money and dates for display in one language and zone.
type Presenter struct {
	Lang  nepalidate.Language
	Style utils.GroupingStyle
	Loc   *time.Location
}

// NewPresenter builds a Presenter from raw request/config values. A nil loc
// means UTC.
func NewPresenter(lang, grouping string, loc *time.Location) Presenter {
	if loc == nil {
		loc = time.UTC
	}
	return Presenter{
		Lang:  nepalidate.ParseLanguage(lang),
		Style: utils.ParseGroupingStyle(grouping),
		Loc:   loc,
	}
}

// Local returns t in the display zone.
func (p Presenter) Local(t time.Time) time.Time {
	if t.IsZero() || p.Loc == nil {
		return t
	}
	return t.In(p.Loc)
}

// Money renders "Rs. 1,500" or "रु. १,५००".
func (p Presenter) Money(d decimal.Decimal) string {
	return utils.FormatCurrencyWith(d, p.Lang, p.Style)
}

// Date renders the approximate BS date.
func (p Presenter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return nepalidate.Format(p.Local(t), p.Lang)
}
