package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportSort string

const (
	SortByOrder ReportSort = "order"
	SortByDate  ReportSort = "date"
	SortByUser  ReportSort = "username"
)

// ReportFilter narrows and orders the accounting report. Nil flag pointers
// mean "don't filter on this flag".
type ReportFilter struct {
	From        time.Time
	To          time.Time
	Spreadsheet string
	SheetID     string
	Username    string
	Completed   *bool
	Paid        *bool
	SortBy      ReportSort
	ThenBy      ReportSort
}

type ReportRow struct {
	OrderID   string          `db:"order_id"`
	Username  string          `db:"login"`
	Dollars   decimal.Decimal `db:"dollars"`
	OrderDate time.Time       `db:"order_date"`
	Completed bool            `db:"completed"`
	Paid      bool            `db:"paid"`
}
