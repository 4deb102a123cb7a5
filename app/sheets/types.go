package sheets

import (
	"context"

	"github.com/senthilk/party-pulse/app/records"
)

// SheetInfo is one tab of the workbook. ID carries the numeric sheetId as
// text; GIDs arrive from configuration as strings and are compared as such.
type SheetInfo struct {
	ID    string
	Title string
}

// API is the minimal surface of the remote tabular-data service. The real
// implementation wraps sheets/v4; tests substitute a fake.
type API interface {
	SheetTitles(ctx context.Context) ([]SheetInfo, error)
	Values(ctx context.Context, rangeA1 string) ([][]string, error)
}

// Sheet is one fully fetched tab: resolved title, trimmed header row, and
// every following row keyed by those headers.
type Sheet struct {
	Title   string
	Headers []string
	Rows    []records.RawRow
}
