package sheets

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/senthilk/party-pulse/app/cache"
	"github.com/senthilk/party-pulse/app/cfg"
)

type fakeAPI struct {
	titles      []SheetInfo
	values      [][]string
	titleCalls  int
	valuesCalls int
	lastRange   string
}

func (f *fakeAPI) SheetTitles(ctx context.Context) ([]SheetInfo, error) {
	f.titleCalls++
	return f.titles, nil
}

func (f *fakeAPI) Values(ctx context.Context, rangeA1 string) ([][]string, error) {
	f.valuesCalls++
	f.lastRange = rangeA1
	return f.values, nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time          { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newTestService(api *fakeAPI) (*Service, *fakeClock) {
	clk := &fakeClock{now: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}
	return NewServiceWithAPI(api, cache.NewWithClock(60*time.Second, clk.Now)), clk
}

func TestTitleByGID(t *testing.T) {
	api := &fakeAPI{titles: []SheetInfo{
		{ID: "0", Title: "Issues"},
		{ID: "123", Title: "Protests"},
	}}
	svc, _ := newTestService(api)

	title, err := svc.TitleByGID(context.Background(), "123")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if title != "Protests" {
		t.Errorf("Expected Protests, got %q", title)
	}
}

func TestTitleByGID_NotFound(t *testing.T) {
	api := &fakeAPI{titles: []SheetInfo{{ID: "0", Title: "Issues"}}}
	svc, _ := newTestService(api)

	_, err := svc.TitleByGID(context.Background(), "999")
	if err == nil {
		t.Fatal("Expected an error for an unknown gid")
	}
	if !strings.Contains(err.Error(), "no sheet with gid 999") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestReadByGID_BuildsRows(t *testing.T) {
	api := &fakeAPI{
		titles: []SheetInfo{{ID: "123", Title: "Issues"}},
		values: [][]string{
			{" Incident/Problem ", "NTK", "Date"},
			{"Water shortage", "https://x.com/1", "01/01/2024"},
			{"Road damage"}, // short row: missing cells become ""
		},
	}
	svc, _ := newTestService(api)

	sheet, err := svc.ReadByGID(context.Background(), "123")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if api.lastRange != "Issues!A:Z" {
		t.Errorf("Expected range Issues!A:Z, got %q", api.lastRange)
	}
	if sheet.Title != "Issues" {
		t.Errorf("Expected title Issues, got %q", sheet.Title)
	}
	if len(sheet.Headers) != 3 || sheet.Headers[0] != "Incident/Problem" {
		t.Errorf("Headers should be trimmed: %v", sheet.Headers)
	}
	if len(sheet.Rows) != 2 {
		t.Fatalf("Expected 2 data rows, got %d", len(sheet.Rows))
	}
	if sheet.Rows[0]["NTK"] != "https://x.com/1" {
		t.Errorf("Unexpected first row: %v", sheet.Rows[0])
	}
	if sheet.Rows[1]["NTK"] != "" || sheet.Rows[1]["Date"] != "" {
		t.Errorf("Missing cells should be empty strings: %v", sheet.Rows[1])
	}
}

func TestReadByGID_EmptySheet(t *testing.T) {
	api := &fakeAPI{titles: []SheetInfo{{ID: "123", Title: "Issues"}}}
	svc, _ := newTestService(api)

	sheet, err := svc.ReadByGID(context.Background(), "123")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(sheet.Headers) != 0 || len(sheet.Rows) != 0 {
		t.Errorf("Expected empty headers and rows, got %+v", sheet)
	}
}

func TestReadByGID_CachesWithinTTL(t *testing.T) {
	api := &fakeAPI{
		titles: []SheetInfo{{ID: "123", Title: "Issues"}},
		values: [][]string{{"Date"}, {"01/01/2024"}},
	}
	svc, clk := newTestService(api)

	ctx := context.Background()
	if _, err := svc.ReadByGID(ctx, "123"); err != nil {
		t.Fatal(err)
	}
	clk.Advance(59 * time.Second)
	if _, err := svc.ReadByGID(ctx, "123"); err != nil {
		t.Fatal(err)
	}

	if api.valuesCalls != 1 {
		t.Errorf("Expected exactly one upstream values fetch within the TTL, got %d", api.valuesCalls)
	}
	if api.titleCalls != 1 {
		t.Errorf("Expected exactly one metadata fetch within the TTL, got %d", api.titleCalls)
	}

	clk.Advance(2 * time.Second) // past 60s
	if _, err := svc.ReadByGID(ctx, "123"); err != nil {
		t.Fatal(err)
	}
	if api.valuesCalls != 2 {
		t.Errorf("Expected a second fetch after the TTL elapsed, got %d", api.valuesCalls)
	}
}

func TestNewService_MissingSettings(t *testing.T) {
	c := &cfg.Cfg{SpreadsheetID: "1abc"} // email and key unset

	_, err := NewService(context.Background(), c, cache.New(time.Minute))
	if err == nil {
		t.Fatal("Expected a configuration error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "GOOGLE_SHEETS_CLIENT_EMAIL") || !strings.Contains(msg, "GOOGLE_SHEETS_PRIVATE_KEY") {
		t.Errorf("Error should enumerate every missing setting, got: %v", err)
	}
	if !strings.Contains(msg, "GID_ISSUES") || !strings.Contains(msg, "GID_PROTEST") {
		t.Errorf("Error should enumerate unset required sheet GIDs, got: %v", err)
	}
	if strings.Contains(msg, "GSHEET_ID") {
		t.Errorf("GSHEET_ID is set and should not be reported: %v", err)
	}
}
