// Package sheets reads the backing spreadsheet: it resolves tab titles from
// their numeric GIDs, fetches full column ranges, and caches both lookups
// for a short TTL. It is the only layer in the service that can fail at
// request time.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/senthilk/party-pulse/app/cache"
	"github.com/senthilk/party-pulse/app/cfg"
	"github.com/senthilk/party-pulse/app/records"
)

type Service struct {
	api   API
	cache *cache.Cache
}

// NewService builds the sheets/v4-backed service. Missing credentials are a
// configuration error raised here, before any network call, naming every
// missing setting.
func NewService(ctx context.Context, c *cfg.Cfg, cch *cache.Cache) (*Service, error) {
	if missing := c.MissingSheetSettings(); len(missing) > 0 {
		return nil, fmt.Errorf("missing Google Sheets settings: %s", strings.Join(missing, ", "))
	}

	api, err := newGoogleAPI(ctx, c.ClientEmail, c.PrivateKey, c.SpreadsheetID)
	if err != nil {
		return nil, err
	}

	return &Service{api: api, cache: cch}, nil
}

// NewServiceWithAPI wires an explicit API implementation; used by tests.
func NewServiceWithAPI(api API, cch *cache.Cache) *Service {
	return &Service{api: api, cache: cch}
}

// TitleByGID resolves a tab's display title from its numeric GID by linear
// scan of the workbook metadata. The GID is compared as a string. Cached.
func (s *Service) TitleByGID(ctx context.Context, gid string) (string, error) {
	key := cache.Key("titleByGid", gid)
	if v, ok := s.cache.Get(key); ok {
		return v.(string), nil
	}

	infos, err := s.api.SheetTitles(ctx)
	if err != nil {
		return "", err
	}

	for _, info := range infos {
		if info.ID == gid {
			s.cache.Set(key, info.Title)
			return info.Title, nil
		}
	}
	return "", fmt.Errorf("no sheet with gid %s", gid)
}

// ReadByGID fetches all rows A:Z of the tab identified by gid. Headers come
// from the first row, trimmed; every later row becomes a RawRow keyed by
// those headers with missing cells as empty strings. Cached as a whole.
func (s *Service) ReadByGID(ctx context.Context, gid string) (*Sheet, error) {
	key := cache.Key("values", gid)
	if v, ok := s.cache.Get(key); ok {
		return v.(*Sheet), nil
	}

	title, err := s.TitleByGID(ctx, gid)
	if err != nil {
		return nil, err
	}

	values, err := s.api.Values(ctx, title+"!A:Z")
	if err != nil {
		return nil, err
	}

	sheet := &Sheet{Title: title}
	if len(values) > 0 {
		sheet.Headers = make([]string, len(values[0]))
		for i, h := range values[0] {
			sheet.Headers[i] = strings.TrimSpace(h)
		}
		sheet.Rows = make([]records.RawRow, 0, len(values)-1)
		for _, row := range values[1:] {
			r := make(records.RawRow, len(sheet.Headers))
			for i, header := range sheet.Headers {
				if i < len(row) {
					r[header] = strings.TrimSpace(row[i])
				} else {
					r[header] = ""
				}
			}
			sheet.Rows = append(sheet.Rows, r)
		}
	}

	s.cache.Set(key, sheet)
	return sheet, nil
}
