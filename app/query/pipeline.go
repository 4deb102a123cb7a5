// Package query implements the list-page pipeline: substring search, party
// filter, date-range filter, date sort and pagination, applied in that fixed
// order.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/senthilk/party-pulse/app/dateutil"
)

const (
	PartyBoth    = "both"
	PartyNTKOnly = "ntk-only"
	PartyTVKOnly = "tvk-only"
)

// Fields adapts one record type to the pipeline. SearchText and DateDMY are
// required; HasNTK/HasTVK may be nil, which turns the party filter into a
// no-op for that category.
type Fields[T any] struct {
	SearchText func(T) string
	DateDMY    func(T) string
	HasNTK     func(T) bool
	HasTVK     func(T) bool
}

type Meta struct {
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
	SortDesc   bool   `json:"sortDesc"`
	Applied    string `json:"applied"`
}

// Run applies the pipeline and returns the requested page plus metadata.
// A page beyond the filtered total resets to 1.
func Run[T any](items []T, p Params, f Fields[T]) ([]T, Meta) {
	out := make([]T, len(items))
	copy(out, items)

	if q := foldForSearch(p.Search); q != "" {
		kept := out[:0]
		for _, item := range out {
			if strings.Contains(foldForSearch(f.SearchText(item)), q) {
				kept = append(kept, item)
			}
		}
		out = kept
	}

	if f.HasNTK != nil && f.HasTVK != nil {
		switch p.Party {
		case PartyNTKOnly:
			out = filter(out, func(item T) bool { return f.HasNTK(item) && !f.HasTVK(item) })
		case PartyTVKOnly:
			out = filter(out, func(item T) bool { return f.HasTVK(item) && !f.HasNTK(item) })
		}
	}

	from, to := p.resolveRange()
	if from != nil || to != nil {
		out = filter(out, func(item T) bool {
			return dateutil.IsWithinRange(dateutil.ParseDMY(f.DateDMY(item)), from, to)
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		di := sortKey(f.DateDMY(out[i]))
		dj := sortKey(f.DateDMY(out[j]))
		if p.SortAsc {
			return di.Before(dj)
		}
		return dj.Before(di)
	})

	meta := Meta{
		Total:    len(out),
		PageSize: p.PageSize,
		SortDesc: !p.SortAsc,
		Applied:  appliedLabel(p, from, to),
	}
	meta.TotalPages = (len(out) + p.PageSize - 1) / p.PageSize
	if meta.TotalPages < 1 {
		meta.TotalPages = 1
	}

	page := p.Page
	if page > meta.TotalPages {
		page = 1
	}
	meta.Page = page

	start := (page - 1) * p.PageSize
	end := start + p.PageSize
	if start > len(out) {
		start = len(out)
	}
	if end > len(out) {
		end = len(out)
	}

	return out[start:end], meta
}

func filter[T any](items []T, keep func(T) bool) []T {
	kept := items[:0]
	for _, item := range items {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	return kept
}

// foldForSearch lowercases and NFC-normalizes; the Tamil text in the sheets
// arrives in mixed Unicode normalization.
func foldForSearch(s string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
}

// sortKey treats unparseable dates as the epoch so they group at the old end.
func sortKey(dmy string) time.Time {
	if d := dateutil.ParseDMY(dmy); d != nil {
		return *d
	}
	return time.Unix(0, 0)
}

var presetLabels = map[string]string{
	"1m": "Past month",
	"3m": "Past 3 months",
	"6m": "Past 6 months",
	"1y": "Past year",
}

func appliedLabel(p Params, from, to *time.Time) string {
	if p.From != nil || p.To != nil {
		fmtd := func(d *time.Time) string {
			if d == nil {
				return "…"
			}
			return d.Format("02/01/2006")
		}
		return fmt.Sprintf("Showing: %s → %s", fmtd(from), fmtd(to))
	}
	if label, ok := presetLabels[p.Preset]; ok {
		return "Showing: " + label
	}
	return "Showing: Life Time"
}
