package query

import (
	"net/url"
	"strconv"
	"time"

	"github.com/senthilk/party-pulse/app/dateutil"
)

const (
	DefaultPageSize = 20
	maxPageSize     = 100
)

type Params struct {
	Search   string
	Party    string
	Preset   string
	From     *time.Time
	To       *time.Time
	SortAsc  bool
	Page     int
	PageSize int

	empty bool
}

var knownKeys = []string{"q", "party", "preset", "from", "to", "sort", "page", "page_size"}

// ParseParams reads the pipeline knobs from URL query values. Out-of-bounds
// numbers are clamped rather than rejected.
func ParseParams(values url.Values) Params {
	p := Params{
		Search:   values.Get("q"),
		Party:    values.Get("party"),
		Preset:   values.Get("preset"),
		SortAsc:  values.Get("sort") == "asc",
		Page:     intParam(values, "page", 1),
		PageSize: intParam(values, "page_size", DefaultPageSize),
		empty:    true,
	}

	for _, key := range knownKeys {
		if values.Get(key) != "" {
			p.empty = false
			break
		}
	}

	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}

	p.From = dateutil.ParseDMY(values.Get("from"))
	p.To = dateutil.ParseDMY(values.Get("to"))

	return p
}

// Empty reports whether the request carried no pipeline knobs at all, in
// which case the handler returns the plain unfiltered list.
func (p Params) Empty() bool {
	return p.empty
}

// resolveRange picks the effective date bounds: explicit from/to take
// precedence over the preset; "all" or an absent preset disables range
// filtering entirely.
func (p Params) resolveRange() (from, to *time.Time) {
	if p.From != nil || p.To != nil {
		return p.From, p.To
	}
	if p.Preset == "" || p.Preset == "all" {
		return nil, nil
	}
	return dateutil.RangeFromPreset(p.Preset)
}

func intParam(values url.Values, key string, fallback int) int {
	raw := values.Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
