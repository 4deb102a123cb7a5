// Package dateutil handles the day-month-year textual dates used throughout
// the source sheets, plus the preset lookback ranges offered by the UI.
package dateutil

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var dmyPattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})$`)

// now is overridable in tests
var now = time.Now

// ParseDMY parses "D/M/Y" or "D-M-Y" with 1-2 digit day/month and a 2- or
// 4-digit year (2-digit years below 50 map to the 2000s, the rest to the
// 1900s). Any other format goes through generic date parsing. Returns nil on
// failure. The result is always midnight local time so date comparisons are
// exact.
func ParseDMY(input string) *time.Time {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil
	}

	if m := dmyPattern.FindStringSubmatch(s); m != nil {
		dd, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		yyyy, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			if yyyy < 50 {
				yyyy += 2000
			} else {
				yyyy += 1900
			}
		}
		d := time.Date(yyyy, time.Month(mm), dd, 0, 0, 0, 0, time.Local)
		return &d
	}

	parsed, err := dateparse.ParseIn(s, time.Local)
	if err != nil {
		return nil
	}
	d := atMidnight(parsed)
	return &d
}

// IsWithinRange reports whether d falls within the inclusive [from, to]
// bounds. A nil bound is unbounded on that side; a nil date never matches.
func IsWithinRange(d, from, to *time.Time) bool {
	if d == nil {
		return false
	}
	if from != nil && d.Before(*from) {
		return false
	}
	if to != nil && d.After(*to) {
		return false
	}
	return true
}

// RangeFromPreset resolves a named lookback preset to concrete bounds. The
// end is always today at midnight; the start is 1/3/6 months or 1 year back,
// or nil for "all" and anything unrecognized.
func RangeFromPreset(preset string) (start, end *time.Time) {
	e := atMidnight(now())
	end = &e

	var s time.Time
	switch preset {
	case "1m":
		s = e.AddDate(0, -1, 0)
	case "3m":
		s = e.AddDate(0, -3, 0)
	case "6m":
		s = e.AddDate(0, -6, 0)
	case "1y":
		s = e.AddDate(-1, 0, 0)
	default:
		return nil, end
	}
	return &s, end
}

func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
