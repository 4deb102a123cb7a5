// Package records reshapes raw header-keyed sheet rows into the typed
// domain records the rest of the service consumes. All normalizers are
// total: malformed cells degrade to zero values and only unrecognized party
// tags drop a row.
package records

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

type Normalizer struct {
	schemas *SchemaSet
}

func NewNormalizer(schemas *SchemaSet) *Normalizer {
	if schemas == nil {
		schemas = DefaultSchemas()
	}
	return &Normalizer{schemas: schemas}
}

// Issues maps every input row to exactly one record. Ids derive from row
// position only, so normalizing the same batch twice is byte-identical.
func (n *Normalizer) Issues(rows []RawRow) []Issue {
	s := n.schemas.Issues
	out := make([]Issue, 0, len(rows))
	for i, r := range rows {
		out = append(out, Issue{
			ID:         fmt.Sprintf("issue_%d", i+1),
			Issue:      s.pick(r, "issue"),
			IssueTamil: s.pick(r, "issue_ta"),
			NTKURL:     s.pick(r, "ntk"),
			TVKURL:     s.pick(r, "tvk"),
			DateDMY:    s.pick(r, "date"),
		})
	}
	return out
}

// Activities covers both protests and people meets; the sheet mixes them
// and tags each row with a type label.
func (n *Normalizer) Activities(rows []RawRow) []Activity {
	s := n.schemas.Activities
	out := make([]Activity, 0, len(rows))
	for i, r := range rows {
		out = append(out, Activity{
			ID:         fmt.Sprintf("row_%d", i+1),
			Issue:      s.pick(r, "issue"),
			IssueTamil: s.pick(r, "issue_ta"),
			Type:       s.pick(r, "type"),
			NTKURL:     s.pick(r, "ntk"),
			TVKURL:     s.pick(r, "tvk"),
			NTKSpeech:  ParseMinutes(s.pick(r, "ntk_speech")),
			TVKSpeech:  ParseMinutes(s.pick(r, "tvk_speech")),
			DateDMY:    s.pick(r, "date"),
		})
	}
	return out
}

// Press drops rows whose party tag is not exactly NTK or TVK (blank rows
// and stray values alike). Ids keep the source row position, so dropped
// rows leave gaps.
func (n *Normalizer) Press(rows []RawRow) []MediaEvent {
	s := n.schemas.Press
	out := make([]MediaEvent, 0, len(rows))
	for i, r := range rows {
		party, ok := normalizeParty(s.pick(r, "party"))
		if !ok {
			continue
		}
		out = append(out, MediaEvent{
			ID:       fmt.Sprintf("press_%d", i+1),
			Party:    party,
			Duration: ParseMinutes(s.pick(r, "duration")),
			YTURL:    s.pick(r, "youtube"),
			DateDMY:  s.pick(r, "date"),
		})
	}
	return out
}

// Conferences is Press plus a topic field in both languages.
func (n *Normalizer) Conferences(rows []RawRow) []MediaEvent {
	s := n.schemas.Conferences
	out := make([]MediaEvent, 0, len(rows))
	for i, r := range rows {
		party, ok := normalizeParty(s.pick(r, "party"))
		if !ok {
			continue
		}
		out = append(out, MediaEvent{
			ID:         fmt.Sprintf("conf_%d", i+1),
			Topic:      s.pick(r, "topic"),
			TopicTamil: s.pick(r, "topic_ta"),
			Party:      party,
			Duration:   ParseMinutes(s.pick(r, "duration")),
			YTURL:      s.pick(r, "youtube"),
			DateDMY:    s.pick(r, "date"),
		})
	}
	return out
}

func normalizeParty(raw string) (string, bool) {
	party := strings.ToUpper(strings.TrimSpace(raw))
	if party != PartyNTK && party != PartyTVK {
		return "", false
	}
	return party, true
}

var minutesPattern = regexp.MustCompile(`([0-9]*\.?[0-9]+)`)

// ParseMinutes extracts the first decimal number from free text like "12",
// "12 m" or "10min" and rounds it to the nearest integer. Returns 0 for
// empty or unmatched input; never fails.
func ParseMinutes(v string) int {
	m := minutesPattern.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return 0
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return int(math.Round(f))
}
