// Package stats combines the four normalized record sets into the summary
// totals the landing page renders. Pure functions; nil categories count as
// empty.
package stats

import "github.com/senthilk/party-pulse/app/records"

// LinkBreakdown counts link-based party coverage for issues and activities.
// Ntk/Tvk count rows carrying that party's link at all; NtkOnly/TvkOnly/Both
// split the same rows three ways for the richer pie chart.
type LinkBreakdown struct {
	Total   int `json:"total"`
	Ntk     int `json:"ntk"`
	Tvk     int `json:"tvk"`
	NtkOnly int `json:"ntkOnly"`
	TvkOnly int `json:"tvkOnly"`
	Both    int `json:"both"`
}

// PartyBreakdown counts party-tagged media events.
type PartyBreakdown struct {
	Total int `json:"total"`
	Ntk   int `json:"ntk"`
	Tvk   int `json:"tvk"`
}

type SpeechMinutes struct {
	Ntk int `json:"ntk"`
	Tvk int `json:"tvk"`
}

type Totals struct {
	Issues        LinkBreakdown  `json:"issues"`
	Protests      LinkBreakdown  `json:"protests"`
	Press         PartyBreakdown `json:"press"`
	Conference    PartyBreakdown `json:"conference"`
	SpeechMinutes SpeechMinutes  `json:"speechMinutes"`
}

// Aggregate builds the combined totals. Speech minutes per party are the sum
// of that party's activity speech minutes plus its press and conference
// durations.
func Aggregate(issues []records.Issue, protests []records.Activity, press, conferences []records.MediaEvent) Totals {
	var t Totals

	t.Issues.Total = len(issues)
	for _, r := range issues {
		countLinks(&t.Issues, r.NTKURL != "", r.TVKURL != "")
	}

	t.Protests.Total = len(protests)
	for _, r := range protests {
		countLinks(&t.Protests, r.NTKURL != "", r.TVKURL != "")
		t.SpeechMinutes.Ntk += r.NTKSpeech
		t.SpeechMinutes.Tvk += r.TVKSpeech
	}

	t.Press = countParties(press)
	t.Conference = countParties(conferences)

	for _, r := range press {
		addDuration(&t.SpeechMinutes, r)
	}
	for _, r := range conferences {
		addDuration(&t.SpeechMinutes, r)
	}

	return t
}

func countLinks(b *LinkBreakdown, hasNtk, hasTvk bool) {
	if hasNtk {
		b.Ntk++
	}
	if hasTvk {
		b.Tvk++
	}
	switch {
	case hasNtk && hasTvk:
		b.Both++
	case hasNtk:
		b.NtkOnly++
	case hasTvk:
		b.TvkOnly++
	}
}

func countParties(events []records.MediaEvent) PartyBreakdown {
	b := PartyBreakdown{Total: len(events)}
	for _, r := range events {
		switch r.Party {
		case records.PartyNTK:
			b.Ntk++
		case records.PartyTVK:
			b.Tvk++
		}
	}
	return b
}

func addDuration(s *SpeechMinutes, r records.MediaEvent) {
	switch r.Party {
	case records.PartyNTK:
		s.Ntk += r.Duration
	case records.PartyTVK:
		s.Tvk += r.Duration
	}
}
