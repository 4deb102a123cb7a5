package api

import (
	"context"

	"github.com/senthilk/party-pulse/app/query"
	"github.com/senthilk/party-pulse/app/records"
	"github.com/senthilk/party-pulse/app/sheets"
	"github.com/senthilk/party-pulse/app/stats"
	"github.com/senthilk/party-pulse/app/youtube"
)

// SheetReader is the slice of the sheets service the handlers need.
type SheetReader interface {
	ReadByGID(ctx context.Context, gid string) (*sheets.Sheet, error)
}

var _ SheetReader = (*sheets.Service)(nil)

type Handler struct {
	reader     SheetReader
	normalizer *records.Normalizer

	issuesGID     string
	protestsGID   string
	pressGID      string
	conferenceGID string
}

type listResponse struct {
	OK   bool        `json:"ok"`
	Data any         `json:"data"`
	Meta *query.Meta `json:"meta,omitempty"`
}

type totalsResponse struct {
	OK     bool         `json:"ok"`
	Totals stats.Totals `json:"totals"`
}

type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// mediaEventView adds the thumbnail URLs derived from the video link, so
// carousel clients don't each reimplement the id extraction.
type mediaEventView struct {
	records.MediaEvent
	Thumbnails *youtube.ThumbnailSet `json:"thumbnails,omitempty"`
}

func mediaViews(events []records.MediaEvent) []mediaEventView {
	views := make([]mediaEventView, 0, len(events))
	for _, e := range events {
		views = append(views, mediaEventView{
			MediaEvent: e,
			Thumbnails: youtube.Thumbnails(e.YTURL),
		})
	}
	return views
}

// Per-category pipeline adapters. Issues and activities filter by link
// presence; media events by party tag, so ntk-only means "tagged NTK".
var issueFields = query.Fields[records.Issue]{
	SearchText: func(r records.Issue) string { return r.Issue + " " + r.IssueTamil },
	DateDMY:    func(r records.Issue) string { return r.DateDMY },
	HasNTK:     func(r records.Issue) bool { return r.NTKURL != "" },
	HasTVK:     func(r records.Issue) bool { return r.TVKURL != "" },
}

var activityFields = query.Fields[records.Activity]{
	SearchText: func(r records.Activity) string { return r.Issue + " " + r.IssueTamil },
	DateDMY:    func(r records.Activity) string { return r.DateDMY },
	HasNTK:     func(r records.Activity) bool { return r.NTKURL != "" },
	HasTVK:     func(r records.Activity) bool { return r.TVKURL != "" },
}

var pressFields = query.Fields[records.MediaEvent]{
	SearchText: func(r records.MediaEvent) string { return r.DateDMY + " " + r.Party },
	DateDMY:    func(r records.MediaEvent) string { return r.DateDMY },
	HasNTK:     func(r records.MediaEvent) bool { return r.Party == records.PartyNTK },
	HasTVK:     func(r records.MediaEvent) bool { return r.Party == records.PartyTVK },
}

var conferenceFields = query.Fields[records.MediaEvent]{
	SearchText: func(r records.MediaEvent) string { return r.Topic + " " + r.TopicTamil },
	DateDMY:    func(r records.MediaEvent) string { return r.DateDMY },
	HasNTK:     func(r records.MediaEvent) bool { return r.Party == records.PartyNTK },
	HasTVK:     func(r records.MediaEvent) bool { return r.Party == records.PartyTVK },
}
