package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/senthilk/party-pulse/app/cfg"
	"github.com/senthilk/party-pulse/app/query"
	"github.com/senthilk/party-pulse/app/records"
	"github.com/senthilk/party-pulse/app/stats"
)

// Success responses are shared-cacheable for the same 60 seconds the sheet
// cache holds, plus a stale-while-revalidate grace.
const cacheControl = "s-maxage=60, stale-while-revalidate=30"

func NewHandler(reader SheetReader, normalizer *records.Normalizer, c *cfg.Cfg) *Handler {
	return &Handler{
		reader:        reader,
		normalizer:    normalizer,
		issuesGID:     c.IssuesGID,
		protestsGID:   c.ProtestsGID,
		pressGID:      c.PressGID,
		conferenceGID: c.ConferenceGID,
	}
}

func (h *Handler) GetIssues(c *gin.Context) {
	rows, err := h.readRows(c, h.issuesGID)
	if err != nil {
		fail(c, "issues", "Failed to read Issues sheet", err)
		return
	}
	respondList(c, h.normalizer.Issues(rows), issueFields)
}

func (h *Handler) GetProtests(c *gin.Context) {
	rows, err := h.readRows(c, h.protestsGID)
	if err != nil {
		fail(c, "protests", "Failed to read Protests sheet", err)
		return
	}
	respondList(c, h.normalizer.Activities(rows), activityFields)
}

func (h *Handler) GetPress(c *gin.Context) {
	rows, err := h.readOptionalRows(c, h.pressGID)
	if err != nil {
		fail(c, "press", "Failed to read Press sheet", err)
		return
	}
	respondMediaList(c, h.normalizer.Press(rows), pressFields)
}

func (h *Handler) GetConferences(c *gin.Context) {
	rows, err := h.readOptionalRows(c, h.conferenceGID)
	if err != nil {
		fail(c, "conferences", "Failed to read Conferences sheet", err)
		return
	}
	respondMediaList(c, h.normalizer.Conferences(rows), conferenceFields)
}

func (h *Handler) GetAggregate(c *gin.Context) {
	issuesRows, err := h.readRows(c, h.issuesGID)
	if err != nil {
		fail(c, "aggregate", "Failed to aggregate", err)
		return
	}
	protestRows, err := h.readRows(c, h.protestsGID)
	if err != nil {
		fail(c, "aggregate", "Failed to aggregate", err)
		return
	}
	pressRows, err := h.readOptionalRows(c, h.pressGID)
	if err != nil {
		fail(c, "aggregate", "Failed to aggregate", err)
		return
	}
	confRows, err := h.readOptionalRows(c, h.conferenceGID)
	if err != nil {
		fail(c, "aggregate", "Failed to aggregate", err)
		return
	}

	totals := stats.Aggregate(
		h.normalizer.Issues(issuesRows),
		h.normalizer.Activities(protestRows),
		h.normalizer.Press(pressRows),
		h.normalizer.Conferences(confRows),
	)

	c.Header("Cache-Control", cacheControl)
	c.JSON(http.StatusOK, totalsResponse{OK: true, Totals: totals})
}

func (h *Handler) GetHealth(c *gin.Context) {
	configured := 0
	for _, gid := range []string{h.issuesGID, h.protestsGID, h.pressGID, h.conferenceGID} {
		if gid != "" {
			configured++
		}
	}

	c.JSON(http.StatusOK, map[string]any{
		"timestamp":         time.Now().In(time.Local).Format(time.RFC3339),
		"version":           cfg.GetVersion(),
		"configured_sheets": configured,
	})
}

var errSheetNotConfigured = errors.New("sheet identifier not configured")

// readRows fetches and unwraps one category's rows. Config loading rejects
// unset issues/protests GIDs, so an empty GID here means the handler was
// built from an incomplete config and must not answer with an empty success.
func (h *Handler) readRows(c *gin.Context, gid string) ([]records.RawRow, error) {
	if gid == "" {
		return nil, errSheetNotConfigured
	}
	sheet, err := h.reader.ReadByGID(c.Request.Context(), gid)
	if err != nil {
		return nil, err
	}
	return sheet.Rows, nil
}

// readOptionalRows treats an unconfigured GID as an empty category; only the
// press and conference sheets may be absent from a deployment.
func (h *Handler) readOptionalRows(c *gin.Context, gid string) ([]records.RawRow, error) {
	if gid == "" {
		return nil, nil
	}
	return h.readRows(c, gid)
}

// respondList returns the full normalized list for a bare request, or runs
// the filter/sort/paginate pipeline when any knob is present.
func respondList[T any](c *gin.Context, items []T, fields query.Fields[T]) {
	c.Header("Cache-Control", cacheControl)

	params := query.ParseParams(c.Request.URL.Query())
	if params.Empty() {
		c.JSON(http.StatusOK, listResponse{OK: true, Data: items})
		return
	}

	page, meta := query.Run(items, params, fields)
	c.JSON(http.StatusOK, listResponse{OK: true, Data: page, Meta: &meta})
}

// respondMediaList is respondList plus the derived thumbnail enrichment.
func respondMediaList(c *gin.Context, events []records.MediaEvent, fields query.Fields[records.MediaEvent]) {
	c.Header("Cache-Control", cacheControl)

	params := query.ParseParams(c.Request.URL.Query())
	if params.Empty() {
		c.JSON(http.StatusOK, listResponse{OK: true, Data: mediaViews(events)})
		return
	}

	page, meta := query.Run(events, params, fields)
	c.JSON(http.StatusOK, listResponse{OK: true, Data: mediaViews(page), Meta: &meta})
}

func fail(c *gin.Context, operation, message string, err error) {
	slog.Error("Sheet read failed", "operation", operation, "error", err)
	c.JSON(http.StatusInternalServerError, errorResponse{OK: false, Error: message})
}
