package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ahmetberacelik/legalcase/internal/database"
)

// hearingView exposes the hearing date as RFC 3339 alongside the record.
type hearingView struct {
	database.Hearing
	DateTime string `json:"date_time"`
}

func viewHearing(h *database.Hearing) hearingView {
	return hearingView{Hearing: *h, DateTime: h.DateTime().Format(time.RFC3339)}
}

func viewHearings(records []database.Hearing) []hearingView {
	views := make([]hearingView, 0, len(records))
	for i := range records {
		views = append(views, viewHearing(&records[i]))
	}
	return views
}

func parseDateTime(c *gin.Context, value string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid date_time, expected RFC 3339"})
		return time.Time{}, false
	}
	return t, true
}

// CreateHearing handles POST /api/hearings
func (h *Handlers) CreateHearing(c *gin.Context) {
	var req struct {
		CaseID   uint   `json:"case_id" binding:"required"`
		DateTime string `json:"date_time" binding:"required"`
		Judge    string `json:"judge"`
		Location string `json:"location"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	dateTime, ok := parseDateTime(c, req.DateTime)
	if !ok {
		return
	}

	hearing, err := h.hearings.CreateHearing(req.CaseID, dateTime, req.Judge, req.Location, req.Notes)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": viewHearing(hearing)})
}

// ListHearings handles GET /api/hearings with optional case_id, status,
// from/to and upcoming query filters
func (h *Handlers) ListHearings(c *gin.Context) {
	var (
		records []database.Hearing
		err     error
	)
	switch {
	case c.Query("case_id") != "":
		caseID, convErr := strconv.ParseUint(c.Query("case_id"), 10, 32)
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid case_id"})
			return
		}
		records, err = h.hearings.GetHearingsByCase(uint(caseID))
	case c.Query("status") != "":
		records, err = h.hearings.GetHearingsByStatus(database.HearingStatus(c.Query("status")))
	case c.Query("from") != "" || c.Query("to") != "":
		from, ok := parseDateTime(c, c.Query("from"))
		if !ok {
			return
		}
		to, ok := parseDateTime(c, c.Query("to"))
		if !ok {
			return
		}
		records, err = h.hearings.GetHearingsByDateRange(from, to)
	case c.Query("upcoming") == "true":
		records, err = h.hearings.GetUpcomingHearings()
	default:
		records, err = h.hearings.GetAllHearings()
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": viewHearings(records)})
}

// GetHearing handles GET /api/hearings/:id
func (h *Handlers) GetHearing(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	hearing, err := h.hearings.GetHearingByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if hearing == nil {
		respondNotFound(c, "hearing")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": viewHearing(hearing)})
}

// UpdateHearing handles PUT /api/hearings/:id; absent fields keep their
// stored values
func (h *Handlers) UpdateHearing(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		DateTime *string `json:"date_time"`
		Judge    *string `json:"judge"`
		Location *string `json:"location"`
		Notes    *string `json:"notes"`
		Status   *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	var dateTime *time.Time
	if req.DateTime != nil {
		t, ok := parseDateTime(c, *req.DateTime)
		if !ok {
			return
		}
		dateTime = &t
	}

	var status *database.HearingStatus
	if req.Status != nil {
		s := database.HearingStatus(*req.Status)
		status = &s
	}

	hearing, err := h.hearings.UpdateHearing(id, dateTime, req.Judge, req.Location, req.Notes, status)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": viewHearing(hearing)})
}

// UpdateHearingStatus handles PUT /api/hearings/:id/status
func (h *Handlers) UpdateHearingStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	hearing, err := h.hearings.UpdateHearingStatus(id, database.HearingStatus(req.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": viewHearing(hearing)})
}

// RescheduleHearing handles POST /api/hearings/:id/reschedule
func (h *Handlers) RescheduleHearing(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		DateTime string `json:"date_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	dateTime, ok := parseDateTime(c, req.DateTime)
	if !ok {
		return
	}

	hearing, err := h.hearings.RescheduleHearing(id, dateTime)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": viewHearing(hearing)})
}

// DeleteHearing handles DELETE /api/hearings/:id
func (h *Handlers) DeleteHearing(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.hearings.DeleteHearing(id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
