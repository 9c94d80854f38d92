package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ahmetberacelik/legalcase/internal/database"
)

type caseRequest struct {
	CaseNumber  string `json:"case_number" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// CreateCase handles POST /api/cases
func (h *Handlers) CreateCase(c *gin.Context) {
	var req caseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	record, err := h.cases.CreateCase(req.CaseNumber, req.Title, database.CaseType(req.Type), req.Description)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": record})
}

// ListCases handles GET /api/cases with optional number, status and title
// query filters
func (h *Handlers) ListCases(c *gin.Context) {
	if number := c.Query("number"); number != "" {
		record, err := h.cases.GetCaseByCaseNumber(number)
		if err != nil {
			h.respondError(c, err)
			return
		}
		if record == nil {
			respondNotFound(c, "case")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
		return
	}

	var (
		records []database.Case
		err     error
	)
	switch {
	case c.Query("status") != "":
		records, err = h.cases.GetCasesByStatus(database.CaseStatus(c.Query("status")))
	case c.Query("title") != "":
		records, err = h.cases.SearchCasesByTitle(c.Query("title"))
	default:
		records, err = h.cases.GetAllCases()
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": records})
}

// GetCase handles GET /api/cases/:id
func (h *Handlers) GetCase(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	record, err := h.cases.GetCaseByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if record == nil {
		respondNotFound(c, "case")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

// UpdateCase handles PUT /api/cases/:id
func (h *Handlers) UpdateCase(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req caseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	record, err := h.cases.UpdateCase(id, req.CaseNumber, req.Title,
		database.CaseType(req.Type), req.Description, database.CaseStatus(req.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": record})
}

// DeleteCase handles DELETE /api/cases/:id
func (h *Handlers) DeleteCase(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.cases.DeleteCase(id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CaseClients handles GET /api/cases/:id/clients
func (h *Handlers) CaseClients(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	clients, err := h.cases.GetClientsForCase(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": clients})
}

// LinkClient handles POST /api/cases/:id/clients/:clientID
func (h *Handlers) LinkClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	clientID, err := strconv.ParseUint(c.Param("clientID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid client id"})
		return
	}

	if err := h.cases.AddClientToCase(id, uint(clientID)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UnlinkClient handles DELETE /api/cases/:id/clients/:clientID
func (h *Handlers) UnlinkClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	clientID, err := strconv.ParseUint(c.Param("clientID"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid client id"})
		return
	}

	if err := h.cases.RemoveClientFromCase(id, uint(clientID)); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
