package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ahmetberacelik/legalcase/internal/database"
)

// CreateDocument handles POST /api/documents
func (h *Handlers) CreateDocument(c *gin.Context) {
	var req struct {
		CaseID  uint   `json:"case_id" binding:"required"`
		Title   string `json:"title" binding:"required"`
		Type    string `json:"type" binding:"required"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	doc, err := h.documents.CreateDocument(req.CaseID, req.Title, database.DocumentType(req.Type), req.Content)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": doc})
}

// ListDocuments handles GET /api/documents with optional case_id, type and
// title query filters
func (h *Handlers) ListDocuments(c *gin.Context) {
	var (
		records []database.Document
		err     error
	)
	switch {
	case c.Query("case_id") != "":
		caseID, convErr := strconv.ParseUint(c.Query("case_id"), 10, 32)
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid case_id"})
			return
		}
		records, err = h.documents.GetDocumentsByCase(uint(caseID))
	case c.Query("type") != "":
		records, err = h.documents.GetDocumentsByType(database.DocumentType(c.Query("type")))
	case c.Query("title") != "":
		records, err = h.documents.SearchDocumentsByTitle(c.Query("title"))
	default:
		records, err = h.documents.GetAllDocuments()
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": records})
}

// GetDocument handles GET /api/documents/:id
func (h *Handlers) GetDocument(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	doc, err := h.documents.GetDocumentByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if doc == nil {
		respondNotFound(c, "document")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": doc})
}

// UpdateDocument handles PUT /api/documents/:id
func (h *Handlers) UpdateDocument(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		Title   string `json:"title" binding:"required"`
		Type    string `json:"type" binding:"required"`
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	doc, err := h.documents.UpdateDocument(id, req.Title, database.DocumentType(req.Type), req.Content)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": doc})
}

// UpdateDocumentContentType handles PUT /api/documents/:id/content-type
func (h *Handlers) UpdateDocumentContentType(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req struct {
		ContentType string `json:"content_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	doc, err := h.documents.UpdateDocumentContentType(id, req.ContentType)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": doc})
}

// DeleteDocument handles DELETE /api/documents/:id
func (h *Handlers) DeleteDocument(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.documents.DeleteDocument(id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
