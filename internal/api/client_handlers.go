package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmetberacelik/legalcase/internal/database"
)

type clientRequest struct {
	Name    string  `json:"name" binding:"required"`
	Surname string  `json:"surname"`
	Email   *string `json:"email"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
}

// CreateClient handles POST /api/clients
func (h *Handlers) CreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	client, err := h.clients.CreateClient(req.Name, req.Surname, req.Email, req.Phone, req.Address)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": client})
}

// ListClients handles GET /api/clients with an optional name filter
func (h *Handlers) ListClients(c *gin.Context) {
	var (
		records []database.Client
		err     error
	)
	if name := c.Query("name"); name != "" {
		records, err = h.clients.SearchClientsByName(name)
	} else {
		records, err = h.clients.GetAllClients()
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": records})
}

// GetClient handles GET /api/clients/:id
func (h *Handlers) GetClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	client, err := h.clients.GetClientByID(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if client == nil {
		respondNotFound(c, "client")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": client})
}

// UpdateClient handles PUT /api/clients/:id
func (h *Handlers) UpdateClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	client, err := h.clients.UpdateClient(id, req.Name, req.Surname, req.Email, req.Phone, req.Address)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": client})
}

// DeleteClient handles DELETE /api/clients/:id
func (h *Handlers) DeleteClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.clients.DeleteClient(id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ClientCases handles GET /api/clients/:id/cases
func (h *Handlers) ClientCases(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	records, err := h.cases.GetCasesForClient(id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": records})
}
