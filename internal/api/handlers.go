package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/ahmetberacelik/legalcase/internal/cache"
	"github.com/ahmetberacelik/legalcase/internal/database"
	"github.com/ahmetberacelik/legalcase/internal/service"
	"github.com/ahmetberacelik/legalcase/pkg/logger"
)

const sessionUserKey = "user_id"

// Handlers holds all HTTP handlers
type Handlers struct {
	auth      *service.AuthService
	cases     *service.CaseService
	clients   *service.ClientService
	hearings  *service.HearingService
	documents *service.DocumentService
	cache     cache.Cache
	logger    *logger.Logger
}

// NewHandlers creates a new handlers instance
func NewHandlers(auth *service.AuthService, cases *service.CaseService, clients *service.ClientService,
	hearings *service.HearingService, documents *service.DocumentService,
	cache cache.Cache, logger *logger.Logger) *Handlers {
	return &Handlers{
		auth:      auth,
		cases:     cases,
		clients:   clients,
		hearings:  hearings,
		documents: documents,
		cache:     cache,
		logger:    logger,
	}
}

// respondError maps service errors onto HTTP statuses: validation failures
// become 400, storage failures a generic 500.
func (h *Handlers) respondError(c *gin.Context, err error) {
	if service.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}
	if errors.Is(err, service.ErrStorage) {
		h.logger.Error("storage failure", "error", err, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal storage error",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func respondNotFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   what + " not found",
	})
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid id",
		})
		return 0, false
	}
	return uint(id), true
}

// RequireLogin rebuilds the caller's session from the cookie and aborts
// with 401 when nobody is logged in.
func (h *Handlers) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		rawID := sess.Get(sessionUserKey)

		userID, ok := rawID.(uint)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "login required",
			})
			return
		}

		svcSess := service.NewSession()
		active, err := h.auth.Resume(svcSess, userID)
		if err != nil {
			h.respondError(c, err)
			c.Abort()
			return
		}
		if !active {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "login required",
			})
			return
		}

		c.Set("session", svcSess)
		c.Next()
	}
}

// Register creates a new account
func (h *Handlers) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Name     string `json:"name"`
		Surname  string `json:"surname"`
		Role     string `json:"role" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	user, err := h.auth.Register(req.Username, req.Password, req.Email, req.Name, req.Surname, database.UserRole(req.Role))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    user,
	})
}

// Login authenticates and stores the user id in the cookie session
func (h *Handlers) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	svcSess := service.NewSession()
	loggedIn, err := h.auth.Login(svcSess, req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !loggedIn {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "invalid username or password",
		})
		return
	}

	user, _ := h.auth.CurrentUser(svcSess)

	sess := sessions.Default(c)
	sess.Set(sessionUserKey, user.ID)
	if err := sess.Save(); err != nil {
		h.logger.Error("failed to save session", "error", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

// Logout clears the cookie session
func (h *Handlers) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	if err := sess.Save(); err != nil {
		h.logger.Error("failed to clear session", "error", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// Me returns the logged-in user
func (h *Handlers) Me(c *gin.Context) {
	svcSess := c.MustGet("session").(*service.Session)
	user, err := h.auth.CurrentUser(svcSess)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "login required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

// HealthCheck returns the health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	_, dbErr := h.cases.GetAllCases()

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbErr == nil,
		"cache":    h.cache.Stats(),
		"time":     time.Now().Unix(),
	})
}

// CacheStats returns cache statistics
func (h *Handlers) CacheStats(c *gin.Context) {
	stats := h.cache.Stats()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
