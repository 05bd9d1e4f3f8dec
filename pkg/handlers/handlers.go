package handlers

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"

	"github.com/arnavshah/shift-board-api/pkg/auth"
	"github.com/arnavshah/shift-board-api/pkg/board"
	"github.com/arnavshah/shift-board-api/pkg/logger"
	"github.com/arnavshah/shift-board-api/pkg/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

//go:embed static/*
var staticEmbed embed.FS

// Handler contains dependencies for the route handlers
type Handler struct {
	Board       *board.Board
	DB          *gorm.DB
	Issuer      *auth.Issuer
	ServiceName string
	AuthEnabled bool
}

// AuthMiddleware verifies the admin JWT. It lets everything through when auth is disabled.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.AuthEnabled {
			c.Next()
			return
		}

		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := h.Issuer.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// CORSMiddleware allows the dashboard origin to call the API
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Health reports that the service is up
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{OK: true, Name: h.ServiceName})
}

// ListSlots returns every slot in order
func (h *Handler) ListSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": h.Board.Slots()})
}

// AddSlot appends a slot. Min and max are coerced, never rejected.
func (h *Handler) AddSlot(c *gin.Context) {
	var input models.SlotInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, err := h.Board.AddSlot(c.Request.Context(), input.Sector, input.Shift, input.Role,
		models.CoerceCount(input.Min), models.CoerceCount(input.Max))
	if err != nil {
		h.writeError(c, err)
		return
	}

	logger.Debug("slot added", "id", slot.ID, "sector", slot.Sector, "shift", slot.Shift, "role", slot.Role)
	c.JSON(http.StatusCreated, slot)
}

// RemoveSlot deletes a slot; unknown IDs are ignored
func (h *Handler) RemoveSlot(c *gin.Context) {
	if err := h.Board.RemoveSlot(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReplaceSlots overwrites every slot with the request body
func (h *Handler) ReplaceSlots(c *gin.Context) {
	var req struct {
		Slots []models.SlotInput `json:"slots"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slots := make([]models.Slot, 0, len(req.Slots))
	for _, in := range req.Slots {
		slots = append(slots, models.Slot{
			Sector: in.Sector,
			Shift:  in.Shift,
			Role:   in.Role,
			Min:    models.CoerceCount(in.Min),
			Max:    models.CoerceCount(in.Max),
		})
	}

	out, err := h.Board.ReplaceSlots(c.Request.Context(), slots)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": out})
}

// GenerateDefaultPattern replaces the slots with the default sector x shift grid
func (h *Handler) GenerateDefaultPattern(c *gin.Context) {
	out, err := h.Board.GenerateDefaultPattern(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": out})
}

// ClearSlots removes every slot
func (h *Handler) ClearSlots(c *gin.Context) {
	if err := h.Board.ClearSlots(c.Request.Context()); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListRequests returns shift requests, optionally filtered by ?status=
func (h *Handler) ListRequests(c *gin.Context) {
	status := models.RequestStatus(c.Query("status"))
	if status == "" {
		c.JSON(http.StatusOK, gin.H{"requests": h.Board.Requests()})
		return
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status: " + string(status)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": h.Board.RequestsWithStatus(status)})
}

// SetRequestStatus sets a request to the status in the body
func (h *Handler) SetRequestStatus(c *gin.Context) {
	var input models.StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.setStatus(c, input.Status)
}

// ApproveRequest marks a request approved
func (h *Handler) ApproveRequest(c *gin.Context) {
	h.setStatus(c, models.StatusApproved)
}

// RejectRequest marks a request rejected
func (h *Handler) RejectRequest(c *gin.Context) {
	h.setStatus(c, models.StatusRejected)
}

func (h *Handler) setStatus(c *gin.Context, status models.RequestStatus) {
	req, err := h.Board.SetRequestStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		h.writeError(c, err)
		return
	}
	logger.Info("request reviewed", "id", req.ID, "employee", req.Employee, "status", req.Status, "by", c.GetString("username"))
	c.JSON(http.StatusOK, req)
}

// Coverage returns per-slot coverage and whether the schedule can be published
func (h *Handler) Coverage(c *gin.Context) {
	c.JSON(http.StatusOK, h.Board.Coverage())
}

// GetSchedule returns the schedule lifecycle state
func (h *Handler) GetSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, h.Board.Schedule())
}

// Publish locks the schedule if coverage allows it
func (h *Handler) Publish(c *gin.Context) {
	actor := c.GetString("username")
	if actor == "" {
		actor = "anonymous"
	}

	sched, err := h.Board.Publish(c.Request.Context(), actor)
	if err != nil {
		if errors.Is(err, board.ErrCoverageUnsatisfied) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "coverage": h.Board.Coverage()})
			return
		}
		h.writeError(c, err)
		return
	}

	logger.Info("schedule published", "publication", sched.PublicationID, "by", actor)
	c.JSON(http.StatusOK, sched)
}

// Reopen returns a published schedule to draft
func (h *Handler) Reopen(c *gin.Context) {
	sched, err := h.Board.Reopen(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

// Login handles admin login
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.DB == nil || h.Issuer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Login is not enabled"})
		return
	}

	user, err := auth.Authenticate(h.DB, req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.Issuer.CreateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// AdminInterface serves the dashboard page from embedded files
func (h *Handler) AdminInterface(c *gin.Context) {
	data, err := staticEmbed.ReadFile("static/index.html")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "static/index.html not found in embedded FS"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}

// GetStaticFS returns the embedded filesystem for static assets
func (h *Handler) GetStaticFS() http.FileSystem {
	sub, err := fs.Sub(staticEmbed, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, board.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, board.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, board.ErrScheduleLocked), errors.Is(err, board.ErrCoverageUnsatisfied):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("board update failed", "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update board"})
	}
}
