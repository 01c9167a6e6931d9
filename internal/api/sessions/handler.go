package sessions

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/netcoach-ai/netcoach/internal/service"
)

// Handler handles session management endpoints
type Handler struct {
	sessionService *service.SessionService
	logger         *zap.Logger
}

// NewHandler creates a new sessions handler
func NewHandler(sessionService *service.SessionService, logger *zap.Logger) *Handler {
	return &Handler{sessionService: sessionService, logger: logger}
}

// RegisterRoutes registers session routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/sessions/new", h.Create)
	r.GET("/sessions", h.List)
	r.GET("/sessions/:id", h.Messages)
}

// Create creates a new session with a generated id
func (h *Handler) Create(c *gin.Context) {
	sess, err := h.sessionService.Create(c.Request.Context())
	if err != nil {
		h.logger.Error("session creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": sess.ID, "title": sess.Title})
}

// List returns all sessions, newest first
func (h *Handler) List(c *gin.Context) {
	sessions, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		h.logger.Error("session listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// Messages returns a session's transcript, oldest first. An unknown
// id yields an empty list, not a 404.
func (h *Handler) Messages(c *gin.Context) {
	msgs, err := h.sessionService.Messages(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.Error("transcript read failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := make([]gin.H, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, gin.H{
			"role":      m.Role,
			"content":   m.Content,
			"timestamp": m.Timestamp,
		})
	}
	c.JSON(http.StatusOK, out)
}
