package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/netcoach-ai/netcoach/internal/api/middleware"
	"github.com/netcoach-ai/netcoach/internal/domain"
	"github.com/netcoach-ai/netcoach/internal/service"
)

// Handler handles the chat endpoint
type Handler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

// NewHandler creates a new chat handler
func NewHandler(chatService *service.ChatService, logger *zap.Logger) *Handler {
	return &Handler{chatService: chatService, logger: logger}
}

// RegisterRoutes registers chat routes
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/chat", h.Chat)
}

// Chat handles one chat turn
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	credential := middleware.CredentialFrom(c)

	resp, err := h.chatService.Chat(c.Request.Context(), credential, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// writeError translates the service error taxonomy to status codes.
// Upstream and storage details are logged, not leaked to the caller.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing API key"})
	case errors.Is(err, domain.ErrPolicyBlocked):
		c.JSON(http.StatusBadRequest, gin.H{"error": "message blocked by moderation"})
	case errors.Is(err, domain.ErrInvalidMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	default:
		h.logger.Error("chat turn failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
