package ai

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studybuddy-backend/internal/documents"
	"studybuddy-backend/internal/shared/server/middleware"
	"studybuddy-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the ai routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/ask", h.ask)
	rg.GET("/ai/history", h.history)
}

type askRequest struct {
	Question string `json:"question"`
	FileID   string `json:"fileId"`
}

func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	c.Set("fileId", req.FileID)

	user := middleware.UserEmailFromContext(c)
	answer, err := h.Svc.Ask(c.Request.Context(), user, req.Question, req.FileID)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingInput):
			respond.Error(c, http.StatusBadRequest, "question and fileId are required", nil)
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "file not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "AI request failed", err)
		}
		return
	}

	respond.OK(c, gin.H{"answer": answer})
}

func (h *Handler) history(c *gin.Context) {
	respond.OK(c, h.Svc.Records())
}
