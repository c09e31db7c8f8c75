package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studybuddy-backend/internal/shared/server/middleware"
	"studybuddy-backend/internal/shared/server/respond"
)

// Handler wires the login and identity endpoints to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPublicRoutes attaches routes that need no session.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.login)
}

// RegisterProtectedRoutes attaches routes behind the auth middleware.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.me)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "email and password are required", err)
		return
	}

	token, err := h.Svc.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCredentials):
			respond.Error(c, http.StatusBadRequest, "email and password are required", nil)
		case errors.Is(err, ErrInvalidCredentials):
			respond.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "login failed", err)
		}
		return
	}

	respond.OK(c, gin.H{
		"token": token,
		"user":  gin.H{"email": h.Svc.Email, "name": h.Svc.Name},
	})
}

func (h *Handler) me(c *gin.Context) {
	user := gin.H{"email": middleware.UserEmailFromContext(c)}
	if name := middleware.UserNameFromContext(c); name != "" {
		user["name"] = name
	}
	respond.OK(c, gin.H{"user": user})
}
