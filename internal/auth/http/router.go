package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pc-part-finder/go-partfinder-backend/internal/auth/service"
)

type Handler struct {
	authService *service.AuthService
}

func New(authService *service.AuthService) *Handler {
	return &Handler{authService: authService}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/profile", h.GetProfile)
	rg.POST("/sync", h.SyncUser)
	rg.PUT("/profile", h.UpdateProfile)
	rg.GET("/preferences", h.GetPreferences)
	rg.PUT("/preferences", h.UpdatePreferences)
}
