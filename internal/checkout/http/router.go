package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pc-part-finder/go-partfinder-backend/internal/checkout/service"
)

type Handler struct {
	checkout *service.CheckoutService
}

func New(checkout *service.CheckoutService) *Handler {
	return &Handler{checkout: checkout}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.checkoutHandler)
	rg.GET("/orders", h.listOrders)
}
