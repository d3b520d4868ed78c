package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pc-part-finder/go-partfinder-backend/internal/auth"
	"github.com/pc-part-finder/go-partfinder-backend/internal/checkout/domain"
)

func (h *Handler) checkoutHandler(c *gin.Context) {
	var card domain.CardDetails
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	userID := auth.UserFirebaseUID(c)
	order, err := h.checkout.Checkout(c.Request.Context(), userID, card)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCard):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		case errors.Is(err, domain.ErrTooManyAttempts):
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "please wait before retrying"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	resp := gin.H{"ok": true}
	if order != nil {
		resp["order"] = order
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) listOrders(c *gin.Context) {
	userID := auth.UserFirebaseUID(c)
	orders, err := h.checkout.Orders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "orders": orders})
}
