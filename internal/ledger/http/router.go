package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pc-part-finder/go-partfinder-backend/internal/ledger/service"
	ledgersync "github.com/pc-part-finder/go-partfinder-backend/internal/ledger/sync"
)

type Handler struct {
	ledger   *service.LedgerService
	notifier *ledgersync.Notifier
}

func New(ledger *service.LedgerService, notifier *ledgersync.Notifier) *Handler {
	return &Handler{ledger: ledger, notifier: notifier}
}

// RegisterProjects attaches project CRUD and part routes.
func (h *Handler) RegisterProjects(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.PATCH("/:id", h.update)
	rg.DELETE("/:id", h.delete)
	rg.POST("/:id/parts", h.addPart)
	rg.DELETE("/:id/parts/:part_id", h.removePart)
}

// RegisterCart attaches the aggregated cart view and its change stream.
func (h *Handler) RegisterCart(rg *gin.RouterGroup) {
	rg.GET("", h.cart)
	rg.GET("/events", h.StreamCartEvents)
}
