package http

import (
	"github.com/gin-gonic/gin"

	"github.com/pc-part-finder/go-partfinder-backend/internal/catalog"
)

type Handler struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Handler {
	return &Handler{catalog: c}
}

// Register attaches catalog routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
}
