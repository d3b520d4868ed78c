package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pc-part-finder/go-partfinder-backend/internal/catalog"
)

func (h *Handler) list(c *gin.Context) {
	term := strings.TrimSpace(c.Query("search"))
	category := strings.TrimSpace(c.Query("category"))

	parts, err := h.catalog.Search(term, category)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidSearch) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "parts": parts})
}

func (h *Handler) get(c *gin.Context) {
	part, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "part not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "part": part})
}
