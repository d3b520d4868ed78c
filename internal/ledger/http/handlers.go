package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pc-part-finder/go-partfinder-backend/internal/auth"
	"github.com/pc-part-finder/go-partfinder-backend/internal/catalog"
	"github.com/pc-part-finder/go-partfinder-backend/internal/ledger/domain"
)

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	userID := auth.UserFirebaseUID(c)
	project, err := h.ledger.CreateProject(c.Request.Context(), userID, domain.ProjectDraft{
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		Category:    req.Category,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidProject) || errors.Is(err, domain.ErrDuplicateName) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": project})
}

func (h *Handler) list(c *gin.Context) {
	userID := auth.UserFirebaseUID(c)
	projects, err := h.ledger.ListProjects(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": projects})
}

func (h *Handler) update(c *gin.Context) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	userID := auth.UserFirebaseUID(c)
	project, err := h.ledger.UpdateProject(c.Request.Context(), userID, c.Param("id"), domain.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		Category:    req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		case errors.Is(err, domain.ErrInvalidProject), errors.Is(err, domain.ErrDuplicateName):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": project})
}

func (h *Handler) delete(c *gin.Context) {
	userID := auth.UserFirebaseUID(c)
	if err := h.ledger.DeleteProject(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	// Absent ids are a no-op; delete always reports success.
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) addPart(c *gin.Context) {
	var req addPartReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.PartID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	userID := auth.UserFirebaseUID(c)
	project, err := h.ledger.AddPart(c.Request.Context(), userID, c.Param("id"), strings.TrimSpace(req.PartID))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicatePart):
			c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "this part is already in your project"})
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		case errors.Is(err, catalog.ErrPartNotFound):
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "part not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": project})
}

func (h *Handler) removePart(c *gin.Context) {
	userID := auth.UserFirebaseUID(c)
	project, err := h.ledger.RemovePart(c.Request.Context(), userID, c.Param("id"), c.Param("part_id"))
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": project})
}

func (h *Handler) cart(c *gin.Context) {
	userID := auth.UserFirebaseUID(c)
	cart, err := h.ledger.Cart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "cart": cart})
}
