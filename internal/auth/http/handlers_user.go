package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pc-part-finder/go-partfinder-backend/internal/auth"
	"github.com/pc-part-finder/go-partfinder-backend/internal/auth/domain"
)

// GetProfile returns the current user's profile
func (h *Handler) GetProfile(c *gin.Context) {
	firebaseUID := auth.UserFirebaseUID(c)
	if firebaseUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := h.authService.GetUserByFirebaseUID(firebaseUID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SyncUser syncs Firebase user data to PostgreSQL.
// Called after Firebase authentication so a profile row exists in our DB.
func (h *Handler) SyncUser(c *gin.Context) {
	firebaseUID := auth.UserFirebaseUID(c)
	email := c.GetString("email")

	if firebaseUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var body struct {
		Email       string                 `json:"email,omitempty"`
		DisplayName *string                `json:"display_name,omitempty"`
		PhotoURL    *string                `json:"photo_url,omitempty"`
		Preferences map[string]interface{} `json:"preferences,omitempty"`
	}

	// Body is optional; reject it only when present and malformed.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
	}

	// Email is required - prioritize: body > token > fallback
	if body.Email != "" {
		email = body.Email
	} else if email == "" {
		email = firebaseUID + "@firebase.local"
	}

	req := &domain.CreateUserRequest{
		FirebaseUID: firebaseUID,
		Email:       email,
		DisplayName: body.DisplayName,
		PhotoURL:    body.PhotoURL,
		Preferences: body.Preferences,
	}

	user, err := h.authService.SyncUser(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sync user"})
		return
	}

	// Record login
	_ = h.authService.RecordLogin(firebaseUID)

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile updates the user's profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	firebaseUID := auth.UserFirebaseUID(c)
	if firebaseUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req struct {
		DisplayName *string                `json:"display_name,omitempty"`
		PhotoURL    *string                `json:"photo_url,omitempty"`
		Preferences map[string]interface{} `json:"preferences,omitempty"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.authService.UpdateUser(firebaseUID, &domain.UpdateUserRequest{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Preferences: req.Preferences,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetPreferences returns the user's stored preferences
func (h *Handler) GetPreferences(c *gin.Context) {
	firebaseUID := auth.UserFirebaseUID(c)
	if firebaseUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	prefs, err := h.authService.GetPreferences(firebaseUID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// UpdatePreferences merges the submitted preferences into the profile
func (h *Handler) UpdatePreferences(c *gin.Context) {
	firebaseUID := auth.UserFirebaseUID(c)
	if firebaseUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var prefs map[string]interface{}
	if err := c.ShouldBindJSON(&prefs); err != nil || len(prefs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.authService.UpdateUser(firebaseUID, &domain.UpdateUserRequest{Preferences: prefs})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": user.Preferences})
}
