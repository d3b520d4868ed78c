package domain

import (
	"errors"
	"time"
)

// ErrUserNotFound is returned when no profile row exists for a Firebase UID.
var ErrUserNotFound = errors.New("user not found")

// DefaultPreferences are assigned on first sync, matching the signup flow.
func DefaultPreferences() map[string]interface{} {
	return map[string]interface{}{
		"notifications": true,
		"darkMode":      false,
	}
}

// User represents a user profile in the application.
// Firebase UID is the primary identifier; identity itself lives with Firebase.
type User struct {
	FirebaseUID string                 `json:"firebase_uid" db:"firebase_uid"`
	Email       string                 `json:"email" db:"email"`
	DisplayName *string                `json:"display_name,omitempty" db:"display_name"`
	PhotoURL    *string                `json:"photo_url,omitempty" db:"photo_url"`
	Preferences map[string]interface{} `json:"preferences,omitempty" db:"preferences"`
	CreatedAt   time.Time              `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at" db:"updated_at"`
	LastLoginAt *time.Time             `json:"last_login_at,omitempty" db:"last_login_at"`
}

// CreateUserRequest represents data needed to sync a new user profile.
type CreateUserRequest struct {
	FirebaseUID string
	Email       string
	DisplayName *string
	PhotoURL    *string
	Preferences map[string]interface{}
}

// UpdateUserRequest represents data for updating a profile.
type UpdateUserRequest struct {
	DisplayName *string
	PhotoURL    *string
	Preferences map[string]interface{}
}
