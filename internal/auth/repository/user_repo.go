package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/pc-part-finder/go-partfinder-backend/internal/auth/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByFirebaseUID retrieves a user by their Firebase UID
func (r *UserRepository) GetByFirebaseUID(uid string) (*domain.User, error) {
	query := `
		SELECT firebase_uid, email, display_name, photo_url, preferences,
		       created_at, updated_at, last_login_at
		FROM users
		WHERE firebase_uid = $1
	`

	var user domain.User
	var preferencesJSON []byte
	var displayName, photoURL sql.NullString
	var lastLoginAt sql.NullTime

	err := r.db.QueryRow(query, uid).Scan(
		&user.FirebaseUID,
		&user.Email,
		&displayName,
		&photoURL,
		&preferencesJSON,
		&user.CreatedAt,
		&user.UpdatedAt,
		&lastLoginAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	// Handle nullable fields
	if displayName.Valid {
		user.DisplayName = &displayName.String
	}
	if photoURL.Valid {
		user.PhotoURL = &photoURL.String
	}
	if lastLoginAt.Valid {
		user.LastLoginAt = &lastLoginAt.Time
	}

	// Parse JSONB preferences
	if len(preferencesJSON) > 0 {
		if err := json.Unmarshal(preferencesJSON, &user.Preferences); err != nil {
			user.Preferences = domain.DefaultPreferences()
		}
	} else {
		user.Preferences = domain.DefaultPreferences()
	}

	return &user, nil
}

// Create creates a new user profile row
func (r *UserRepository) Create(user *domain.User) error {
	preferencesJSON, err := json.Marshal(user.Preferences)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (firebase_uid, email, display_name, photo_url, preferences)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	return r.db.QueryRow(
		query,
		user.FirebaseUID,
		user.Email,
		user.DisplayName,
		user.PhotoURL,
		preferencesJSON,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
}

// Update persists profile changes
func (r *UserRepository) Update(user *domain.User) error {
	preferencesJSON, err := json.Marshal(user.Preferences)
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET email = $2, display_name = $3, photo_url = $4, preferences = $5, updated_at = now()
		WHERE firebase_uid = $1
		RETURNING updated_at
	`

	err = r.db.QueryRow(
		query,
		user.FirebaseUID,
		user.Email,
		user.DisplayName,
		user.PhotoURL,
		preferencesJSON,
	).Scan(&user.UpdatedAt)

	if err == sql.ErrNoRows {
		return domain.ErrUserNotFound
	}
	return err
}

// RecordLogin stamps last_login_at for the user
func (r *UserRepository) RecordLogin(uid string) error {
	_, err := r.db.Exec(`UPDATE users SET last_login_at = now() WHERE firebase_uid = $1`, uid)
	return err
}
