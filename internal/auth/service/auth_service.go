package service

import (
	"github.com/pc-part-finder/go-partfinder-backend/internal/auth/domain"
	"github.com/pc-part-finder/go-partfinder-backend/internal/auth/repository"
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// GetUserByFirebaseUID retrieves a user by Firebase UID
func (s *AuthService) GetUserByFirebaseUID(uid string) (*domain.User, error) {
	return s.userRepo.GetByFirebaseUID(uid)
}

// SyncUser creates or updates a user profile from Firebase Auth data.
// First sync seeds the default preferences the signup flow expects.
func (s *AuthService) SyncUser(req *domain.CreateUserRequest) (*domain.User, error) {
	existingUser, err := s.userRepo.GetByFirebaseUID(req.FirebaseUID)

	if err == nil && existingUser != nil {
		// User exists, update with new data if provided.
		// Preserve existing data if not provided in request.
		if req.Email != "" {
			existingUser.Email = req.Email
		}
		if req.DisplayName != nil {
			existingUser.DisplayName = req.DisplayName
		}
		if req.PhotoURL != nil {
			existingUser.PhotoURL = req.PhotoURL
		}
		// Merge preferences if provided (don't overwrite existing ones)
		if len(req.Preferences) > 0 {
			if existingUser.Preferences == nil {
				existingUser.Preferences = domain.DefaultPreferences()
			}
			for k, v := range req.Preferences {
				existingUser.Preferences[k] = v
			}
		}

		if err := s.userRepo.Update(existingUser); err != nil {
			return nil, err
		}
		return existingUser, nil
	}

	// User doesn't exist, create new one
	user := &domain.User{
		FirebaseUID: req.FirebaseUID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Preferences: domain.DefaultPreferences(),
	}

	for k, v := range req.Preferences {
		user.Preferences[k] = v
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUser updates profile information
func (s *AuthService) UpdateUser(uid string, req *domain.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.GetByFirebaseUID(uid)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = req.DisplayName
	}
	if req.PhotoURL != nil {
		user.PhotoURL = req.PhotoURL
	}

	// Merge preferences if provided (don't overwrite existing ones)
	if len(req.Preferences) > 0 {
		if user.Preferences == nil {
			user.Preferences = domain.DefaultPreferences()
		}
		for k, v := range req.Preferences {
			user.Preferences[k] = v
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetPreferences returns the user's stored preferences, falling back to the
// defaults when the profile has none yet.
func (s *AuthService) GetPreferences(uid string) (map[string]interface{}, error) {
	user, err := s.userRepo.GetByFirebaseUID(uid)
	if err != nil {
		return nil, err
	}
	if len(user.Preferences) == 0 {
		return domain.DefaultPreferences(), nil
	}
	return user.Preferences, nil
}

// RecordLogin stamps the user's last login time
func (s *AuthService) RecordLogin(uid string) error {
	return s.userRepo.RecordLogin(uid)
}
