package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"gasops/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers unknown username, inactive account and
	// wrong password alike; callers must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
)

const DefaultSessionTTL = 24 * time.Hour

// Authenticator owns credentials and sessions.
type Authenticator struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Authenticator {
	return &Authenticator{db: db}
}

// Authenticate verifies username and password against the stored hash and
// stamps last_login on success.
func (a *Authenticator) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := a.db.Where("username = ? AND is_active = ?", username, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := a.db.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// CreateSession issues a fresh session for the user. Any previously
// issued sessions are revoked first: one active session per user.
func (a *Authenticator) CreateSession(userID uint, ttl time.Duration) (*models.Session, error) {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	if err := a.db.Where("user_id = ?", userID).Delete(&models.Session{}).Error; err != nil {
		return nil, err
	}

	session := models.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := a.db.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

// GetSession resolves a token to a live session. Expired rows are treated
// exactly like unknown tokens, even before CleanupExpired has swept them.
func (a *Authenticator) GetSession(token string) (*models.Session, error) {
	var session models.Session
	err := a.db.Where("token = ? AND expires_at > ?", token, time.Now()).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// DeleteSession revokes a token. Removing an absent token is not an error.
func (a *Authenticator) DeleteSession(token string) error {
	return a.db.Where("token = ?", token).Delete(&models.Session{}).Error
}

// CleanupExpired sweeps sessions past their expiry. Run opportunistically,
// e.g. before each login attempt; correctness never depends on it.
func (a *Authenticator) CleanupExpired() error {
	return a.db.Where("expires_at < ?", time.Now()).Delete(&models.Session{}).Error
}

// GetUserByID loads a user regardless of active flag.
func (a *Authenticator) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := a.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser registers a new account with a hashed password.
func (a *Authenticator) CreateUser(username, password, email string, role models.UserRole) (*models.User, error) {
	var count int64
	if err := a.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := a.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeactivateUser flips the active flag and revokes every session the
// account holds, so an open browser tab dies with the account.
func (a *Authenticator) DeactivateUser(id uint) error {
	res := a.db.Model(&models.User{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return a.db.Where("user_id = ?", id).Delete(&models.Session{}).Error
}

// DeleteUser removes the account and its sessions.
func (a *Authenticator) DeleteUser(id uint) error {
	if err := a.db.Where("user_id = ?", id).Delete(&models.Session{}).Error; err != nil {
		return err
	}
	res := a.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
