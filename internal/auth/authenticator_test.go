package auth

import (
	"fmt"
	"testing"
	"time"

	"gasops/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Session{}))
	return db
}

func newTestUser(t *testing.T, a *Authenticator, username string, active bool) *models.User {
	t.Helper()
	user, err := a.CreateUser(username, "rahasia123", "", models.RoleUser)
	require.NoError(t, err)
	if !active {
		require.NoError(t, a.DeactivateUser(user.ID))
	}
	return user
}

func TestAuthenticate(t *testing.T) {
	a := New(newTestDB(t))
	newTestUser(t, a, "budi", true)

	user, err := a.Authenticate("budi", "rahasia123")
	require.NoError(t, err)
	assert.Equal(t, "budi", user.Username)
	require.NotNil(t, user.LastLogin)
	assert.WithinDuration(t, time.Now(), *user.LastLogin, time.Minute)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	a := New(newTestDB(t))
	newTestUser(t, a, "budi", true)

	_, err := a.Authenticate("budi", "salah")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	a := New(newTestDB(t))

	_, err := a.Authenticate("siapa", "rahasia123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	a := New(newTestDB(t))
	newTestUser(t, a, "budi", false)

	// Same error as a wrong password: the caller cannot probe which
	// accounts exist.
	_, err := a.Authenticate("budi", "rahasia123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateSessionRevokesPrevious(t *testing.T) {
	db := newTestDB(t)
	a := New(db)
	user := newTestUser(t, a, "budi", true)

	first, err := a.CreateSession(user.ID, time.Hour)
	require.NoError(t, err)
	second, err := a.CreateSession(user.ID, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	_, err = a.GetSession(first.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	got, err := a.GetSession(second.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)

	var count int64
	require.NoError(t, db.Model(&models.Session{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetSessionExpired(t *testing.T) {
	db := newTestDB(t)
	a := New(db)
	user := newTestUser(t, a, "budi", true)

	session, err := a.CreateSession(user.ID, time.Hour)
	require.NoError(t, err)

	// Backdate the expiry; the row still exists but must not resolve.
	require.NoError(t, db.Model(&models.Session{}).
		Where("token = ?", session.Token).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	_, err = a.GetSession(session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCleanupExpired(t *testing.T) {
	db := newTestDB(t)
	a := New(db)
	stale := newTestUser(t, a, "lama", true)
	fresh := newTestUser(t, a, "baru", true)

	staleSession, err := a.CreateSession(stale.ID, time.Hour)
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Session{}).
		Where("token = ?", staleSession.Token).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	freshSession, err := a.CreateSession(fresh.ID, time.Hour)
	require.NoError(t, err)

	require.NoError(t, a.CleanupExpired())

	var count int64
	require.NoError(t, db.Model(&models.Session{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, err = a.GetSession(freshSession.Token)
	assert.NoError(t, err)
}

func TestDeleteSessionIdempotent(t *testing.T) {
	a := New(newTestDB(t))
	user := newTestUser(t, a, "budi", true)

	session, err := a.CreateSession(user.ID, time.Hour)
	require.NoError(t, err)

	assert.NoError(t, a.DeleteSession(session.Token))
	assert.NoError(t, a.DeleteSession(session.Token))
	assert.NoError(t, a.DeleteSession("tidak-pernah-ada"))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	a := New(newTestDB(t))
	newTestUser(t, a, "budi", true)

	_, err := a.CreateUser("budi", "lainnya", "", models.RoleLapangan)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestDeactivateUserRevokesSessions(t *testing.T) {
	a := New(newTestDB(t))
	user := newTestUser(t, a, "budi", true)

	session, err := a.CreateSession(user.ID, time.Hour)
	require.NoError(t, err)

	require.NoError(t, a.DeactivateUser(user.ID))

	_, err = a.GetSession(session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	got, err := a.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestDeleteUser(t *testing.T) {
	a := New(newTestDB(t))
	user := newTestUser(t, a, "budi", true)

	session, err := a.CreateSession(user.ID, time.Hour)
	require.NoError(t, err)

	require.NoError(t, a.DeleteUser(user.ID))

	_, err = a.GetUserByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = a.GetSession(session.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, a.DeleteUser(user.ID), ErrUserNotFound)
}

func TestGenerateTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := generateToken()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(token), 40)
		assert.False(t, seen[token], "duplicate token")
		seen[token] = true
	}
}
