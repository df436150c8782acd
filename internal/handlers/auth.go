package handlers

import (
	"net/http"
	"strings"
	"time"

	"gasops/internal/auth"
	"gasops/internal/database"
	"gasops/internal/middleware"
	"gasops/internal/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// AuthHandler serves login, logout and the admin-only registration flow.
type AuthHandler struct {
	Auth       *auth.Authenticator
	SessionTTL time.Duration
}

func NewAuthHandler(a *auth.Authenticator, ttl time.Duration) *AuthHandler {
	return &AuthHandler{Auth: a, SessionTTL: ttl}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{
		"error":    "",
		"next_url": c.Query("next"),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	nextURL := c.PostForm("next_url")

	// Sweep stale sessions while we are here anyway.
	if err := h.Auth.CleanupExpired(); err != nil {
		log.WithError(err).Warn("session cleanup failed")
	}

	user, err := h.Auth.Authenticate(username, password)
	if err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{
			"error":    "Username atau password salah",
			"next_url": nextURL,
		})
		return
	}

	session, err := h.Auth.CreateSession(user.ID, h.SessionTTL)
	if err != nil {
		render(c, http.StatusInternalServerError, "login.html", gin.H{
			"error":    "Gagal membuat sesi, coba lagi",
			"next_url": nextURL,
		})
		return
	}

	c.SetCookie(middleware.SessionCookie, session.Token,
		int(h.SessionTTL.Seconds()), "/", "", false, true)

	database.CreateAuditLog(user.ID, "user", user.ID, "login", "Login: "+user.Username)

	// Only same-origin paths may be used as a post-login target.
	redirect := "/dashboard"
	switch {
	case nextURL != "" && strings.HasPrefix(nextURL, "/") && !strings.HasPrefix(nextURL, "//"):
		redirect = nextURL
	case user.Role == models.RoleAdmin:
		redirect = "/dashboard/admin"
	}
	c.Redirect(http.StatusFound, redirect)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil && token != "" {
		if err := h.Auth.DeleteSession(token); err != nil {
			log.WithError(err).Warn("failed to delete session on logout")
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"error": ""})
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	email := strings.TrimSpace(c.PostForm("email"))
	role := models.UserRole(c.PostForm("role"))

	if role == "" {
		role = models.RoleUser
	}
	switch role {
	case models.RoleAdmin, models.RoleUser, models.RoleLapangan:
	default:
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Role tidak dikenal"})
		return
	}

	if len(username) < 3 || len(password) < 6 {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Username atau password terlalu pendek"})
		return
	}

	newUser, err := h.Auth.CreateUser(username, password, email, role)
	if err != nil {
		msg := "Gagal menyimpan user"
		if err == auth.ErrUsernameTaken {
			msg = "Username sudah digunakan"
		}
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": msg})
		return
	}

	if admin, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(admin.ID, "user", newUser.ID, "create", "Dibuat user: "+newUser.Username)
	}

	c.Redirect(http.StatusFound, "/users")
}
