package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gasops/internal/auth"
	"gasops/internal/database"
	"gasops/internal/middleware"
	"gasops/internal/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UserHandler is the admin user-management surface.
type UserHandler struct {
	Auth *auth.Authenticator
}

func NewUserHandler(a *auth.Authenticator) *UserHandler {
	return &UserHandler{Auth: a}
}

func usersPage(c *gin.Context, activePage string) {
	var users []models.User
	if err := database.DB.Order("id").Find(&users).Error; err != nil {
		log.WithError(err).Error("failed to list users")
	}
	render(c, http.StatusOK, "users.html", gin.H{
		"active_page": activePage,
		"users":       users,
	})
}

func UsersPage(c *gin.Context) {
	usersPage(c, "")
}

func DataUser(c *gin.Context) {
	usersPage(c, "data-user")
}

func (h *UserHandler) ShowEditUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "ID tidak valid")
		return
	}

	target, err := h.Auth.GetUserByID(uint(id))
	if err != nil {
		c.String(http.StatusNotFound, "User tidak ditemukan")
		return
	}
	render(c, http.StatusOK, "edit_user.html", gin.H{"target": target})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "ID tidak valid")
		return
	}

	var target models.User
	if err := database.DB.First(&target, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "User tidak ditemukan")
			return
		}
		c.String(http.StatusInternalServerError, "Gagal memuat user")
		return
	}

	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	role := models.UserRole(c.PostForm("role"))

	if username == "" {
		render(c, http.StatusBadRequest, "edit_user.html", gin.H{
			"target": target,
			"error":  "Username wajib diisi",
		})
		return
	}
	switch role {
	case models.RoleAdmin, models.RoleUser, models.RoleLapangan:
	default:
		render(c, http.StatusBadRequest, "edit_user.html", gin.H{
			"target": target,
			"error":  "Role tidak dikenal",
		})
		return
	}

	target.Username = username
	target.Email = email
	target.Role = role

	if err := database.DB.Save(&target).Error; err != nil {
		log.WithError(err).Error("failed to update user")
		render(c, http.StatusInternalServerError, "edit_user.html", gin.H{
			"target": target,
			"error":  "Gagal menyimpan user",
		})
		return
	}

	if admin, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(admin.ID, "user", target.ID, "update", "Diubah user: "+target.Username)
	}
	c.Redirect(http.StatusSeeOther, "/laporan/data-user")
}

func (h *UserHandler) ShowDeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "ID tidak valid")
		return
	}

	target, err := h.Auth.GetUserByID(uint(id))
	if err != nil {
		c.String(http.StatusNotFound, "User tidak ditemukan")
		return
	}
	render(c, http.StatusOK, "delete_user_confirmation.html", gin.H{"target": target})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "ID tidak valid")
		return
	}

	if err := h.Auth.DeleteUser(uint(id)); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			c.String(http.StatusNotFound, "User tidak ditemukan")
			return
		}
		log.WithError(err).Error("failed to delete user")
		c.String(http.StatusInternalServerError, "Gagal menghapus user")
		return
	}

	if admin, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(admin.ID, "user", uint(id), "delete", "Dihapus user")
	}
	c.Redirect(http.StatusSeeOther, "/laporan/data-user")
}
