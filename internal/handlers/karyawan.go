package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"gasops/internal/database"
	"gasops/internal/middleware"
	"gasops/internal/models"
	"gasops/internal/repository"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func karyawanPage(c *gin.Context, activePage string) {
	rows, err := repository.New[models.Karyawan](database.DB).List(nil)
	if err != nil {
		log.WithError(err).Error("failed to list karyawan")
		rows = nil
	}
	render(c, http.StatusOK, "karyawan.html", gin.H{
		"active_page": activePage,
		"karyawan":    rows,
	})
}

func ListKaryawan(c *gin.Context) {
	karyawanPage(c, "")
}

func DataKaryawan(c *gin.Context) {
	karyawanPage(c, "data-karyawan")
}

// SimpanKaryawan handles both create and update; the form carries an
// edit_id when it was opened on an existing row.
func SimpanKaryawan(c *gin.Context) {
	rec := models.Karyawan{
		NIK:        strings.TrimSpace(c.PostForm("nik")),
		Nama:       strings.TrimSpace(c.PostForm("nama")),
		Jabatan:    strings.TrimSpace(c.PostForm("jabatan")),
		Kontak:     strings.TrimSpace(c.PostForm("kontak")),
		Keterangan: strings.TrimSpace(c.PostForm("keterangan")),
	}

	editID := strings.TrimSpace(c.PostForm("edit_id"))
	if editID != "" {
		id, err := strconv.Atoi(editID)
		if err != nil || id <= 0 {
			c.String(http.StatusBadRequest, "ID tidak valid")
			return
		}
		rec.ID = uint(id)
		if err := database.DB.Save(&rec).Error; err != nil {
			log.WithError(err).Error("failed to update karyawan")
			c.String(http.StatusInternalServerError, "Gagal memperbarui data")
			return
		}
		if user, ok := middleware.CurrentUser(c); ok {
			database.CreateAuditLog(user.ID, "karyawan", rec.ID, "update", "Diubah karyawan: "+rec.Nama)
		}
	} else {
		if err := repository.New[models.Karyawan](database.DB).Create(&rec); err != nil {
			log.WithError(err).Error("failed to create karyawan")
			c.String(http.StatusInternalServerError, "Gagal menyimpan data")
			return
		}
		if user, ok := middleware.CurrentUser(c); ok {
			database.CreateAuditLog(user.ID, "karyawan", rec.ID, "create", "Dibuat karyawan: "+rec.Nama)
		}
	}

	c.Redirect(http.StatusSeeOther, "/karyawan")
}

func HapusKaryawan(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "ID tidak valid")
		return
	}

	if err := database.DB.Delete(&models.Karyawan{}, id).Error; err != nil {
		log.WithError(err).Error("failed to delete karyawan")
		c.String(http.StatusInternalServerError, "Gagal menghapus data")
		return
	}
	if user, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(user.ID, "karyawan", uint(id), "delete", "Dihapus karyawan")
	}
	c.Redirect(http.StatusSeeOther, "/karyawan")
}
