package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gasops/internal/database"
	"gasops/internal/middleware"
	"gasops/internal/models"
	"gasops/internal/repository"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type pembayaranJSON struct {
	ID                uint    `json:"id"`
	NamaAgen          string  `json:"nama_agen"`
	HargaPertabung    float64 `json:"harga_pertabung"`
	JenisTabung       string  `json:"jenis_tabung"`
	NamaDriver        string  `json:"nama_driver"`
	TanggalPengiriman string  `json:"tanggal_pengiriman"`
	JumlahTurun       int     `json:"jumlah_turun"`
	Status            string  `json:"status"`
	Bukti             string  `json:"bukti"`
}

func toPembayaranJSON(p models.PembayaranAgen) pembayaranJSON {
	row := pembayaranJSON{
		ID:             p.ID,
		NamaAgen:       p.NamaAgen,
		HargaPertabung: p.HargaPertabung,
		JenisTabung:    p.JenisTabung,
		NamaDriver:     p.NamaDriver,
		JumlahTurun:    p.JumlahTurun,
		Status:         p.Status,
		Bukti:          p.Bukti,
	}
	if row.Status == "" {
		row.Status = models.StatusBelumPaid
	}
	if p.TanggalPengiriman != nil {
		row.TanggalPengiriman = p.TanggalPengiriman.Format("2006-01-02")
	}
	return row
}

func (h *RecordHandler) ListPembayaranAPI(c *gin.Context) {
	rows, err := repository.New[models.PembayaranAgen](database.DB).List(nil)
	if err != nil {
		log.WithError(err).Error("failed to list pembayaran")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal memuat data"})
		return
	}
	out := make([]pembayaranJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, toPembayaranJSON(r))
	}
	c.JSON(http.StatusOK, out)
}

func (h *RecordHandler) CreatePembayaranAPI(c *gin.Context) {
	rec := models.PembayaranAgen{
		NamaAgen:          strings.TrimSpace(c.PostForm("nama_agen")),
		HargaPertabung:    parseFloat(c.PostForm("harga_pertabung")),
		JenisTabung:       strings.TrimSpace(c.PostForm("jenis_tabung")),
		NamaDriver:        strings.TrimSpace(c.PostForm("nama_driver")),
		TanggalPengiriman: parseDate(c.PostForm("tanggal_pengiriman")),
		JumlahTurun:       parseInt(c.PostForm("jumlah_turun")),
		Status:            models.StatusBelumPaid,
	}

	// Bukti is optional at creation; submitting it up front means the
	// payment is already settled.
	if file, err := c.FormFile("bukti"); err == nil {
		path, err := h.Uploads.Save(file, "pembayaran")
		if err != nil {
			log.WithError(err).Error("failed to store bukti")
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan file"})
			return
		}
		rec.Bukti = path
		rec.Status = models.StatusPaid
	}

	if err := repository.New[models.PembayaranAgen](database.DB).Create(&rec); err != nil {
		log.WithError(err).Error("failed to save pembayaran")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": rec.ID})
}

// UpdatePembayaranAPI branches on the caller-supplied role field: field
// staff ("lapangan") may only attach proof of payment, which also flips
// the status to Paid; admins may patch any provided field.
func (h *RecordHandler) UpdatePembayaranAPI(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "ID tidak valid"})
		return
	}

	var rec models.PembayaranAgen
	if err := database.DB.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Data tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal memuat data"})
		return
	}

	role := c.DefaultPostForm("role", string(models.RoleLapangan))

	switch role {
	case string(models.RoleLapangan):
		file, err := c.FormFile("bukti")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Lapangan hanya bisa upload bukti pembayaran"})
			return
		}
		path, err := h.Uploads.Save(file, "pembayaran")
		if err != nil {
			log.WithError(err).Error("failed to store bukti")
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Gagal upload bukti"})
			return
		}
		rec.Bukti = path
		rec.Status = models.StatusPaid

	case string(models.RoleAdmin):
		if v, ok := c.GetPostForm("nama_agen"); ok {
			rec.NamaAgen = strings.TrimSpace(v)
		}
		if v, ok := c.GetPostForm("harga_pertabung"); ok {
			rec.HargaPertabung = parseFloat(v)
		}
		if v, ok := c.GetPostForm("jenis_tabung"); ok {
			rec.JenisTabung = strings.TrimSpace(v)
		}
		if v, ok := c.GetPostForm("nama_driver"); ok {
			rec.NamaDriver = strings.TrimSpace(v)
		}
		if v, ok := c.GetPostForm("tanggal_pengiriman"); ok {
			rec.TanggalPengiriman = parseDate(v)
		}
		if v, ok := c.GetPostForm("jumlah_turun"); ok {
			rec.JumlahTurun = parseInt(v)
		}
		if v, ok := c.GetPostForm("status"); ok {
			rec.Status = strings.TrimSpace(v)
		}
		if file, err := c.FormFile("bukti"); err == nil {
			path, err := h.Uploads.Save(file, "pembayaran")
			if err != nil {
				log.WithError(err).Error("failed to store bukti")
				c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan file"})
				return
			}
			rec.Bukti = path
		}

	default:
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Role tidak dikenal"})
		return
	}

	if err := database.DB.Save(&rec).Error; err != nil {
		log.WithError(err).Error("failed to update pembayaran")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": rec.ID, "role": role})
}

func (h *RecordHandler) DeletePembayaranAPI(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "ID tidak valid"})
		return
	}

	var rec models.PembayaranAgen
	if err := database.DB.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Data tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal memuat data"})
		return
	}

	if rec.Bukti != "" {
		if err := h.Uploads.Remove(rec.Bukti); err != nil {
			log.WithError(err).Warn("failed to remove bukti file")
		}
	}

	if err := database.DB.Delete(&rec).Error; err != nil {
		log.WithError(err).Error("failed to delete pembayaran")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menghapus data"})
		return
	}

	if admin, ok := middleware.CurrentUser(c); ok {
		database.CreateAuditLog(admin.ID, "pembayaran", rec.ID, "delete", "Dihapus pembayaran: "+rec.NamaAgen)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Data berhasil dihapus"})
}

// Pages.

func AgenPage(c *gin.Context) {
	render(c, http.StatusOK, "agen.html", gin.H{"active_page": "pembayaran-agen"})
}

func LaporanPembayaranAgen(c *gin.Context) {
	rows, err := repository.New[models.PembayaranAgen](database.DB).List(nil)
	if err != nil {
		log.WithError(err).Error("failed to list pembayaran")
		rows = nil
	}
	render(c, http.StatusOK, "laporan_pembayaran_agen.html", gin.H{
		"active_page":     "pembayaran-agen",
		"pembayaran_list": rows,
	})
}

func ShowEditPembayaran(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "ID tidak valid")
		return
	}
	rec, err := repository.New[models.PembayaranAgen](database.DB).GetByID(uint(id))
	if err != nil {
		c.String(http.StatusNotFound, "Data tidak ditemukan")
		return
	}
	render(c, http.StatusOK, "edit_pembayaran.html", gin.H{"pembayaran": rec})
}

// UpdatePembayaranForm is the full-edit browser flow; unlike the API it
// always writes every field of the form.
func (h *RecordHandler) UpdatePembayaranForm(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "ID tidak valid")
		return
	}

	var rec models.PembayaranAgen
	if err := database.DB.First(&rec, id).Error; err != nil {
		c.String(http.StatusNotFound, "Data tidak ditemukan")
		return
	}

	rec.NamaAgen = strings.TrimSpace(c.PostForm("nama_agen"))
	rec.HargaPertabung = parseFloat(c.PostForm("harga_pertabung"))
	rec.JenisTabung = strings.TrimSpace(c.PostForm("jenis_tabung"))
	rec.NamaDriver = strings.TrimSpace(c.PostForm("nama_driver"))
	rec.TanggalPengiriman = parseDate(c.PostForm("tanggal_pengiriman"))
	rec.JumlahTurun = parseInt(c.PostForm("jumlah_turun"))
	if v := strings.TrimSpace(c.PostForm("status")); v != "" {
		rec.Status = v
	}

	if file, err := c.FormFile("bukti"); err == nil {
		path, err := h.Uploads.Save(file, "pembayaran")
		if err != nil {
			log.WithError(err).Error("failed to store bukti")
			c.String(http.StatusInternalServerError, "Gagal menyimpan file")
			return
		}
		rec.Bukti = path
		rec.Status = models.StatusPaid
	}

	if err := database.DB.Save(&rec).Error; err != nil {
		log.WithError(err).Error("failed to update pembayaran")
		c.String(http.StatusInternalServerError, "Gagal memperbarui data")
		return
	}
	c.Redirect(http.StatusSeeOther, "/laporan/pembayaran-agen")
}
