package handlers

import (
	"net/http"
	"strings"

	"gasops/internal/database"
	"gasops/internal/models"
	"gasops/internal/repository"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Movement-log creation endpoints. Each one binds its record type's known
// fields from the multipart form (extra keys are simply never read),
// saves any required attachment first, then inserts. The small JSON ack
// shape is what the mobile forms already expect.

func CreateSkidMasukDepot(c *gin.Context) {
	rec := models.SkidMasukDepot{
		NamaDriver: strings.TrimSpace(c.PostForm("nama_driver")),
		PlatMobil:  strings.TrimSpace(c.PostForm("plat_mobil")),
		Tanggal:    parseDate(c.PostForm("tanggal")),
		Rit:        parseInt(c.PostForm("rit")),
		JamMasuk:   parseClock(c.PostForm("jam_masuk")),
	}
	if err := repository.New[models.SkidMasukDepot](database.DB).Create(&rec); err != nil {
		log.WithError(err).Error("failed to save skid masuk depot")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "id": rec.ID})
}

func (h *RecordHandler) CreateSkidKeluarDepot(c *gin.Context) {
	file, err := c.FormFile("foto_spa")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "foto_spa wajib diunggah"})
		return
	}
	fotoPath, err := h.Uploads.Save(file, "skid_depot")
	if err != nil {
		log.WithError(err).Error("failed to store foto_spa")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan file"})
		return
	}

	rec := models.SkidKeluarDepot{
		NamaDriver: strings.TrimSpace(c.PostForm("nama_driver")),
		PlatMobil:  strings.TrimSpace(c.PostForm("plat_mobil")),
		Tanggal:    parseDate(c.PostForm("tanggal")),
		JamKeluar:  parseClock(c.PostForm("jam_keluar")),
		JumlahSPA:  parseInt(c.PostForm("jumlah_spa")),
		FotoSPA:    fotoPath,
	}
	if err := repository.New[models.SkidKeluarDepot](database.DB).Create(&rec); err != nil {
		log.WithError(err).Error("failed to save skid keluar depot")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "id": rec.ID})
}

func CreateSkidMasukLaut(c *gin.Context) {
	rec := models.SkidMasukLaut{
		NamaDriver:     strings.TrimSpace(c.PostForm("nama_driver")),
		PlatMobil:      strings.TrimSpace(c.PostForm("plat_mobil")),
		Tanggal:        parseDate(c.PostForm("tanggal")),
		JamMasuk:       parseClock(c.PostForm("jam_masuk")),
		PetugasLoading: strings.TrimSpace(c.PostForm("petugas_loading")),
	}
	if err := repository.New[models.SkidMasukLaut](database.DB).Create(&rec); err != nil {
		log.WithError(err).Error("failed to save skid masuk laut")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "id": rec.ID})
}

func (h *RecordHandler) CreateSkidKeluarLaut(c *gin.Context) {
	file, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "media wajib diunggah"})
		return
	}
	mediaPath, err := h.Uploads.Save(file, "skid_laut")
	if err != nil {
		log.WithError(err).Error("failed to store media")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan file"})
		return
	}

	rec := models.SkidKeluarLaut{
		NamaDriver: strings.TrimSpace(c.PostForm("nama_driver")),
		PlatMobil:  strings.TrimSpace(c.PostForm("plat_mobil")),
		Tanggal:    parseDate(c.PostForm("tanggal")),
		JamKeluar:  parseClock(c.PostForm("jam_keluar")),
		Catatan:    strings.TrimSpace(c.PostForm("catatan")),
		Media:      mediaPath,
	}
	if err := repository.New[models.SkidKeluarLaut](database.DB).Create(&rec); err != nil {
		log.WithError(err).Error("failed to save skid keluar laut")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "id": rec.ID})
}

func CreateSkidMasukLumbung(c *gin.Context) {
	rec := models.SkidMasukLumbung{
		NamaDriver:     strings.TrimSpace(c.PostForm("nama_driver")),
		PlatMobil:      strings.TrimSpace(c.PostForm("plat_mobil")),
		Tanggal:        parseDate(c.PostForm("tanggal")),
		JamMasuk:       parseClock(c.PostForm("jam_masuk")),
		PetugasLoading: strings.TrimSpace(c.PostForm("petugas_loading")),
	}
	if err := repository.New[models.SkidMasukLumbung](database.DB).Create(&rec); err != nil {
		log.WithError(err).Error("failed to save skid masuk lumbung")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "id": rec.ID})
}

func (h *RecordHandler) CreateSkidKeluarLumbung(c *gin.Context) {
	file, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "media wajib diunggah"})
		return
	}
	mediaPath, err := h.Uploads.Save(file, "skid_lumbung")
	if err != nil {
		log.WithError(err).Error("failed to store media")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan file"})
		return
	}

	rec := models.SkidKeluarLumbung{
		NamaDriver: strings.TrimSpace(c.PostForm("nama_driver")),
		PlatMobil:  strings.TrimSpace(c.PostForm("plat_mobil")),
		Tanggal:    parseDate(c.PostForm("tanggal")),
		JamKeluar:  parseClock(c.PostForm("jam_keluar")),
		Catatan:    strings.TrimSpace(c.PostForm("catatan")),
		Media:      mediaPath,
	}
	if err := repository.New[models.SkidKeluarLumbung](database.DB).Create(&rec); err != nil {
		log.WithError(err).Error("failed to save skid keluar lumbung")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "id": rec.ID})
}
