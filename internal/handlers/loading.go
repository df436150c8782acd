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

// Loading reports require both side videos. These endpoints are posted
// from the loading form page and redirect back there.

func (h *RecordHandler) CreateSebelumLoading(c *gin.Context) {
	videoKiri, err := c.FormFile("video_kiri")
	if err != nil {
		c.String(http.StatusBadRequest, "video_kiri wajib diunggah")
		return
	}
	videoKanan, err := c.FormFile("video_kanan")
	if err != nil {
		c.String(http.StatusBadRequest, "video_kanan wajib diunggah")
		return
	}

	kiriPath, err := h.Uploads.Save(videoKiri, "loading")
	if err != nil {
		log.WithError(err).Error("failed to store video_kiri")
		c.String(http.StatusInternalServerError, "Gagal menyimpan file")
		return
	}
	kananPath, err := h.Uploads.Save(videoKanan, "loading")
	if err != nil {
		log.WithError(err).Error("failed to store video_kanan")
		c.String(http.StatusInternalServerError, "Gagal menyimpan file")
		return
	}

	rec := models.SebelumLoading{
		PenanggungJawab: strings.TrimSpace(c.PostForm("penanggung_jawab")),
		Tanggal:         parseDate(c.PostForm("tanggal")),
		NamaDriver:      strings.TrimSpace(c.PostForm("nama_driver")),
		JamMulai:        parseClock(c.PostForm("jam_mulai")),
		NettoSPA:        parseInt(c.PostForm("netto_spa")),
		RotogenKanan:    parseInt(c.PostForm("rotogen_kanan")),
		RotogenKiri:     parseInt(c.PostForm("rotogen_kiri")),
		VideoKiri:       kiriPath,
		VideoKanan:      kananPath,
	}
	if err := repository.New[models.SebelumLoading](database.DB).Create(&rec); err != nil {
		log.WithError(err).Error("failed to save sebelum loading")
		c.String(http.StatusInternalServerError, "Gagal menyimpan data")
		return
	}
	c.Redirect(http.StatusSeeOther, "/laporan-loading")
}

func (h *RecordHandler) CreateSesudahLoading(c *gin.Context) {
	videoKiri, err := c.FormFile("video_kiri")
	if err != nil {
		c.String(http.StatusBadRequest, "video_kiri wajib diunggah")
		return
	}
	videoKanan, err := c.FormFile("video_kanan")
	if err != nil {
		c.String(http.StatusBadRequest, "video_kanan wajib diunggah")
		return
	}

	kiriPath, err := h.Uploads.Save(videoKiri, "loading")
	if err != nil {
		log.WithError(err).Error("failed to store video_kiri")
		c.String(http.StatusInternalServerError, "Gagal menyimpan file")
		return
	}
	kananPath, err := h.Uploads.Save(videoKanan, "loading")
	if err != nil {
		log.WithError(err).Error("failed to store video_kanan")
		c.String(http.StatusInternalServerError, "Gagal menyimpan file")
		return
	}

	rec := models.SesudahLoading{
		PenanggungJawab: strings.TrimSpace(c.PostForm("penanggung_jawab")),
		Tanggal:         parseDate(c.PostForm("tanggal")),
		JamSelesai:      parseClock(c.PostForm("jam_selesai")),
		VideoKiri:       kiriPath,
		VideoKanan:      kananPath,
	}
	if err := repository.New[models.SesudahLoading](database.DB).Create(&rec); err != nil {
		log.WithError(err).Error("failed to save sesudah loading")
		c.String(http.StatusInternalServerError, "Gagal menyimpan data")
		return
	}
	c.Redirect(http.StatusSeeOther, "/laporan-loading")
}
