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

func CreateProduksiMulai(c *gin.Context) {
	rec := models.ProduksiMulai{
		KepalaProduksi: strings.TrimSpace(c.PostForm("kepala_produksi")),
		Tanggal:        parseDate(c.PostForm("tanggal")),
		NamaDriver:     strings.TrimSpace(c.PostForm("nama_driver")),
		JamMulai:       parseClock(c.PostForm("jam_mulai")),
		Shift:          strings.TrimSpace(c.PostForm("shift")),
	}
	if err := repository.New[models.ProduksiMulai](database.DB).Create(&rec); err != nil {
		log.WithError(err).Error("failed to save produksi mulai")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal menyimpan data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Produksi mulai berhasil disimpan",
		"id":      rec.ID,
	})
}

func CreateProduksiSelesai(c *gin.Context) {
	rec := models.ProduksiSelesai{
		KepalaProduksi: strings.TrimSpace(c.PostForm("kepala_produksi")),
		Tanggal:        parseDate(c.PostForm("tanggal")),
		JamSelesai:     parseClock(c.PostForm("jam_selesai")),
		TabungKosong:   parseInt(c.PostForm("tabung_kosong")),
		Tabung12:       parseInt(c.PostForm("tabung_12")),
		Tabung50:       parseInt(c.PostForm("tabung_50")),
		Keterangan:     strings.TrimSpace(c.PostForm("keterangan")),
	}
	if err := repository.New[models.ProduksiSelesai](database.DB).Create(&rec); err != nil {
		log.WithError(err).Error("failed to save produksi selesai")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Gagal menyimpan data"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Produksi selesai berhasil disimpan",
		"id":      rec.ID,
	})
}
