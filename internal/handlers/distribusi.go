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

// Distribution reports exist once per site; the site is taken from the
// route the form posts to, never from the form body.

func (h *RecordHandler) CreateLaporanKirim(lokasi string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("verifikasi_barang")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "verifikasi_barang wajib diunggah"})
			return
		}
		mediaPath, err := h.Uploads.Save(file, "distribusi")
		if err != nil {
			log.WithError(err).Error("failed to store verifikasi_barang")
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan file"})
			return
		}

		rec := models.LaporanKirim{
			Tanggal:          parseDate(c.PostForm("tanggal")),
			NamaDriver:       strings.TrimSpace(c.PostForm("nama_driver")),
			PlatMobil:        strings.TrimSpace(c.PostForm("plat_mobil")),
			JamBerangkat:     parseClock(c.PostForm("jam_berangkat")),
			Kapasitas:        parseInt(c.PostForm("kapasitas")),
			JenisTabung:      strings.TrimSpace(c.PostForm("jenis_tabung")),
			JumlahDibawa:     parseInt(c.PostForm("jumlah_dibawa")),
			JumlahTurun:      parseInt(c.PostForm("jumlah_turun")),
			Tujuan:           strings.TrimSpace(c.PostForm("tujuan")),
			Alamat:           strings.TrimSpace(c.PostForm("alamat")),
			KondisiTabung:    strings.TrimSpace(c.PostForm("kondisi_tabung")),
			Keterangan:       strings.TrimSpace(c.PostForm("keterangan")),
			VerifikasiBarang: mediaPath,
		}
		if err := repository.CreateKirim(database.DB, &rec, lokasi); err != nil {
			log.WithError(err).Error("failed to save laporan kirim")
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "id": rec.ID})
	}
}

func (h *RecordHandler) CreateLaporanBongkar(lokasi string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("media")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "media wajib diunggah"})
			return
		}
		mediaPath, err := h.Uploads.Save(file, "distribusi")
		if err != nil {
			log.WithError(err).Error("failed to store media")
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan file"})
			return
		}

		rec := models.LaporanBongkar{
			Tanggal:         parseDate(c.PostForm("tanggal")),
			NamaDriver:      strings.TrimSpace(c.PostForm("nama_driver")),
			JamBongkar:      parseClock(c.PostForm("jam_bongkar")),
			JenisTabung:     strings.TrimSpace(c.PostForm("jenis_tabung")),
			JumlahTerbawa:   parseInt(c.PostForm("jumlah_terbawa")),
			JumlahTurun:     parseInt(c.PostForm("jumlah_turun")),
			SisaDibawa:      parseInt(c.PostForm("sisa_dibawa")),
			JumlahKosong:    parseInt(c.PostForm("jumlah_kosong")),
			KondisiTabung:   strings.TrimSpace(c.PostForm("kondisi_tabung")),
			NamaPangkalan:   strings.TrimSpace(c.PostForm("nama_pangkalan")),
			AlamatPangkalan: strings.TrimSpace(c.PostForm("alamat_pangkalan")),
			Catatan:         strings.TrimSpace(c.PostForm("catatan")),
			Media:           mediaPath,
		}
		if err := repository.CreateBongkar(database.DB, &rec, lokasi); err != nil {
			log.WithError(err).Error("failed to save laporan bongkar")
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gagal menyimpan data"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "id": rec.ID})
	}
}
