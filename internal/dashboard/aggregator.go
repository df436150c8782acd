package dashboard

import (
	"sort"
	"strings"
	"time"

	"gasops/internal/models"
	"gasops/internal/repository"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BuildLocationReports merges every operational table into the two site
// dashboards, newest first. It never fails: a table that cannot be read
// is logged and contributes nothing, so one broken source cannot blank
// the whole dashboard.
func BuildLocationReports(db *gorm.DB) (merak, semarang []Entry) {
	// Fixed-site sources. Depot and Laut belong to Merak, Lumbung to
	// Semarang.
	if rows, err := repository.New[models.SkidMasukDepot](db).List(nil); err != nil {
		logSourceError("skid_masuk_depot", err)
	} else {
		for _, r := range rows {
			merak = append(merak, fromSkidMasukDepot(r))
		}
	}
	if rows, err := repository.New[models.SkidKeluarDepot](db).List(nil); err != nil {
		logSourceError("skid_keluar_depot", err)
	} else {
		for _, r := range rows {
			merak = append(merak, fromSkidKeluarDepot(r))
		}
	}
	if rows, err := repository.New[models.SkidMasukLaut](db).List(nil); err != nil {
		logSourceError("skid_masuk_laut", err)
	} else {
		for _, r := range rows {
			merak = append(merak, fromSkidMasukLaut(r))
		}
	}
	if rows, err := repository.New[models.SkidKeluarLaut](db).List(nil); err != nil {
		logSourceError("skid_keluar_laut", err)
	} else {
		for _, r := range rows {
			merak = append(merak, fromSkidKeluarLaut(r))
		}
	}
	if rows, err := repository.New[models.SkidMasukLumbung](db).List(nil); err != nil {
		logSourceError("skid_masuk_lumbung", err)
	} else {
		for _, r := range rows {
			semarang = append(semarang, fromSkidMasukLumbung(r))
		}
	}
	if rows, err := repository.New[models.SkidKeluarLumbung](db).List(nil); err != nil {
		logSourceError("skid_keluar_lumbung", err)
	} else {
		for _, r := range rows {
			semarang = append(semarang, fromSkidKeluarLumbung(r))
		}
	}

	// Shared sources: loading and produksi carry no site column, so they
	// default to Merak.
	if rows, err := repository.New[models.SebelumLoading](db).List(nil); err != nil {
		logSourceError("sebelum_loading", err)
	} else {
		for _, r := range rows {
			merak = append(merak, fromSebelumLoading(r, models.LokasiMerak))
		}
	}
	if rows, err := repository.New[models.SesudahLoading](db).List(nil); err != nil {
		logSourceError("sesudah_loading", err)
	} else {
		for _, r := range rows {
			merak = append(merak, fromSesudahLoading(r, models.LokasiMerak))
		}
	}
	if rows, err := repository.New[models.ProduksiMulai](db).List(nil); err != nil {
		logSourceError("produksi_mulai", err)
	} else {
		for _, r := range rows {
			merak = append(merak, fromProduksiMulai(r, models.LokasiMerak))
		}
	}
	if rows, err := repository.New[models.ProduksiSelesai](db).List(nil); err != nil {
		logSourceError("produksi_selesai", err)
	} else {
		for _, r := range rows {
			merak = append(merak, fromProduksiSelesai(r, models.LokasiMerak))
		}
	}

	// Distribution sources classify strictly by their persisted site.
	if rows, err := repository.New[models.LaporanKirim](db).List(nil); err != nil {
		logSourceError("laporan_kirim", err)
	} else {
		for _, r := range rows {
			switch classifyLokasi(r.Lokasi) {
			case models.LokasiMerak:
				merak = append(merak, fromLaporanKirim(r, models.LokasiMerak))
			case models.LokasiSemarang:
				semarang = append(semarang, fromLaporanKirim(r, models.LokasiSemarang))
			default:
				log.WithFields(log.Fields{"source": "laporan_kirim", "id": r.ID, "lokasi": r.Lokasi}).
					Warn("record with unknown lokasi dropped from dashboard")
			}
		}
	}
	if rows, err := repository.New[models.LaporanBongkar](db).List(nil); err != nil {
		logSourceError("laporan_bongkar", err)
	} else {
		for _, r := range rows {
			switch classifyLokasi(r.Lokasi) {
			case models.LokasiMerak:
				merak = append(merak, fromLaporanBongkar(r, models.LokasiMerak))
			case models.LokasiSemarang:
				semarang = append(semarang, fromLaporanBongkar(r, models.LokasiSemarang))
			default:
				log.WithFields(log.Fields{"source": "laporan_bongkar", "id": r.ID, "lokasi": r.Lokasi}).
					Warn("record with unknown lokasi dropped from dashboard")
			}
		}
	}

	sortEntries(merak)
	sortEntries(semarang)
	return merak, semarang
}

// classifyLokasi matches the persisted site name case-insensitively and
// returns "" for anything that is neither site.
func classifyLokasi(lokasi string) string {
	switch strings.ToLower(strings.TrimSpace(lokasi)) {
	case models.LokasiMerak:
		return models.LokasiMerak
	case models.LokasiSemarang:
		return models.LokasiSemarang
	default:
		return ""
	}
}

// sortEntries orders newest first; rows without any usable timestamp go
// last.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		ti, tj := entries[i].sortTime(), entries[j].sortTime()
		return ti.After(tj)
	})
}

func logSourceError(source string, err error) {
	log.WithError(err).WithField("source", source).Warn("dashboard source unreadable, skipped")
}

// LaporanRow is the compact shape of the merged /api/laporan feed.
type LaporanRow struct {
	ID         uint   `json:"id"`
	Jenis      string `json:"jenis"`
	Lokasi     string `json:"lokasi"`
	NamaDriver string `json:"nama_driver"`
	PlatMobil  string `json:"plat_mobil"`
	Tujuan     string `json:"tujuan"`
	Jumlah     int    `json:"jumlah"`
	CreatedAt  string `json:"created_at"`
}

// BuildAllLaporan flattens both site lists into one feed, newest first.
// Jumlah is the record kind's primary quantity.
func BuildAllLaporan(db *gorm.DB) []LaporanRow {
	merak, semarang := BuildLocationReports(db)
	all := make([]Entry, 0, len(merak)+len(semarang))
	all = append(all, merak...)
	all = append(all, semarang...)
	sortEntries(all)

	rows := make([]LaporanRow, 0, len(all))
	for _, e := range all {
		rows = append(rows, LaporanRow{
			ID:         e.ID,
			Jenis:      e.Jenis,
			Lokasi:     e.Lokasi,
			NamaDriver: e.NamaDriver,
			PlatMobil:  e.PlatMobil,
			Tujuan:     pickTujuan(e),
			Jumlah:     pickJumlah(e),
			CreatedAt:  formatCreatedAt(e.CreatedAt),
		})
	}
	return rows
}

func pickTujuan(e Entry) string {
	if e.Tujuan != "-" {
		return e.Tujuan
	}
	return e.NamaPangkalan
}

func pickJumlah(e Entry) int {
	switch e.Jenis {
	case "Laporan Kirim":
		return e.JumlahDibawa
	case "Laporan Bongkar":
		return e.JumlahTurun
	case "Skid Keluar Depot":
		return e.JumlahSPA
	case "Sebelum Loading":
		return e.NettoSPA
	case "Produksi Selesai":
		return e.TabungKosong + e.Tabung12 + e.Tabung50
	default:
		return 0
	}
}

func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
