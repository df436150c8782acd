package dashboard

import (
	"fmt"
	"testing"
	"time"

	"gasops/internal/database"
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
	require.NoError(t, database.Migrate(db))
	return db
}

func datePtr(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func jenisList(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Jenis)
	}
	return out
}

func TestBuildLocationReportsFixedSites(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.SkidMasukDepot{NamaDriver: "Budi", Rit: 1}).Error)
	require.NoError(t, db.Create(&models.SkidKeluarLaut{NamaDriver: "Sari"}).Error)
	require.NoError(t, db.Create(&models.SkidMasukLumbung{NamaDriver: "Joko"}).Error)
	require.NoError(t, db.Create(&models.SkidKeluarLumbung{NamaDriver: "Rina"}).Error)

	merak, semarang := BuildLocationReports(db)

	assert.ElementsMatch(t, []string{"Skid Masuk Depot", "Skid Keluar Laut"}, jenisList(merak))
	assert.ElementsMatch(t, []string{"Skid Masuk Lumbung", "Skid Keluar Lumbung"}, jenisList(semarang))

	for _, e := range merak {
		assert.Equal(t, models.LokasiMerak, e.Lokasi)
	}
	for _, e := range semarang {
		assert.Equal(t, models.LokasiSemarang, e.Lokasi)
	}
}

func TestBuildLocationReportsSharedSourcesDefaultMerak(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.SebelumLoading{PenanggungJawab: "Budi", NamaDriver: "Sari", NettoSPA: 100}).Error)
	require.NoError(t, db.Create(&models.ProduksiSelesai{KepalaProduksi: "Joko", Tabung12: 40, Tabung50: 5}).Error)

	merak, semarang := BuildLocationReports(db)

	assert.ElementsMatch(t, []string{"Sebelum Loading", "Produksi Selesai"}, jenisList(merak))
	assert.Empty(t, semarang)
}

func TestBuildLocationReportsDistributionByLokasi(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.LaporanKirim{Lokasi: "merak", NamaDriver: "Budi", Tujuan: "Cilegon"}).Error)
	require.NoError(t, db.Create(&models.LaporanKirim{Lokasi: "  Semarang ", NamaDriver: "Sari", Tujuan: "Kendal"}).Error)
	require.NoError(t, db.Create(&models.LaporanBongkar{Lokasi: "SEMARANG", NamaDriver: "Joko", NamaPangkalan: "Pangkalan Kendal"}).Error)
	// Neither site: must not surface on either dashboard.
	require.NoError(t, db.Create(&models.LaporanKirim{Lokasi: "bandung", NamaDriver: "Rina", Tujuan: "Lembang"}).Error)

	merak, semarang := BuildLocationReports(db)

	require.Len(t, merak, 1)
	assert.Equal(t, "Budi", merak[0].NamaDriver)

	assert.ElementsMatch(t, []string{"Laporan Kirim", "Laporan Bongkar"}, jenisList(semarang))
	for _, e := range semarang {
		assert.Equal(t, models.LokasiSemarang, e.Lokasi)
	}
}

func TestBuildLocationReportsSortNewestFirst(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.SkidMasukDepot{NamaDriver: "Lama", Tanggal: datePtr("2026-01-05")}).Error)
	require.NoError(t, db.Create(&models.SkidMasukDepot{NamaDriver: "Baru", Tanggal: datePtr("2026-03-01")}).Error)
	require.NoError(t, db.Create(&models.SkidMasukDepot{NamaDriver: "Tengah", Tanggal: datePtr("2026-02-10")}).Error)

	merak, _ := BuildLocationReports(db)
	require.Len(t, merak, 3)
	assert.Equal(t, "Baru", merak[0].NamaDriver)
	assert.Equal(t, "Tengah", merak[1].NamaDriver)
	assert.Equal(t, "Lama", merak[2].NamaDriver)
}

func TestBuildLocationReportsTanggalBeatsCreatedAt(t *testing.T) {
	db := newTestDB(t)

	// Inserted later but dated earlier: the explicit date wins the sort.
	require.NoError(t, db.Create(&models.SkidMasukDepot{NamaDriver: "Tanpa Tanggal"}).Error)
	require.NoError(t, db.Create(&models.SkidMasukDepot{NamaDriver: "Mundur", Tanggal: datePtr("2020-01-01")}).Error)

	merak, _ := BuildLocationReports(db)
	require.Len(t, merak, 2)
	assert.Equal(t, "Tanpa Tanggal", merak[0].NamaDriver)
	assert.Equal(t, "Mundur", merak[1].NamaDriver)
}

func TestBuildLocationReportsBrokenSourceIsolated(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Only one source table exists; every other read fails, and the one
	// good table must still come through.
	require.NoError(t, db.AutoMigrate(&models.SkidMasukDepot{}))
	require.NoError(t, db.Create(&models.SkidMasukDepot{NamaDriver: "Budi"}).Error)

	merak, semarang := BuildLocationReports(db)
	require.Len(t, merak, 1)
	assert.Equal(t, "Budi", merak[0].NamaDriver)
	assert.Empty(t, semarang)
}

func TestEntryPlaceholders(t *testing.T) {
	e := fromSkidMasukDepot(models.SkidMasukDepot{ID: 1, NamaDriver: "Budi"})

	assert.Equal(t, "-", e.PlatMobil)
	assert.Equal(t, "-", e.Tujuan)
	assert.Equal(t, "-", e.Keterangan)

	withPlat := fromSkidMasukDepot(models.SkidMasukDepot{ID: 2, NamaDriver: "Budi", PlatMobil: "A 1234 BC"})
	assert.Equal(t, "A 1234 BC", withPlat.PlatMobil)
}

func TestClassifyLokasi(t *testing.T) {
	assert.Equal(t, models.LokasiMerak, classifyLokasi("merak"))
	assert.Equal(t, models.LokasiMerak, classifyLokasi(" MERAK "))
	assert.Equal(t, models.LokasiSemarang, classifyLokasi("Semarang"))
	assert.Equal(t, "", classifyLokasi("bandung"))
	assert.Equal(t, "", classifyLokasi(""))
}

func TestBuildAllLaporanQuantities(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.LaporanKirim{Lokasi: "merak", NamaDriver: "Budi", Tujuan: "Cilegon", JumlahDibawa: 560}).Error)
	require.NoError(t, db.Create(&models.LaporanBongkar{Lokasi: "semarang", NamaDriver: "Sari", NamaPangkalan: "Pangkalan Kendal", JumlahTurun: 120}).Error)
	require.NoError(t, db.Create(&models.ProduksiSelesai{KepalaProduksi: "Joko", TabungKosong: 10, Tabung12: 40, Tabung50: 5}).Error)
	require.NoError(t, db.Create(&models.SkidMasukDepot{NamaDriver: "Rina", Rit: 3}).Error)

	rows := BuildAllLaporan(db)
	require.Len(t, rows, 4)

	byJenis := make(map[string]LaporanRow, len(rows))
	for _, r := range rows {
		byJenis[r.Jenis] = r
	}

	assert.Equal(t, 560, byJenis["Laporan Kirim"].Jumlah)
	assert.Equal(t, "Cilegon", byJenis["Laporan Kirim"].Tujuan)

	assert.Equal(t, 120, byJenis["Laporan Bongkar"].Jumlah)
	// Unload records have no Tujuan; the base name stands in.
	assert.Equal(t, "Pangkalan Kendal", byJenis["Laporan Bongkar"].Tujuan)

	assert.Equal(t, 55, byJenis["Produksi Selesai"].Jumlah)
	assert.Equal(t, 0, byJenis["Skid Masuk Depot"].Jumlah)

	for _, r := range rows {
		assert.NotEmpty(t, r.CreatedAt)
	}
}
