package repository

import (
	"fmt"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(
		&models.SkidMasukDepot{},
		&models.PembayaranAgen{},
		&models.LaporanKirim{},
		&models.LaporanBongkar{},
	))
	return db
}

func TestCreateFillsGeneratedFields(t *testing.T) {
	repo := New[models.SkidMasukDepot](newTestDB(t))

	rec := models.SkidMasukDepot{NamaDriver: "Budi", Rit: 2, JamMasuk: "08:30"}
	require.NoError(t, repo.Create(&rec))

	assert.NotZero(t, rec.ID)
	assert.WithinDuration(t, time.Now(), rec.CreatedAt, time.Minute)
}

func TestListInsertionOrder(t *testing.T) {
	repo := New[models.SkidMasukDepot](newTestDB(t))

	for _, name := range []string{"Budi", "Sari", "Joko"} {
		require.NoError(t, repo.Create(&models.SkidMasukDepot{NamaDriver: name, Rit: 1}))
	}

	rows, err := repo.List(nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Budi", rows[0].NamaDriver)
	assert.Equal(t, "Sari", rows[1].NamaDriver)
	assert.Equal(t, "Joko", rows[2].NamaDriver)
}

func TestListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := New[models.LaporanKirim](db)

	require.NoError(t, CreateKirim(db, &models.LaporanKirim{NamaDriver: "Budi", Tujuan: "Cilegon"}, models.LokasiMerak))
	require.NoError(t, CreateKirim(db, &models.LaporanKirim{NamaDriver: "Sari", Tujuan: "Kendal"}, models.LokasiSemarang))

	rows, err := repo.List(map[string]any{"lokasi": models.LokasiMerak})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Budi", rows[0].NamaDriver)

	// Nil filter values are ignored rather than matched against NULL.
	rows, err = repo.List(map[string]any{"lokasi": nil})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestGetByID(t *testing.T) {
	repo := New[models.PembayaranAgen](newTestDB(t))

	rec := models.PembayaranAgen{NamaAgen: "Agen Jaya", JenisTabung: "12kg", Status: models.StatusBelumPaid}
	require.NoError(t, repo.Create(&rec))

	got, err := repo.GetByID(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Agen Jaya", got.NamaAgen)

	_, err = repo.GetByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateKirimStampsLokasi(t *testing.T) {
	db := newTestDB(t)

	// Whatever the caller put in Lokasi is overwritten by the route site.
	rec := models.LaporanKirim{Lokasi: "bandung", NamaDriver: "Budi", Tujuan: "Cilegon"}
	require.NoError(t, CreateKirim(db, &rec, models.LokasiMerak))
	assert.Equal(t, models.LokasiMerak, rec.Lokasi)

	bongkar := models.LaporanBongkar{NamaDriver: "Sari", NamaPangkalan: "Pangkalan Kendal"}
	require.NoError(t, CreateBongkar(db, &bongkar, models.LokasiSemarang))
	assert.Equal(t, models.LokasiSemarang, bongkar.Lokasi)
}
