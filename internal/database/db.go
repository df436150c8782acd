package database

import (
	"time"

	"gasops/internal/models"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Infof("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Info("connected to DB successfully")
			break
		}

		log.WithError(err).Warn("failed to connect to DB")
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
}

// Migrate creates or updates every table the app owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.SkidMasukDepot{},
		&models.SkidKeluarDepot{},
		&models.SkidMasukLaut{},
		&models.SkidKeluarLaut{},
		&models.SkidMasukLumbung{},
		&models.SkidKeluarLumbung{},
		&models.SebelumLoading{},
		&models.SesudahLoading{},
		&models.ProduksiMulai{},
		&models.ProduksiSelesai{},
		&models.LaporanKirim{},
		&models.LaporanBongkar{},
		&models.PembayaranAgen{},
		&models.Karyawan{},
		&models.AuditLog{},
	)
}

// SeedAdmin creates the bootstrap admin account when no admin exists yet.
// Registration itself is admin-only, so without this the first deployment
// would have no way in.
func SeedAdmin(db *gorm.DB, username, password string) {
	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "admin123"
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.WithError(err).Error("failed to check admin user")
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("failed to hash default admin password")
		return
	}

	admin := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.WithError(err).Error("failed to create default admin")
		return
	}

	log.WithField("username", username).Info("created default admin user")
}
