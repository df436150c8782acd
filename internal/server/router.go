package server

import (
	"net/http"
	"time"

	"gasops/internal/auth"
	"gasops/internal/config"
	"gasops/internal/database"
	"gasops/internal/handlers"
	"gasops/internal/middleware"
	"gasops/internal/models"
	"gasops/internal/upload"

	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) (*gin.Engine, error) {
	r := gin.Default()

	uploads, err := upload.New(cfg.UploadDir, cfg.UploadURLPrefix)
	if err != nil {
		return nil, err
	}

	authenticator := auth.New(database.DB)
	authHandler := handlers.NewAuthHandler(authenticator, time.Duration(cfg.SessionTTLHours)*time.Hour)
	recordHandler := handlers.NewRecordHandler(uploads)
	userHandler := handlers.NewUserHandler(authenticator)

	r.LoadHTMLGlob(cfg.TemplatesGlob)
	r.Static(cfg.UploadURLPrefix, cfg.UploadDir)

	r.Use(middleware.InjectUser(authenticator))

	// AUTH
	r.GET("/", handlers.IndexPage)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	// Registration is an admin action: accounts are provisioned, not
	// self-served.
	r.GET("/register", middleware.RequireAdminPage(), authHandler.ShowRegister)
	r.POST("/register", middleware.RequireAdminPage(), authHandler.Register)

	// PAGES
	pages := r.Group("/", middleware.RequirePage())
	pages.GET("/dashboard", handlers.Dashboard)
	pages.GET("/dashboard/mrksmg", handlers.DashboardMrkSmg)
	pages.GET("/form-laporan", handlers.FormPage("form_laporan.html", ""))
	pages.GET("/laporan-skid", handlers.FormPage("laporan-skid.html", ""))
	pages.GET("/laporan-loading", handlers.FormPage("laporan-loading.html", ""))
	pages.GET("/laporan-produksi", handlers.FormPage("laporan-produksi.html", ""))
	pages.GET("/laporan-supir", handlers.FormPage("laporan-supir.html", ""))
	pages.GET("/laporan/about", handlers.About)
	pages.GET("/agen", handlers.AgenPage)
	pages.GET("/laporan/pembayaran-agen", handlers.LaporanPembayaranAgen)
	pages.GET("/agen/edit/:id", handlers.ShowEditPembayaran)
	pages.POST("/agen/edit/:id", recordHandler.UpdatePembayaranForm)
	pages.GET("/laporan/data-user", handlers.DataUser)
	pages.GET("/laporan/data-karyawan", handlers.DataKaryawan)
	pages.GET("/karyawan", handlers.ListKaryawan)
	pages.POST("/karyawan/simpan", handlers.SimpanKaryawan)
	pages.GET("/karyawan/hapus/:id", handlers.HapusKaryawan)

	r.GET("/dashboard/admin", middleware.RequireAdminPage(), handlers.DashboardAdmin)

	// ADMIN USER MANAGEMENT
	admin := r.Group("/", middleware.RequireAdminPage())
	admin.GET("/users", handlers.UsersPage)
	admin.GET("/users/edit/:id", userHandler.ShowEditUser)
	admin.POST("/users/edit/:id", userHandler.UpdateUser)
	admin.GET("/users/delete/:id", userHandler.ShowDeleteUser)
	admin.POST("/users/delete/:id", userHandler.DeleteUser)

	// RECORD CREATION
	records := r.Group("/", middleware.RequireAPI())
	records.POST("/skid-masuk-depot", handlers.CreateSkidMasukDepot)
	records.POST("/skid-keluar-depot", recordHandler.CreateSkidKeluarDepot)
	records.POST("/skid-masuk-laut", handlers.CreateSkidMasukLaut)
	records.POST("/skid-keluar-laut", recordHandler.CreateSkidKeluarLaut)
	records.POST("/skid-masuk-lumbung", handlers.CreateSkidMasukLumbung)
	records.POST("/skid-keluar-lumbung", recordHandler.CreateSkidKeluarLumbung)
	records.POST("/sebelum-loading", recordHandler.CreateSebelumLoading)
	records.POST("/sesudah-loading", recordHandler.CreateSesudahLoading)
	records.POST("/produksi-mulai", handlers.CreateProduksiMulai)
	records.POST("/produksi-selesai", handlers.CreateProduksiSelesai)
	records.POST("/laporan/kirim-merak", recordHandler.CreateLaporanKirim(models.LokasiMerak))
	records.POST("/laporan/kirim-semarang", recordHandler.CreateLaporanKirim(models.LokasiSemarang))
	records.POST("/laporan/bongkar-merak", recordHandler.CreateLaporanBongkar(models.LokasiMerak))
	records.POST("/laporan/bongkar-semarang", recordHandler.CreateLaporanBongkar(models.LokasiSemarang))

	// API
	api := r.Group("/api", middleware.RequireAPI())
	api.GET("/laporan", handlers.GetAllLaporan)
	api.GET("/pembayaran-agen", recordHandler.ListPembayaranAPI)
	api.POST("/pembayaran-agen", recordHandler.CreatePembayaranAPI)
	api.PUT("/pembayaran-agen/:id", recordHandler.UpdatePembayaranAPI)
	r.DELETE("/api/pembayaran-agen/:id", middleware.RequireAdmin(), recordHandler.DeletePembayaranAPI)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	r.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
	})

	return r, nil
}
