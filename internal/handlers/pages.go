package handlers

import (
	"net/http"

	"gasops/internal/dashboard"
	"gasops/internal/database"
	"gasops/internal/middleware"
	"gasops/internal/models"

	"github.com/gin-gonic/gin"
)

func IndexPage(c *gin.Context) {
	if _, ok := middleware.CurrentUser(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// Dashboard fans out by role: admins land on the admin overview,
// everyone else on the two-site report board.
func Dashboard(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	if user != nil && user.Role == models.RoleAdmin {
		c.Redirect(http.StatusFound, "/dashboard/admin")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/mrksmg")
}

func DashboardAdmin(c *gin.Context) {
	var totalUsers, totalKaryawan, totalProduksi int64
	database.DB.Model(&models.User{}).Count(&totalUsers)
	database.DB.Model(&models.Karyawan{}).Count(&totalKaryawan)
	database.DB.Model(&models.ProduksiSelesai{}).Count(&totalProduksi)

	render(c, http.StatusOK, "dashboard_admin.html", gin.H{
		"active_page":    "dashboard",
		"total_users":    totalUsers,
		"total_karyawan": totalKaryawan,
		"total_produksi": totalProduksi,
	})
}

func DashboardMrkSmg(c *gin.Context) {
	laporanMerak, laporanSemarang := dashboard.BuildLocationReports(database.DB)

	render(c, http.StatusOK, "dashboardmrksmg.html", gin.H{
		"active_page":      "produksi-mrksmg",
		"laporan_merak":    laporanMerak,
		"laporan_semarang": laporanSemarang,
	})
}

// FormPage renders one of the static entry-form pages.
func FormPage(tmpl, activePage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, tmpl, gin.H{"active_page": activePage})
	}
}

func About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", gin.H{"active_page": "about"})
}
