package handlers

import (
	"net/http"

	"gasops/internal/dashboard"
	"gasops/internal/database"

	"github.com/gin-gonic/gin"
)

// GetAllLaporan is the generic merged feed of every operational record,
// newest first.
func GetAllLaporan(c *gin.Context) {
	c.JSON(http.StatusOK, dashboard.BuildAllLaporan(database.DB))
}
