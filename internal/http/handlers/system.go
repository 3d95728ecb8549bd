package handlers

import (
	"net/http"

	intconfig "haulhub/internal/config"
	"haulhub/internal/db"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "haulhub"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database unreachable: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "database connection OK",
		"schema": gin.H{
			"trips":          db.HasTable(intconfig.DB, "trips"),
			"users":          db.HasTable(intconfig.DB, "users"),
			"trip_documents": db.HasTable(intconfig.DB, "trip_documents"),
			"trips_enhanced": db.HasColumn(intconfig.DB, "trips", "total_expenses"),
		},
	})
}
