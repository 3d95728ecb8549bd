package api

import (
	stdhttp "net/http"

	intconfig "haulhub/internal/config"
	h "haulhub/internal/http/handlers"
	"haulhub/internal/http/middleware"
	"haulhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Init(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.L.Warn("failed to set trusted proxies", logger.Err(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.JWTAuth([]byte(env.JWTSecret))
	back := middleware.RequireRoles("dispatcher", "admin")
	adminOnly := middleware.RequireRoles("admin")

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)

		// Users (admin surface)
		users := api.Group("/users", auth, adminOnly)
		users.GET("", h.GetUsers)
		users.GET("/:id", h.GetUserByID)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)

		// Trips — reads are role-projected, writes are back-office only
		trips := api.Group("/trips", auth)
		trips.GET("", h.GetTrips)
		trips.GET("/:id", h.GetTripByID)
		trips.POST("", back, h.CreateTrip)
		trips.PUT("/:id", back, h.UpdateTrip)
		trips.POST("/:id/status", back, h.TransitionTrip)
		trips.POST("/process-payments", back, h.ProcessPayments)

		// Trip paperwork
		trips.GET("/:id/documents", h.ListDocuments)
		trips.POST("/:id/documents", back, h.UploadDocument)
		trips.GET("/:id/rate-confirmation", back, h.GetRateConfirmationPDF)
		trips.GET("/:id/settlement", h.GetDriverSettlementPDF)
		api.GET("/documents/:docId", auth, h.DownloadDocument)

		// Reports
		reports := api.Group("/reports", auth, back)
		reports.GET("/fuel", h.GetFuelReport)
		reports.GET("/finance", h.GetFinanceReport)

		// Bulk exports
		exports := api.Group("/exports", auth, back)
		exports.GET("/trips.xlsx", h.ExportTripsXLSX)
		exports.GET("/trips.csv", h.ExportTripsCSV)
	}

	return r
}
