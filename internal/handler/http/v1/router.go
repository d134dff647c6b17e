package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Дашборд: чтение открыто, загрузка только по API-ключу
	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("", h.getDashboard)

		upload := dashboard.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))
		upload.POST("/upload", h.uploadCSV)
		upload.POST("/records", h.uploadRecords)
	}

	// Таблица лидеров сборщиков
	collectors := api.Group("/collectors")
	{
		collectors.GET("/leaderboard", h.getLeaderboard)
		collectors.GET("/:name", h.getCollector)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
