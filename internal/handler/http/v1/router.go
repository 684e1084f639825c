package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления записями (CRUD, экспорт, импорт)
	records := api.Group("/records")
	{
		records.POST("", h.createRecord)
		records.GET("", h.listRecords)
		records.GET("/export", h.exportRecords)
		records.POST("/import", h.importRecords)
		records.GET("/:id", h.getRecord)
		records.PUT("/:id", h.updateRecord)
		records.PATCH("/:id", h.updateRecord)
		records.DELETE("/:id", h.deleteRecord)
	}

	// Поиск и фильтрация
	filter := api.Group("/filter")
	{
		filter.GET("", h.getFilter)
		filter.PUT("", h.setFilter)
		filter.DELETE("", h.clearFilter)
	}

	// Производные представления
	api.GET("/stats", h.getStats)
	api.GET("/map/markers", h.getMarkers)
	api.GET("/charts", h.getCharts)
	api.GET("/dashboard", h.getDashboard)
	api.GET("/notifications", h.getNotifications)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
