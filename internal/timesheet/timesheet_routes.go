package timesheet

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	timesheets := r.Group("/timesheets")
	{
		timesheets.GET("", h.GetRange)
		timesheets.GET("/balance", h.GetMonthlyBalance)
		timesheets.POST("/classify", h.Classify)
		timesheets.PUT("/:id", h.Edit)
	}
}
