package syncjob

import (
	"bancohoras/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	sync := r.Group("/sync")
	{
		sync.POST("", middleware.Idempotency(rdb), h.Submit)
		sync.GET("/:id", h.Status)
	}
}
