package ppe

import (
	"safety-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	records := r.Group("/ppe-compliance")
	{
		records.GET("", handler.List)
		records.GET("/:id", handler.GetByID)

		records.POST("",
			middleware.RateLimitByIP(5, 10),
			handler.Create,
		)
		records.PUT("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.Update,
		)
		records.DELETE("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Delete,
		)
	}
}
