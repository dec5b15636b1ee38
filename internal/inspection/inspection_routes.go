package inspection

import (
	"safety-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	inspections := r.Group("/inspections")
	{
		inspections.GET("", handler.List)
		inspections.GET("/:id", handler.GetByID)

		inspections.POST("",
			middleware.RateLimitByIP(5, 10),
			handler.Create,
		)
		inspections.PUT("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.Update,
		)
		inspections.DELETE("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Delete,
		)
	}
}
