package employee

import (
	"safety-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.List)
		employees.GET("/:id", handler.GetByID)

		employees.POST("",
			middleware.RateLimitByIP(5, 10),
			handler.Create,
		)
		employees.PUT("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.Update,
		)
		employees.DELETE("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Delete,
		)
	}
}
