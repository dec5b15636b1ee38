package location

import (
	"safety-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	locations := r.Group("/locations")
	{
		locations.GET("", handler.List)
		locations.GET("/:id", handler.GetByID)

		locations.POST("",
			middleware.RateLimitByIP(5, 10),
			handler.Create,
		)
		locations.PUT("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.Update,
		)
		locations.DELETE("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Delete,
		)
	}
}
