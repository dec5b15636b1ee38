package incident

import (
	"safety-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	incidents := r.Group("/incidents")
	{
		incidents.GET("", handler.List)
		incidents.GET("/:id", handler.GetByID)

		incidents.POST("",
			middleware.RateLimitByIP(5, 10),
			handler.Create,
		)
		incidents.PUT("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.Update,
		)
		incidents.DELETE("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Delete,
		)
	}
}
