package training

import (
	"safety-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	trainings := r.Group("/training")
	{
		trainings.GET("", handler.List)
		trainings.GET("/:id", handler.GetByID)

		trainings.POST("",
			middleware.RateLimitByIP(5, 10),
			handler.Create,
		)
		trainings.PUT("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.Update,
		)
		trainings.DELETE("/:id",
			middleware.RateLimitByIP(2, 5),
			handler.Delete,
		)
	}
}
