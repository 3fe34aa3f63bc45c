package routes

import (
	"unicart/controllers"
	"unicart/middleware"

	"github.com/gin-gonic/gin"
)

// Placement gets its own rate limiter so a stuck client cannot spam
// duplicate orders; tracking polls are left alone.
var placementLimiter = middleware.NewRateLimiter(1, 3)

func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/orders", placementLimiter.Limit(), controllers.PlaceOrder())
	incomingRoutes.GET("/orders", controllers.GetOrders())
	incomingRoutes.GET("/orders/:order_id", controllers.GetOrder())
	incomingRoutes.GET("/orders/:order_id/track", controllers.TrackOrder())
	incomingRoutes.GET("/ws", controllers.HandleWebSocket())
}
