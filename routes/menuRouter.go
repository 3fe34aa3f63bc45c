package routes

import (
	controller "unicart/controllers"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/menu", controller.GetMenu())
	incomingRoutes.GET("/menu/:item_id", controller.GetMenuItem())
	incomingRoutes.GET("/categories", controller.GetCategories())
	incomingRoutes.GET("/restaurants", controller.GetRestaurants())
}
