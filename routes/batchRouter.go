package routes

import (
	controller "unicart/controllers"
	"unicart/middleware"

	"github.com/gin-gonic/gin"
)

func BatchRoutes(incomingRoutes *gin.Engine) {
	admin := incomingRoutes.Group("/admin", middleware.AdminOnly())
	admin.GET("/batches/current", controller.GetCurrentBatch())
	admin.POST("/batches", controller.CreateBatch())
	admin.PATCH("/batches/:batch_id/active", controller.ToggleBatch())
	admin.PATCH("/batches/:batch_id/status", controller.UpdateBatchStatus())
	admin.DELETE("/batches/:batch_id", controller.ArchiveBatch())
	admin.GET("/batches/:batch_id/orders", controller.GetBatchOrders())
	admin.GET("/batches/:batch_id/export", controller.ExportBatchOrders())
	admin.GET("/orders", controller.GetAllOrders())
}
