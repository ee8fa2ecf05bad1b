package routes

import (
	"github.com/stuffkeeper/stuffkeeper/controllers"
	"github.com/gin-gonic/gin"
)

// initItemRoutes sets up the item endpoints: CRUD, filtering, statistics,
// uploads, exports and the session-scoped edit drafts.
func initItemRoutes(router *gin.RouterGroup) {
	items := router.Group("/items")
	{
		items.GET("", controllers.GetItems)
		items.GET("/statistics", controllers.GetItemStatistics)
		items.GET("/export/excel", controllers.DownloadInventoryExcel)
		items.GET("/export/pdf", controllers.DownloadInventoryPDF)
		items.POST("/upload-image", controllers.UploadItemImage)
		items.POST("/upload-multiple-images", controllers.UploadItemImages)

		items.POST("", controllers.CreateItem)
		items.GET("/:id", controllers.GetItem)
		items.PUT("/:id", controllers.UpdateItem)
		items.DELETE("/:id", controllers.DeleteItem)

		items.POST("/:id/edit", controllers.StartItemEdit)
		items.GET("/:id/edit", controllers.GetItemEdit)
		items.DELETE("/:id/edit", controllers.CancelItemEdit)
		items.POST("/:id/edit/images", controllers.AddItemEditImages)
		items.DELETE("/:id/edit/images/:index", controllers.RemoveItemEditImage)
		items.PUT("/:id/edit/images/:index/move", controllers.MoveItemEditImage)
		items.POST("/:id/edit/commit", controllers.CommitItemEdit)
	}
}
