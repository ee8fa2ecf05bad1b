package routes

import (
	"github.com/stuffkeeper/stuffkeeper/controllers"
	"github.com/gin-gonic/gin"
)

// initCategoryRoutes sets up the category CRUD endpoints
func initCategoryRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.GET("", controllers.GetCategories)
		categories.GET("/tree", controllers.GetCategoryTree)
		categories.GET("/:id", controllers.GetCategory)
		categories.POST("", controllers.CreateCategory)
		categories.PUT("/:id", controllers.UpdateCategory)
		categories.DELETE("/:id", controllers.DeleteCategory)
	}
}
